// Package config carries the module's environment-driven configuration,
// adapted from the teacher's pkg/logger/config.Configuration + viper.New
// pairing into a single struct covering both cores' runtime knobs.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Log levels, mirroring the teacher's INFO_LEVEL/DEBUG_LEVEL-style
// constants (zapcore.Level values).
const (
	DebugLevel = -1
	InfoLevel  = 0
	WarnLevel  = 1
	ErrorLevel = 2
)

// Configuration is every environment-tunable knob for a satflow process.
// Fields are populated by Load, which reads SATFLOW_-prefixed environment
// variables via viper, falling back to the defaults below.
type Configuration struct {
	LogLevel      int
	LogTimeFormat string

	// FastPartialCover selects cover.WithFastPartial when true.
	FastPartialCover bool
	// DebugAssertions enables cover.WithDebug and maxflow.WithDebug.
	DebugAssertions bool
	// WorkerPoolSize is a worker count for maxflow.SolveAll's workers
	// argument. It is validated here; no code in this module reads it.
	WorkerPoolSize int
}

// Load reads configuration from the environment (prefix SATFLOW_) and
// returns a validated Configuration.
func Load() (Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix("SATFLOW")
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", InfoLevel)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	v.SetDefault("FAST_PARTIAL_COVER", false)
	v.SetDefault("DEBUG_ASSERTIONS", false)
	v.SetDefault("WORKER_POOL_SIZE", 4)

	cfg := Configuration{
		LogLevel:         v.GetInt("LOG_LEVEL"),
		LogTimeFormat:    v.GetString("LOG_TIME_FORMAT"),
		FastPartialCover: v.GetBool("FAST_PARTIAL_COVER"),
		DebugAssertions:  v.GetBool("DEBUG_ASSERTIONS"),
		WorkerPoolSize:   v.GetInt("WORKER_POOL_SIZE"),
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg's fields are usable.
func (cfg Configuration) Validate() error {
	if cfg.LogLevel < DebugLevel || cfg.LogLevel > ErrorLevel {
		return fmt.Errorf("config: log level %d out of range", cfg.LogLevel)
	}
	if cfg.LogTimeFormat == "" {
		return fmt.Errorf("config: log time format must not be empty")
	}
	if cfg.WorkerPoolSize <= 0 {
		return fmt.Errorf("config: worker pool size must be positive, got %d", cfg.WorkerPoolSize)
	}
	return nil
}
