// Package logging builds the module's zap.Logger from configuration,
// adapted from the teacher's pkg/logger.New/pkg/logger/zap.New pairing.
package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/covermax/satflow/internal/config"
)

// New builds a production-style zap.Logger honoring cfg's level and time
// format.
func New(cfg config.Configuration) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(cfg.LogTimeFormat))
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig = encoderCfg
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.LogLevel))

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
