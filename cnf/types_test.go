package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/covermax/satflow/cnf"
)

func TestIntToLitRoundTrip(t *testing.T) {
	for _, i := range []int{1, -1, 2, -2, 17, -17} {
		l := cnf.IntToLit(i)
		require.Equal(t, int32(i), l.Int())
	}
}

func TestLitNegationFlipsSign(t *testing.T) {
	pos := cnf.IntToLit(3)
	neg := pos.Negation()
	require.Equal(t, int32(-3), neg.Int())
	require.Equal(t, pos, neg.Negation())
	require.True(t, pos.IsPositive())
	require.False(t, neg.IsPositive())
}

func TestLitVarAgreesAcrossSigns(t *testing.T) {
	pos := cnf.IntToLit(5)
	neg := cnf.IntToLit(-5)
	require.Equal(t, pos.Var(), neg.Var())
}

func TestVarSignedLit(t *testing.T) {
	v := cnf.Var(2)
	require.Equal(t, v.Lit(), v.SignedLit(false))
	require.Equal(t, v.Lit().Negation(), v.SignedLit(true))
}
