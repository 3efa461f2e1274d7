package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("LogBase2", 1.4142135623730951, math.Log2, LogBase2, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc1("Exp/Tiny", -700, math.Exp, Exp, 1e-300, t)

	t.Run("Ln2", func(t *testing.T) {
		y, _ := Ln2(53).Float64()
		require.Equal(t, math.Ln2, y)
	})

	t.Run("NewFloat", func(t *testing.T) {
		require.Equal(t, uint(128), NewFloat(big.NewInt(7), 128).Prec())
		require.Panics(t, func() { NewFloat("7", 53) })
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
