package field

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// nonCentered reduces into [0, Q) instead of (-Q/2, Q/2].
type nonCentered struct {
	Int[int64]
}

func (nonCentered) Q() int64 { return 3329 }
func (nonCentered) B() int64 { return 1 }
func (nonCentered) Modulo(x int64) int64 {
	a := x % 3329
	if a < 0 {
		a += 3329
	}
	return a
}

func testString(opname string, q interface{}) string {
	return fmt.Sprintf("%s/Q=%v", opname, q)
}

func TestCenter(t *testing.T) {

	// Let q = 7, the field elements are: -3,-2,-1,0,1,2,3
	t.Run(testString("Center/Small", 7), func(t *testing.T) {
		in := []int32{-9, -6, -4, -3, 0, 3, 4, 6, 7, 14, 15}
		want := []int32{-2, 1, 3, -3, 0, 3, -3, -1, 0, 0, 1}
		for i := range in {
			require.Equal(t, want[i], Center(in[i], 7), "x=%d", in[i])
		}
	})

	for _, q := range []int64{3, 7, 3329, 8383489, 0x3ffffffb80001} {

		t.Run(testString("Center/Random", q), func(t *testing.T) {

			rng := rand.New(rand.NewSource(q))

			for i := 0; i < 1<<12; i++ {

				x := rng.Int63() - math.MaxInt64/2

				y := Center(x, q)

				require.True(t, 2*y > -q && 2*y <= q, "Center(%d)=%d out of range", x, y)
				require.Equal(t, y, Center(y, q))
				require.Zero(t, ((x-y)%q+q)%q)

				yb := CenterBig(big.NewInt(x), big.NewInt(q))
				require.Equal(t, y, yb.Int64())
			}
		})
	}

	t.Run("CenterBig/DoesNotMutate", func(t *testing.T) {
		x := big.NewInt(-10)
		q := big.NewInt(7)
		y := CenterBig(x, q)
		require.Equal(t, int64(-10), x.Int64())
		require.Equal(t, int64(7), q.Int64())
		require.Equal(t, int64(-3), y.Int64())
	})
}

func TestArithmetic(t *testing.T) {

	t.Run("Int", func(t *testing.T) {
		var a Int[int64]
		require.Equal(t, int64(7), a.Add(3, 4))
		require.Equal(t, int64(-1), a.Sub(3, 4))
		require.Equal(t, int64(12), a.Mul(3, 4))
		require.Equal(t, int64(-3), a.Neg(3))
		require.Equal(t, int64(3), a.Abs(-3))
		require.Equal(t, int64(-2), a.Quo(-7, 3))
		require.Equal(t, -1, a.Cmp(-1, 0))
		require.Equal(t, 0, a.Cmp(5, 5))
		require.Equal(t, 1, a.Cmp(6, 5))
		require.Equal(t, int64(42), a.FromBig(a.Big(42)))
	})

	t.Run("BigInt", func(t *testing.T) {
		var a BigInt
		x, y := big.NewInt(-7), big.NewInt(3)
		require.Equal(t, int64(-4), a.Add(x, y).Int64())
		require.Equal(t, int64(-10), a.Sub(x, y).Int64())
		require.Equal(t, int64(-21), a.Mul(x, y).Int64())
		require.Equal(t, int64(7), a.Neg(x).Int64())
		require.Equal(t, int64(7), a.Abs(x).Int64())
		require.Equal(t, int64(-2), a.Quo(x, y).Int64())
		require.Equal(t, -1, a.Cmp(x, y))
		require.Equal(t, int64(-7), x.Int64())
		require.Equal(t, int64(3), y.Int64())

		_, ok := a.Int64(new(big.Int).Lsh(big.NewInt(1), 80))
		require.False(t, ok)
	})
}

func TestValidate(t *testing.T) {

	t.Run("FIPS203", func(t *testing.T) {
		require.NoError(t, Validate[int32](FIPS203{}, 256))
		// 2*512*1+1 = 1025 exceeds the margin 832
		require.ErrorIs(t, Validate[int32](FIPS203{}, 512), ErrInvalidField)
	})

	t.Run("Modulus", func(t *testing.T) {
		require.NoError(t, Validate[int64](NewModulus[int64](8383489, 1), 512))
		require.NoError(t, Validate[int64](NewModulus[int64](8383489, 4), 512))
		require.ErrorIs(t, Validate[int64](NewModulus[int64](8383490, 1), 512), ErrInvalidField)
		require.ErrorIs(t, Validate[int64](NewModulus[int64](8383491, 1), 512), ErrInvalidField) // 8383491 = 3 * 2794497
		require.ErrorIs(t, Validate[int64](NewModulus[int64](8383489, 0), 512), ErrInvalidField)
		require.ErrorIs(t, Validate[int64](NewModulus[int64](2, 1), 1), ErrInvalidField)
	})

	t.Run("BigModulus", func(t *testing.T) {
		q := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
		require.NoError(t, Validate[*big.Int](NewBigModulus(q, big.NewInt(1<<20)), 64))
		require.ErrorIs(t, Validate[*big.Int](NewBigModulus(new(big.Int).Add(q, big.NewInt(2)), big.NewInt(1)), 64), ErrInvalidField)
	})

	t.Run("NonCenteredModulo", func(t *testing.T) {
		require.ErrorIs(t, Validate[int64](nonCentered{}, 256), ErrInvalidField)
	})
}

func TestNoiseMargin(t *testing.T) {
	require.Equal(t, int64(513), WorstCaseNoise[int32](FIPS203{}, 256).Int64())
	require.Equal(t, int64(832), DecodingMargin[int32](FIPS203{}).Int64())
	require.Equal(t, int64(1025), WorstCaseNoise[int64](NewModulus[int64](8383489, 1), 512).Int64())
	require.Equal(t, int64(2095872), DecodingMargin[int64](NewModulus[int64](8383489, 1)).Int64())
}
