package rlwe

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlvinHon/ring-lwe-encryption/field"
)

func TestSecurity(t *testing.T) {

	for _, tc := range []struct {
		q, b          int32
		logN          int
		noise, margin int64
		log2          float64
	}{
		{q: 3329, b: 1, logN: 8, noise: 513, margin: 832, log2: math.Inf(-1)},
		{q: 3329, b: 2, logN: 8, noise: 2050, margin: 832, log2: -51.92411737337249},
		{q: 3329, b: 3, logN: 8, noise: 4611, margin: 832, log2: -3.0376573851199566},
		{q: 3329, b: 2, logN: 10, noise: 8194, margin: 832, log2: -4.2366064320810715},
	} {

		params, err := NewParameters[int32](field.NewModulus(tc.q, tc.b), tc.logN)
		require.NoError(t, err)

		t.Run(testString(params, "Security"), func(t *testing.T) {

			require.Equal(t, big.NewInt(tc.noise), params.NoiseBound())
			require.Equal(t, big.NewInt(tc.margin), params.DecodingMargin())

			log2 := params.FailureProbabilityLog2()
			p, _ := params.FailureProbability().Float64()

			if math.IsInf(tc.log2, -1) {
				require.True(t, params.IsDeterministic())
				require.True(t, math.IsInf(log2, -1))
				require.Zero(t, p)
				return
			}

			require.False(t, params.IsDeterministic())
			require.InDelta(t, tc.log2, log2, 1e-9)
			require.InEpsilon(t, math.Exp2(tc.log2), p, 1e-9)
		})
	}

	t.Run("Security/Golden", func(t *testing.T) {

		params, err := NewParametersFromLiteral(ParametersLiteral{LogN: 9, Q: 8383489, B: 1})
		require.NoError(t, err)

		require.Equal(t, big.NewInt(1025), params.NoiseBound())
		require.Equal(t, big.NewInt(2095872), params.DecodingMargin())
		require.True(t, params.IsDeterministic())
	})

	t.Run("Security/Capped", func(t *testing.T) {

		// B close to Q/2: the bound exceeds one
		params, err := NewParameters[int32](field.NewModulus[int32](3329, 1000), 8)
		require.NoError(t, err)

		require.Zero(t, params.FailureProbabilityLog2())

		p, _ := params.FailureProbability().Float64()
		require.Equal(t, 1.0, p)
	})
}
