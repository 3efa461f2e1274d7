package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlvinHon/ring-lwe-encryption/field"
	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

func BenchmarkMul(b *testing.B) {

	f := field.NewModulus[int64](8383489, 1)

	r, err := NewRing[int64](f, 512)
	require.NoError(b, err)

	prng, err := sampling.NewPRNG()
	require.NoError(b, err)

	p1, err := NewUniformSampler(prng, r).ReadNew()
	require.NoError(b, err)
	p2, err := NewBoundedSampler(prng, r).ReadNew()
	require.NoError(b, err)

	b.Run(testString("Mul", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.Mul(p1, p2, p1)
		}
	})

	b.Run(testString("MulSchoolbook", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.MulSchoolbook(p1, p2, p1)
		}
	})
}
