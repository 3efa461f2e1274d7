package sampling_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source exhausted")
}

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("KeyedPRNG/Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
		}

		Hb.Reset()

		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("KeyedPRNG/KeyTooLong", func(t *testing.T) {
		_, err := sampling.NewKeyedPRNG(make([]byte, 65))
		require.Error(t, err)
	})

	t.Run("SeededPRNG", func(t *testing.T) {

		seed := bytes.Repeat([]byte("golden"), 100)

		Ha, err := sampling.NewSeededPRNG(seed)
		require.NoError(t, err)
		Hb, err := sampling.NewSeededPRNG(seed)
		require.NoError(t, err)
		Hc, err := sampling.NewSeededPRNG(seed[1:])
		require.NoError(t, err)

		require.Len(t, Ha.Key(), sampling.KeySize)

		sum0, sum1, sum2 := make([]byte, 64), make([]byte, 64), make([]byte, 64)
		Ha.Read(sum0)
		Hb.Read(sum1)
		Hc.Read(sum2)

		require.Equal(t, sum0, sum1)
		require.NotEqual(t, sum0, sum2)
	})
}

func TestRand(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte{0x01})
	require.NoError(t, err)

	t.Run("RandUniform", func(t *testing.T) {
		for _, v := range []uint64{1, 2, 3, 3329, 1 << 40, 1<<63 + 5} {
			for i := 0; i < 64; i++ {
				r, err := sampling.RandUniform(prng, v)
				require.NoError(t, err)
				require.Less(t, r, v)
			}
		}
	})

	t.Run("RandInt", func(t *testing.T) {
		for _, v := range []*big.Int{
			big.NewInt(1),
			big.NewInt(257),
			new(big.Int).Lsh(big.NewInt(1), 127),
			new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)),
		} {
			for i := 0; i < 64; i++ {
				r, err := sampling.RandInt(prng, v)
				require.NoError(t, err)
				require.True(t, r.Sign() >= 0 && r.Cmp(v) < 0)
			}
		}
	})

	t.Run("RandBits", func(t *testing.T) {
		b, err := sampling.RandBits(prng, 1000)
		require.NoError(t, err)
		require.Len(t, b, 1000)
		var ones int
		for _, bi := range b {
			require.LessOrEqual(t, bi, uint8(1))
			ones += int(bi)
		}
		require.InDelta(t, 500, ones, 100)
	})

	t.Run("FailingSource", func(t *testing.T) {
		_, err := sampling.RandUint64(failingReader{})
		require.Error(t, err)
		_, err = sampling.RandInt(failingReader{}, big.NewInt(10))
		require.Error(t, err)
		_, err = sampling.RandBits(failingReader{}, 3)
		require.Error(t, err)
	})
}
