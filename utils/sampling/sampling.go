// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/bits"
)

// RandUint64 returns a uniform value in [0, 0xFFFFFFFFFFFFFFFF] read from prng.
func RandUint64(prng PRNG) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(prng, b[:]); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// RandUniform returns a uniform value in [0, v-1] read from prng by rejection
// sampling on the smallest power-of-two mask covering v. v must be non-zero.
func RandUniform(prng PRNG, v uint64) (uint64, error) {

	mask := uint64(1)<<bits.Len64(v-1) - 1

	for {
		r, err := RandUint64(prng)
		if err != nil {
			return 0, err
		}

		if r &= mask; r < v {
			return r, nil
		}
	}
}

// RandInt returns a uniform value in [0, max-1] read from prng. max must be positive.
func RandInt(prng PRNG, max *big.Int) (n *big.Int, err error) {

	m := new(big.Int).Sub(max, big.NewInt(1))
	bitLen := m.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	topMask := byte(0xff >> ((8 - bitLen%8) % 8))

	n = new(big.Int)

	for {
		if _, err = io.ReadFull(prng, buf); err != nil {
			return nil, fmt.Errorf("cannot RandInt: %w", err)
		}

		if len(buf) > 0 {
			buf[0] &= topMask
		}

		if n.SetBytes(buf).Cmp(max) < 0 {
			return n, nil
		}
	}
}

// RandBits returns n bits read from prng, one bit per byte of the output.
func RandBits(prng PRNG, n int) (b []uint8, err error) {

	raw := make([]byte, (n+7)/8)
	if _, err = io.ReadFull(prng, raw); err != nil {
		return nil, fmt.Errorf("cannot RandBits: %w", err)
	}

	b = make([]uint8, n)
	for i := range b {
		b[i] = (raw[i>>3] >> (i & 7)) & 1
	}

	return
}
