package ring

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/bits"

	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

const randomBufferSize = 1024

type randomBuffer struct {
	buf []byte
	ptr int
}

func newRandomBuffer() *randomBuffer {
	return &randomBuffer{buf: make([]byte, randomBufferSize), ptr: randomBufferSize}
}

// Sampler samples polynomials whose coefficients are uniformly distributed
// in [-bound, bound]. A Sampler holds an internal buffer and cannot be used
// concurrently.
type Sampler[I any] struct {
	ring *Ring[I]
	prng sampling.PRNG

	bound I

	// width = 2*bound+1 when it fits 63 bits, else zero and wide is used.
	width  uint64
	mask   uint64
	offset int64
	wide   *big.Int

	*randomBuffer
}

// NewUniformSampler creates a new Sampler of polynomials with coefficients
// uniformly distributed in [-floor(Q/2), floor(Q/2)], i.e. uniform in Z_Q.
func NewUniformSampler[I any](prng sampling.PRNG, r *Ring[I]) *Sampler[I] {
	return NewSampler(prng, r, r.halfQ)
}

// NewBoundedSampler creates a new Sampler of polynomials with coefficients
// uniformly distributed in [-B, B], where B is the noise bound of the field.
func NewBoundedSampler[I any](prng sampling.PRNG, r *Ring[I]) *Sampler[I] {
	return NewSampler(prng, r, r.field.B())
}

// NewSampler creates a new Sampler of polynomials with coefficients uniformly
// distributed in [-bound, bound]. The bound must be non-negative.
func NewSampler[I any](prng sampling.PRNG, r *Ring[I], bound I) *Sampler[I] {

	s := &Sampler[I]{
		ring:         r,
		prng:         prng,
		bound:        bound,
		randomBuffer: newRandomBuffer(),
	}

	b := r.field.Big(bound)

	if b.Sign() < 0 {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("invalid sampler bound: %s is negative", b))
	}

	width := new(big.Int).Lsh(b, 1)
	width.Add(width, big.NewInt(1))

	if width.BitLen() < 64 {
		s.width = width.Uint64()
		s.mask = uint64(1)<<bits.Len64(s.width-1) - 1
		s.offset = b.Int64()
	} else {
		s.wide = width
	}

	return s
}

// Read samples a new polynomial on pol.
func (s *Sampler[I]) Read(pol Poly[I]) (err error) {
	if s.width == 0 {
		return s.readWide(pol)
	}
	return s.read(pol)
}

// ReadNew samples a new polynomial.
func (s *Sampler[I]) ReadNew() (pol Poly[I], err error) {
	pol = s.ring.NewPoly()
	if err = s.Read(pol); err != nil {
		return Poly[I]{}, err
	}
	return
}

func (s *Sampler[I]) read(pol Poly[I]) error {

	f := s.ring.field
	buffer := s.buf
	ptr := s.ptr

	for i := range pol.Coeffs {

		var v uint64

		// Samples an integer in [0, width-1]
		for {

			// Refills the buffer if it runs empty
			if ptr == len(buffer) {
				if _, err := io.ReadFull(s.prng, buffer); err != nil {
					s.ptr = ptr
					return fmt.Errorf("cannot Read: %w", err)
				}
				ptr = 0
			}

			v = binary.BigEndian.Uint64(buffer[ptr:ptr+8]) & s.mask
			ptr += 8

			if v < s.width {
				break
			}
		}

		pol.Coeffs[i] = f.FromInt64(int64(v) - s.offset)
	}

	s.ptr = ptr

	return nil
}

func (s *Sampler[I]) readWide(pol Poly[I]) error {

	f := s.ring.field
	b := f.Big(s.bound)

	for i := range pol.Coeffs {

		v, err := sampling.RandInt(s.prng, s.wide)
		if err != nil {
			return fmt.Errorf("cannot Read: %w", err)
		}

		pol.Coeffs[i] = f.FromBig(v.Sub(v, b))
	}

	return nil
}
