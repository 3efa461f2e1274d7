package ring

import (
	"fmt"
	"math/big"

	lattice "github.com/tuneinsight/lattigo/v6/ring"
)

const (
	// minNTTDegree is the smallest ring degree handled by the NTT engine.
	minNTTDegree = 16

	// maxNTTModulusBits is the largest modulus bit-size handled by the NTT engine.
	maxNTTModulusBits = 61
)

// nttEngine computes negacyclic products with the number theoretic
// transform of a single-modulus lattigo ring.
type nttEngine struct {
	ring *lattice.Ring
	q    uint64
}

// newNTTEngine returns an error if Q is not a prime congruent to 1 modulo 2N
// of at most maxNTTModulusBits bits, or if N is smaller than minNTTDegree.
func newNTTEngine(N int, q *big.Int) (*nttEngine, error) {

	if N < minNTTDegree {
		return nil, fmt.Errorf("cannot newNTTEngine: N=%d is smaller than %d", N, minNTTDegree)
	}

	if q.BitLen() > maxNTTModulusBits {
		return nil, fmt.Errorf("cannot newNTTEngine: Q has %d bits but at most %d are supported", q.BitLen(), maxNTTModulusBits)
	}

	qi := q.Uint64()

	if qi&uint64(2*N-1) != 1 {
		return nil, fmt.Errorf("cannot newNTTEngine: Q=%d is not 1 mod 2N", qi)
	}

	r, err := lattice.NewRing(N, []uint64{qi})
	if err != nil {
		return nil, fmt.Errorf("cannot newNTTEngine: %w", err)
	}

	return &nttEngine{ring: r, q: qi}, nil
}

func (r *Ring[I]) mulNTT(p1, p2, p3 Poly[I]) {

	rq := r.ntt.ring

	a, b := rq.NewPoly(), rq.NewPoly()

	r.toResidues(p1, a.Coeffs[0])
	r.toResidues(p2, b.Coeffs[0])

	rq.NTT(a, a)
	rq.NTT(b, b)
	rq.MulCoeffsBarrett(a, b, a)
	rq.INTT(a, a)

	r.fromResidues(a.Coeffs[0], p3)
}

// toResidues maps the coefficients of p to [0, Q).
func (r *Ring[I]) toResidues(p Poly[I], out []uint64) {

	q := int64(r.ntt.q)

	for i, c := range p.Coeffs {

		v, ok := r.field.Int64(c)
		if !ok {
			v = new(big.Int).Mod(r.field.Big(c), r.q).Int64()
		}

		if v %= q; v < 0 {
			v += q
		}

		out[i] = uint64(v)
	}
}

// fromResidues maps residues in [0, Q) to centered coefficients of p.
func (r *Ring[I]) fromResidues(in []uint64, p Poly[I]) {

	q := r.ntt.q
	half := q >> 1

	for i, v := range in {
		x := int64(v)
		if v > half {
			x -= int64(q)
		}
		p.Coeffs[i] = r.field.FromInt64(x)
	}
}
