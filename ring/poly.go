package ring

import (
	"math/big"
)

// Poly is a polynomial of degree smaller than N, stored as its N coefficients
// in increasing degree order. Coefficient values are never modified in place
// by this package, so polynomials can share them.
type Poly[I any] struct {
	Coeffs []I
}

// NewPoly creates a new zero polynomial.
func (r *Ring[I]) NewPoly() Poly[I] {
	p := Poly[I]{Coeffs: make([]I, r.n)}
	for i := range p.Coeffs {
		p.Coeffs[i] = r.field.Zero()
	}
	return p
}

// N returns the number of coefficients of the polynomial.
func (p Poly[I]) N() int {
	return len(p.Coeffs)
}

// CopyNew creates an exact copy of the target polynomial.
func (p Poly[I]) CopyNew() Poly[I] {
	coeffs := make([]I, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return Poly[I]{Coeffs: coeffs}
}

// Copy copies the coefficients of p1 on p2.
func (r *Ring[I]) Copy(p1, p2 Poly[I]) {
	copy(p2.Coeffs, p1.Coeffs)
}

// Equal returns true if p1 and p2 have the same coefficients modulo Q.
func (r *Ring[I]) Equal(p1, p2 Poly[I]) bool {

	if len(p1.Coeffs) != len(p2.Coeffs) {
		return false
	}

	f := r.field

	for i := range p1.Coeffs {
		if f.Cmp(f.Modulo(p1.Coeffs[i]), f.Modulo(p2.Coeffs[i])) != 0 {
			return false
		}
	}

	return true
}

// PolyToBigint returns the centered coefficients of p as big integers.
func (r *Ring[I]) PolyToBigint(p Poly[I]) (coeffs []*big.Int) {
	coeffs = make([]*big.Int, len(p.Coeffs))
	for i, c := range p.Coeffs {
		coeffs[i] = r.field.Big(r.field.Modulo(c))
	}
	return
}

// InfNorm returns the largest absolute value among the centered
// coefficients of p.
func (r *Ring[I]) InfNorm(p Poly[I]) I {

	f := r.field

	norm := f.Zero()
	for _, c := range p.Coeffs {
		if a := f.Abs(f.Modulo(c)); f.Cmp(a, norm) > 0 {
			norm = a
		}
	}

	return norm
}
