package ring

// Add evaluates p3 = p1 + p2 coefficient-wise modulo Q.
func (r *Ring[I]) Add(p1, p2, p3 Poly[I]) {
	f := r.field
	for i := range p3.Coeffs {
		p3.Coeffs[i] = f.Modulo(f.Add(p1.Coeffs[i], p2.Coeffs[i]))
	}
}

// Sub evaluates p3 = p1 - p2 coefficient-wise modulo Q.
func (r *Ring[I]) Sub(p1, p2, p3 Poly[I]) {
	f := r.field
	for i := range p3.Coeffs {
		p3.Coeffs[i] = f.Modulo(f.Sub(p1.Coeffs[i], p2.Coeffs[i]))
	}
}

// Neg evaluates p2 = -p1 coefficient-wise modulo Q.
func (r *Ring[I]) Neg(p1, p2 Poly[I]) {
	f := r.field
	for i := range p2.Coeffs {
		p2.Coeffs[i] = f.Modulo(f.Neg(p1.Coeffs[i]))
	}
}

// Reduce evaluates p2 = p1 coefficient-wise modulo Q.
func (r *Ring[I]) Reduce(p1, p2 Poly[I]) {
	f := r.field
	for i := range p2.Coeffs {
		p2.Coeffs[i] = f.Modulo(p1.Coeffs[i])
	}
}

// MulScalar evaluates p2 = p1 * scalar coefficient-wise modulo Q.
func (r *Ring[I]) MulScalar(p1 Poly[I], scalar I, p2 Poly[I]) {
	f := r.field
	scalar = f.Modulo(scalar)
	for i := range p2.Coeffs {
		p2.Coeffs[i] = f.Modulo(f.Mul(p1.Coeffs[i], scalar))
	}
}

// Mul evaluates p3 = p1 * p2 in Z_Q[X]/(X^N+1).
// p3 may alias p1 or p2.
func (r *Ring[I]) Mul(p1, p2, p3 Poly[I]) {
	if r.ntt != nil {
		r.mulNTT(p1, p2, p3)
		return
	}
	r.MulSchoolbook(p1, p2, p3)
}

// MulSchoolbook evaluates p3 = p1 * p2 in Z_Q[X]/(X^N+1) with the negacyclic
// schoolbook convolution. Every partial product is reduced modulo Q, so the
// integer backend only needs to hold Q^2/4 + Q/2.
// p3 may alias p1 or p2.
func (r *Ring[I]) MulSchoolbook(p1, p2, p3 Poly[I]) {

	f := r.field
	n := r.n
	zero := f.Zero()

	acc := make([]I, n)
	for i := range acc {
		acc[i] = zero
	}

	for i, a := range p1.Coeffs {

		if f.Cmp(a, zero) == 0 {
			continue
		}

		for j, b := range p2.Coeffs {

			// X^N = -1
			if k := i + j; k < n {
				acc[k] = f.Modulo(f.Add(acc[k], f.Mul(a, b)))
			} else {
				acc[k-n] = f.Modulo(f.Sub(acc[k-n], f.Mul(a, b)))
			}
		}
	}

	copy(p3.Coeffs, acc)
}
