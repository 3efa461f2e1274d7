package rlwe

import (
	"math"
	"math/big"

	"github.com/AlvinHon/ring-lwe-encryption/field"
	"github.com/AlvinHon/ring-lwe-encryption/utils/bignum"
)

const (
	// securityPrec is the precision in bits of the failure probability evaluation.
	securityPrec = 128

	// Failure probabilities below 2^minFailureLog2 are rounded to zero.
	minFailureLog2 = -(1 << 20)
)

// NoiseBound returns 2*N*B^2 + B, the largest absolute value a coefficient
// of the decryption noise e*r - e1*s + e2 can take.
func (p Parameters[I]) NoiseBound() *big.Int {
	return field.WorstCaseNoise(p.Field(), p.N())
}

// DecodingMargin returns the smallest absolute value of a noise coefficient
// that can flip the corresponding decrypted bit.
func (p Parameters[I]) DecodingMargin() *big.Int {
	return field.DecodingMargin(p.Field())
}

// IsDeterministic returns true if the worst-case noise is below the
// decoding margin, in which case decryption never fails.
func (p Parameters[I]) IsDeterministic() bool {
	return p.NoiseBound().Cmp(p.DecodingMargin()) < 0
}

// FailureProbability returns an upper bound on the probability that the
// decryption of a fresh ciphertext differs from the encrypted message.
//
// It is zero if [Parameters.IsDeterministic] holds. Otherwise it is the
// Hoeffding bound 2N * exp(-t^2/(4*N*B^4 + 2*B^2)) with t the decoding
// margin, capped at one. Bounds smaller than 2^-(2^20) are rounded to zero.
func (p Parameters[I]) FailureProbability() (prob *big.Float) {

	if p.IsDeterministic() {
		return bignum.NewFloat(0, securityPrec)
	}

	log2 := p.failureProbabilityLog2()

	if log2.Sign() == 0 {
		return bignum.NewFloat(1, securityPrec)
	}

	if log2.Cmp(bignum.NewFloat(minFailureLog2, securityPrec)) < 0 {
		return bignum.NewFloat(0, securityPrec)
	}

	return bignum.Exp(log2.Mul(log2, bignum.Ln2(securityPrec)))
}

// FailureProbabilityLog2 returns log2 of [Parameters.FailureProbability],
// evaluated without rounding to zero. It returns -Inf if the parameters
// are deterministic.
func (p Parameters[I]) FailureProbabilityLog2() float64 {

	if p.IsDeterministic() {
		return math.Inf(-1)
	}

	log2, _ := p.failureProbabilityLog2().Float64()

	return log2
}

// failureProbabilityLog2 returns min(0, log2(2N) - t^2/((4*N*B^4 + 2*B^2) * ln(2))).
func (p Parameters[I]) failureProbabilityLog2() (log2 *big.Float) {

	f := p.Field()

	t := p.DecodingMargin()
	b := f.Big(f.B())

	// 4*N*B^4 + 2*B^2
	b2 := new(big.Int).Mul(b, b)
	den := new(big.Int).Mul(b2, b2)
	den.Mul(den, big.NewInt(4*int64(p.N())))
	den.Add(den, new(big.Int).Lsh(b2, 1))

	x := bignum.NewFloat(new(big.Int).Mul(t, t), securityPrec)
	x.Quo(x, bignum.NewFloat(den, securityPrec))
	x.Quo(x, bignum.Ln2(securityPrec))

	log2 = bignum.NewFloat(1+p.LogN(), securityPrec)
	log2.Sub(log2, x)

	if log2.Sign() > 0 {
		log2.SetInt64(0)
	}

	return
}
