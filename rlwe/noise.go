package rlwe

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
)

// Noise returns the decryption noise v - u*s - floor(Q/2)*m of a ciphertext
// ct encrypting m. Each coefficient of the noise equals the corresponding
// coefficient of e*r - e1*s + e2 modulo Q.
func (dk DecryptionKey[I]) Noise(ct *Ciphertext[I], m []I) (noise ring.Poly[I], err error) {

	if err = checkMessage(dk.params, m); err != nil {
		return ring.Poly[I]{}, fmt.Errorf("cannot Noise: %w", err)
	}

	r := dk.params.Ring()

	pt := r.NewPoly()
	encode(dk.params, m, pt)

	noise = dk.phase(ct)
	r.Sub(noise, pt, noise)

	return
}

// NoiseStats summarises the coefficients of a decryption noise.
type NoiseStats struct {
	Mean   float64
	StdDev float64
	MaxAbs float64

	// Log2Slack is log2(DecodingMargin/MaxAbs). Every bit decrypts
	// correctly if it is positive.
	Log2Slack float64
}

// NoiseStatistics returns the [NoiseStats] of the centered coefficients of
// noise, as returned by [DecryptionKey.Noise].
func NoiseStatistics[I any](params Parameters[I], noise ring.Poly[I]) (st NoiseStats, err error) {

	coeffs := params.Ring().PolyToBigint(noise)

	values := make(stats.Float64Data, len(coeffs))
	abs := make(stats.Float64Data, len(coeffs))

	for i, c := range coeffs {
		values[i], _ = new(big.Float).SetInt(c).Float64()
		abs[i] = math.Abs(values[i])
	}

	if st.Mean, err = stats.Mean(values); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot NoiseStatistics: %w", err)
	}

	if st.StdDev, err = stats.StandardDeviation(values); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot NoiseStatistics: %w", err)
	}

	if st.MaxAbs, err = stats.Max(abs); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot NoiseStatistics: %w", err)
	}

	margin, _ := new(big.Float).SetInt(params.DecodingMargin()).Float64()
	st.Log2Slack = math.Log2(margin) - math.Log2(st.MaxAbs)

	return
}

// String returns a one-line summary of the statistics.
func (st NoiseStats) String() string {
	return fmt.Sprintf("mean=%.3f std=%.3f max=%.0f slack=2^%.2f", st.Mean, st.StdDev, st.MaxAbs, st.Log2Slack)
}
