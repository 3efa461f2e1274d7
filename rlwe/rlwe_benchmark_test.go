package rlwe

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkRLWE(b *testing.B) {

	var err error

	defaultParamsLiteral := testInsecure

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		if err = json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			b.Fatal(err)
		}
		defaultParamsLiteral = []ParametersLiteral{jsonParams} // the custom test suite reads the parameters from the -params flag
	}

	for _, paramsLit := range defaultParamsLiteral {

		var params Parameters[int64]
		if params, err = NewParametersFromLiteral(paramsLit); err != nil {
			b.Fatal(err)
		}

		tc, err := NewTestContext(params)
		require.NoError(b, err)

		for _, testSet := range []func(tc *TestContext[int64], b *testing.B){
			benchKeyGenerator[int64],
			benchEncryptor[int64],
			benchDecryptor[int64],
		} {
			testSet(tc, b)
			runtime.GC()
		}
	}

	tc, err := NewTestContext(StandardParameters())
	require.NoError(b, err)

	benchKeyGenerator(tc, b)
	benchEncryptor(tc, b)
	benchDecryptor(tc, b)
}

func benchKeyGenerator[I any](tc *TestContext[I], b *testing.B) {

	params := tc.params

	b.Run(testString(params, "KeyGen"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := KeyGen(params, tc.prng); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchEncryptor[I any](tc *TestContext[I], b *testing.B) {

	params := tc.params

	m, err := RandomMessage(params, tc.prng, params.N())
	require.NoError(b, err)

	b.Run(testString(params, "Encrypt"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.ek.Encrypt(tc.prng, m); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchDecryptor[I any](tc *TestContext[I], b *testing.B) {

	params := tc.params

	m, err := RandomMessage(params, tc.prng, params.N())
	require.NoError(b, err)

	ct, err := tc.ek.Encrypt(tc.prng, m)
	require.NoError(b, err)

	b.Run(testString(params, "Decrypt"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = tc.dk.Decrypt(ct)
		}
	})
}
