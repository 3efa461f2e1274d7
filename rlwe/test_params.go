package rlwe

var (
	// testInsecure are insecure parameters used for the sole purpose of fast testing.
	testInsecure = []ParametersLiteral{
		// NTT-friendly for N=256
		{
			LogN: 8,
			Q:    7681,
			B:    1,
		},
		// NTT-friendly for N=512, larger noise
		{
			LogN: 9,
			Q:    8383489,
			B:    4,
		},
		// NTT-friendly for N=1024
		{
			LogN: 10,
			Q:    12289,
			B:    1,
		},
		// Not NTT-friendly, schoolbook multiplication
		{
			LogN: 8,
			Q:    3329,
			B:    1,
		},
	}
)
