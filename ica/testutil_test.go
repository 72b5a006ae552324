package ica_test

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// synthSources builds two deterministic, mutually independent, non-negative
// source sequences of length n: a sparse/spiky train and a slowly varying
// raised sine. Both are well-grounded (their distributions reach down to
// zero), which is the regime the non-negativity criterion needs.
func synthSources(n int) (spiky, slow []float64) {
	spiky = make([]float64, n)
	slow = make([]float64, n)

	// Small LCG keeps the spike train reproducible without seeding math/rand.
	state := uint32(42)
	next := func() float64 {
		state = state*1664525 + 1013904223

		return float64(state) / float64(math.MaxUint32)
	}

	for t := 0; t < n; t++ {
		if u := next(); u < 0.1 {
			spiky[t] = 1 + 3*next()
		}
		slow[t] = 1 + math.Sin(2*math.Pi*float64(t)/250)
	}

	return spiky, slow
}

// mix2 forms the observed 2×n data X = A·S for a 2×2 mixing matrix given
// row-major.
func mix2(s1, s2 []float64, a [4]float64) *mat.Dense {
	n := len(s1)
	x := mat.NewDense(2, n, nil)
	for t := 0; t < n; t++ {
		x.Set(0, t, a[0]*s1[t]+a[1]*s2[t])
		x.Set(1, t, a[2]*s1[t]+a[3]*s2[t])
	}

	return x
}

// absCorr is the magnitude of the Pearson correlation between two sequences,
// the permutation- and scale-tolerant oracle for recovered sources.
func absCorr(a, b []float64) float64 {
	return math.Abs(stat.Correlation(a, b, nil))
}

// maxAbsDevFromIdentity reports how far m is from the identity matrix.
func maxAbsDevFromIdentity(m mat.Matrix) float64 {
	r, c := m.Dims()
	var dev float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if d := math.Abs(m.At(i, j) - want); d > dev {
				dev = d
			}
		}
	}

	return dev
}
