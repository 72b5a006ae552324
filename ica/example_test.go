package ica_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nnica/ica"
)

// ExampleSolve demonstrates blind separation of two non-negative sources
// from a 2-channel mixture.
//
// Scenario:
//
//	Two hidden, independent, non-negative signals — a sparse spike train
//	and a slow raised sine — are observed only through the mixed channels
//	x₀ = s₀ + 0.6·s₁ and x₁ = 0.5·s₀ + 1.2·s₁. Solve recovers sources
//	with the same statistics, up to order, sign and scale.
func ExampleSolve() {
	const n = 1000

	// Build the hidden sources and mix them.
	x := mat.NewDense(2, n, nil)
	state := uint32(7)
	for t := 0; t < n; t++ {
		state = state*1664525 + 1013904223
		var s0 float64
		if state < math.MaxUint32/8 {
			s0 = 2.5
		}
		s1 := 1 + math.Sin(2*math.Pi*float64(t)/200)
		x.Set(0, t, s0+0.6*s1)
		x.Set(1, t, 0.5*s0+1.2*s1)
	}

	opts := ica.DefaultOptions()
	opts.Sources = 2

	res, err := ica.Solve(x, &opts)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	sr, sc := res.Sources.Dims()
	mr, mc := res.Mixing.Dims()
	fmt.Printf("sources: %d×%d\n", sr, sc)
	fmt.Printf("mixing:  %d×%d\n", mr, mc)
	fmt.Println("within budget:", res.Iterations <= opts.MaxIter)

	// Output:
	// sources: 2×1000
	// mixing:  2×2
	// within budget: true
}

// ExampleObserverFunc shows how to watch convergence without touching the
// numerics: the observer receives (iteration, ‖ΔW‖_F) once per iteration.
func ExampleObserverFunc() {
	z := mat.NewDense(2, 4, []float64{
		0.5, 1.0, 0.2, 0.8,
		0.3, 0.9, 1.1, 0.4,
	})

	opts := ica.DefaultOptions()
	opts.Observer = ica.ObserverFunc(func(iteration int, delta float64) {
		fmt.Printf("iteration %d: delta %.1f\n", iteration, delta)
	})

	// Entirely non-negative data converges on the first iteration with a
	// zero update, so the output is stable.
	_, iters, err := ica.Unmix(z, &opts)
	fmt.Println(iters, err)

	// Output:
	// iteration 0: delta 0.0
	// 1 <nil>
}
