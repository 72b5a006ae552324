package ica

import "gonum.org/v1/gonum/mat"

// Unmix - non-negative ICA fixed-point iteration
//
// Description:
//
//	Unmix searches for an orthonormal matrix W such that the sources
//	recovered by W·Z are maximally independent under a non-negativity
//	assumption. The independence criterion is driven by the clipped-minimum
//	nonlinearity f(y) = min(y, 0): for truly non-negative independent
//	sources the expectation of f(Y)·Yᵗ is symmetric, so its skew-symmetric
//	part is a gradient direction on the manifold of orthonormal matrices.
//
// Algorithm Outline (per iteration):
//  1. Snapshot W as the pre-update reference.
//  2. Y = W·Z (candidate sources).
//  3. f(Y): clip every entry to min(y, 0).
//  4. E = (f(Y)·Yᵗ − (f(Y)·Yᵗ)ᵗ) / samples — skew-symmetric, tangent to
//     the orthonormal manifold to first order.
//  5. W ← W − LearnRate·(E·W).
//  6. W ← (W·Wᵗ)^(−1/2)·W (symmetric orthonormalization, see ortho.go).
//  7. delta = ‖W − W_prev‖_F; report (iteration, delta) to the observer.
//  8. Stop when delta < Tolerance, or when MaxIter is exhausted.
//
// W starts as the identity matrix; there is no randomness anywhere in the
// loop, so identical inputs and options yield identical results.
//
// Exhausting the budget is NOT an error: the last W is still returned and
// the caller detects non-convergence by comparing iterations to MaxIter.
//
// Errors:
//   - ErrNilMatrix    — Z is nil.
//   - ErrBadOptions   — non-positive LearnRate, MaxIter or Tolerance.
//   - ErrSingularGram — W·Wᵗ became singular during orthonormalization.
//
// Complexity: O(MaxIter · (n²·samples + n³)) for n sources.
//
// Unmix returns the converged (or budget-exhausted) orthonormal unmixing
// matrix and the number of iterations actually used.
func Unmix(Z *mat.Dense, opts *Options) (W *mat.Dense, iterations int, err error) {
	if Z == nil {
		return nil, 0, ErrNilMatrix
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = o.validate(); err != nil {
		return nil, 0, err
	}

	w, iters, _, err := unmix(Z, &o)

	return w, iters, err
}

// clipMin is the non-negativity surrogate: negative entries pass through,
// non-negative entries are zeroed.
func clipMin(_, _ int, v float64) float64 {
	if v < 0 {
		return v
	}

	return 0
}

// unmix runs the iteration with already-validated options and additionally
// reports whether the tolerance was actually met (the exported surface keeps
// the iteration-count contract only).
func unmix(Z *mat.Dense, o *Options) (w *mat.Dense, iters int, converged bool, err error) {
	n, samples := Z.Dims()

	// W starts as the identity: deterministic, already orthonormal.
	w = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		w.Set(i, i, 1)
	}

	prev := mat.NewDense(n, n, nil)
	invSamples := 1 / float64(samples)

	var y, fy, g, e, step, diff mat.Dense
	for it := 0; it < o.MaxIter; it++ {
		prev.Copy(w)

		y.Mul(w, Z)
		fy.Apply(clipMin, &y)

		g.Mul(&fy, y.T())
		e.Sub(&g, g.T())
		e.Scale(invSamples, &e)

		step.Mul(&e, w)
		step.Scale(o.LearnRate, &step)
		w.Sub(w, &step)

		if err = orthonormalize(w); err != nil {
			return nil, it, false, err
		}

		diff.Sub(w, prev)
		delta := mat.Norm(&diff, 2)
		iters = it + 1
		if o.Observer != nil {
			o.Observer.Progress(it, delta)
		}
		if delta < o.Tolerance {
			return w, iters, true, nil
		}
	}

	return w, iters, false, nil
}
