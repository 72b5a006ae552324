package ica

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nnica/whiten"
)

// Solve - end-to-end non-negative ICA
//
// Solve estimates statistically independent, non-negative source signals
// from the linear mixture X (channels × samples):
//
//	X (raw) → whiten.Whiten → Z, V → Unmix → W → Reconstruct → Y, A
//
// The number of estimated sources is opts.Sources (zero means one per
// channel) and must not exceed the channel count; that precondition is
// checked before any computation, including whitening, begins.
//
// One validated source count is threaded through all three stages: it is the
// channel-count bound here, the whitening target dimensionality, and the
// size of the square unmixing matrix.
//
// Each call owns its W and all derived matrices exclusively; concurrent
// Solve calls on independent data share no state.
//
// Errors:
//   - ErrNilMatrix / ErrBadOptions / ErrTooManySources — rejected up front.
//   - whiten.ErrDegenerateData — rank-deficient channel covariance.
//   - ErrSingularGram / ErrSingularPseudoinverse — numerical failures in
//     the solver and reconstruction; see ortho.go and reconstruct.go.
//
// Non-convergence is not an error: Result.Converged reports false and
// Result.Iterations equals opts.MaxIter.
//
// Example:
//
//	opts := ica.DefaultOptions()
//	opts.Sources = 2
//	res, err := ica.Solve(X, &opts)
//	if err != nil {
//		// handle
//	}
//	_ = res.Sources // 2 × samples
//	_ = res.Mixing  // channels × 2
func Solve(X *mat.Dense, opts *Options) (Result, error) {
	if X == nil {
		return Result{}, ErrNilMatrix
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	channels, _ := X.Dims()
	sources := o.Sources
	if sources == 0 {
		sources = channels
	}
	if sources > channels {
		return Result{}, ErrTooManySources
	}

	z, v, err := whiten.Whiten(X, sources, o.RemoveMean)
	if err != nil {
		return Result{}, fmt.Errorf("ica: whitening: %w", err)
	}

	w, iters, converged, err := unmix(z, &o)
	if err != nil {
		return Result{}, err
	}

	y, a, err := Reconstruct(w, v, z)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Sources:    y,
		Mixing:     a,
		Unmixing:   w,
		Iterations: iters,
		Converged:  converged,
	}, nil
}
