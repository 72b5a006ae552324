package ica

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors. All fatal conditions abort the whole call; there is no
// partial-result recovery path. Match with errors.Is.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("ica: nil input matrix")

	// ErrTooManySources indicates Options.Sources exceeds the number of
	// observed channels. Checked before any whitening or iteration begins.
	ErrTooManySources = errors.New("ica: requested sources exceed channel count")

	// ErrBadOptions indicates a non-positive learning rate, iteration budget
	// or tolerance.
	ErrBadOptions = errors.New("ica: invalid options")

	// ErrSingularGram indicates that W·Wᵗ became singular during symmetric
	// orthonormalization, so its inverse principal square root is undefined.
	// Typically caused by degenerate or highly collinear input data.
	ErrSingularGram = errors.New("ica: singular Gram matrix in orthonormalization")

	// ErrSingularPseudoinverse indicates that (W·V)·(W·V)ᵗ is singular, so
	// the mixing matrix cannot be reconstructed.
	ErrSingularPseudoinverse = errors.New("ica: singular matrix in mixing-matrix reconstruction")

	// ErrDimensionMismatch indicates inconsistent matrix shapes between W, V
	// and Z. This is a programming-contract violation, not a data condition.
	ErrDimensionMismatch = errors.New("ica: dimension mismatch")
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultLearnRate is the gradient step size.
	DefaultLearnRate = 0.03

	// DefaultMaxIter is the iteration budget of the unmixing loop.
	DefaultMaxIter = 5000

	// DefaultTolerance is the Frobenius-norm change below which the loop
	// is considered converged.
	DefaultTolerance = 1e-8
)

// Options configures Solve and Unmix.
//
// Fields:
//   - Sources    — number of independent sources to estimate. Zero means
//     "as many as there are channels". Must not exceed the channel count.
//   - LearnRate  — gradient step size (> 0). No internal adaptation is
//     performed; the rate, tolerance and budget are independent knobs.
//   - MaxIter    — iteration budget (> 0). Exhausting it is not an error:
//     the last W is used and Result.Converged reports false.
//   - Tolerance  — convergence threshold (> 0) on ‖W − W_prev‖_F.
//   - RemoveMean — subtract per-channel means during whitening. Leave it
//     false for genuinely non-negative sources: centering pushes them below
//     zero and weakens the non-negativity prior the solver exploits.
//   - Observer   — optional per-iteration progress sink; nil means silent.
//
// Example:
//
//	opts := ica.DefaultOptions()
//	opts.Sources = 2
//	res, err := ica.Solve(X, &opts)
type Options struct {
	Sources    int
	LearnRate  float64
	MaxIter    int
	Tolerance  float64
	RemoveMean bool
	Observer   Observer
}

// DefaultOptions returns the documented defaults: estimate one source per
// channel, LearnRate=0.03, MaxIter=5000, Tolerance=1e-8, means kept,
// no observer.
func DefaultOptions() Options {
	return Options{
		Sources:    0,
		LearnRate:  DefaultLearnRate,
		MaxIter:    DefaultMaxIter,
		Tolerance:  DefaultTolerance,
		RemoveMean: false,
		Observer:   nil,
	}
}

// validate rejects knob values that cannot drive the iteration.
func (o *Options) validate() error {
	if o.LearnRate <= 0 || o.MaxIter <= 0 || o.Tolerance <= 0 {
		return ErrBadOptions
	}
	if o.Sources < 0 {
		return ErrBadOptions
	}

	return nil
}

// Result holds the outcome of a Solve call.
type Result struct {
	// Sources is the recovered source matrix (sources × samples): W applied
	// to the whitened data. Source order, sign and scale are arbitrary
	// (the usual ICA permutation ambiguity).
	Sources *mat.Dense

	// Mixing is the reconstructed mixing matrix (channels × sources), a
	// right inverse of W·V. It is not unique when Sources < channels.
	Mixing *mat.Dense

	// Unmixing is the converged orthonormal unmixing matrix
	// (sources × sources).
	Unmixing *mat.Dense

	// Iterations is the number of iterations actually performed.
	Iterations int

	// Converged reports whether the change magnitude dropped below
	// Tolerance within the iteration budget.
	Converged bool
}
