// Package ica estimates statistically independent, non-negative source
// signals from a linear mixture using a gradient-search variant of
// Independent Component Analysis specialized for non-negative sources.
//
// 🚀 What is non-negative ICA?
//
//	Classic ICA recovers hidden sources from mixed observations by making
//	the recovered signals as statistically independent as possible. When
//	the sources are known to be non-negative (spectra, images, counts,
//	intensities), that prior can replace the usual higher-order-statistics
//	contrast: a clipped-minimum nonlinearity f(y) = min(y, 0) penalizes
//	exactly the mass that a candidate source puts below zero.
//
// ✨ Key features:
//   - deterministic: W starts at the identity, no RNG anywhere
//   - orthonormal by construction: symmetric orthonormalization after
//     every gradient step keeps W·Wᵗ = I
//   - injectable progress Observer (silent by default, zerolog adapter
//     included)
//   - budget exhaustion is a reported state, never an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nnica/ica"
//
//	opts := ica.DefaultOptions()
//	opts.Sources = 2          // estimate two sources
//	opts.LearnRate = 0.03     // gradient step
//	opts.MaxIter = 5000       // iteration budget
//	opts.Tolerance = 1e-8     // ‖ΔW‖_F convergence threshold
//
//	res, err := ica.Solve(X, &opts) // X: channels × samples
//
// Ambiguity (inherent, not a defect):
//
//	ICA cannot determine the order, sign or scale of the recovered
//	sources. res.Sources may come back permuted and rescaled relative to
//	the truth, and res.Mixing is only a right inverse of W·V — not unique
//	when fewer sources than channels are requested. Compare recovered and
//	reference sources by correlation magnitude, not by equality.
//
// Numerical policy:
//
//	Singular or near-singular matrices during orthonormalization or
//	reconstruction fail fast with ErrSingularGram or
//	ErrSingularPseudoinverse. The package never regularizes silently;
//	callers with degenerate data should pre-condition it themselves.
//
// See whiten for the decorrelation step that feeds the solver, and
// examples/ for runnable end-to-end scenarios.
package ica
