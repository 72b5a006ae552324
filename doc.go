// Package nnica recovers statistically independent, non-negative source
// signals from linearly mixed observations — blind source separation with a
// non-negativity prior.
//
// 🚀 What is nnica?
//
//	A small, deterministic library that brings together:
//		• Whitening: eigendecomposition-based decorrelation & rescaling
//		• Unmixing: gradient search on the manifold of orthonormal matrices,
//		  driven by a clipped-minimum independence surrogate
//		• Reconstruction: sources + mixing matrix via a right pseudoinverse
//
// ✨ Why choose nnica?
//
//   - Deterministic – identity initialization, no hidden randomness
//   - Strict sentinels – every failure mode is a named error you can errors.Is
//   - Observable – injectable per-iteration progress observer (zerolog adapter)
//   - Built on gonum – dense linear algebra, eigendecomposition, solves
//
// Everything is organized under two subpackages:
//
//	ica/    — the core solver: Options, Unmix, Reconstruct, Solve
//	whiten/ — the decorrelation step feeding the solver
//
// Quick start:
//
//	opts := ica.DefaultOptions()
//	opts.Sources = 2
//	res, err := ica.Solve(X, &opts) // X: channels × samples
//
// Dive into examples/ for end-to-end blind-separation scenarios, including
// plotting recovered sources.
//
//	go get github.com/katalvlaran/nnica
package nnica
