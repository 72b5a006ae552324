package ica

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reconstruct derives the final sources and the mixing matrix from a
// converged unmixing matrix W, the whitening transform V and the whitened
// data Z:
//
//	Y = W·Z
//	A = (W·V)ᵗ · ((W·V)·(W·V)ᵗ)^(−1)
//
// A is a right pseudoinverse of W·V: (W·V)·A equals the identity on the
// source subspace. It is NOT unique when fewer sources than channels were
// requested, and it is the true mixing matrix only up to the permutation,
// sign and scale ambiguity inherent to ICA.
//
// Shapes: W is n×n, V is n×channels, Z is n×samples; any other combination
// is a programming-contract violation and returns ErrDimensionMismatch.
//
// Errors:
//   - ErrNilMatrix             — any input is nil.
//   - ErrDimensionMismatch     — inconsistent shapes.
//   - ErrSingularPseudoinverse — (W·V)·(W·V)ᵗ is singular; no degenerate
//     result is returned and no regularization is attempted.
//
// Complexity: O(n²·samples + n²·channels + n³).
func Reconstruct(W, V, Z *mat.Dense) (sources, mixing *mat.Dense, err error) {
	if W == nil || V == nil || Z == nil {
		return nil, nil, ErrNilMatrix
	}
	n, wc := W.Dims()
	vr, _ := V.Dims()
	zr, _ := Z.Dims()
	if wc != n || vr != n || zr != n {
		return nil, nil, ErrDimensionMismatch
	}

	var y mat.Dense
	y.Mul(W, Z)

	var wv mat.Dense
	wv.Mul(W, V)

	// Gram = (W·V)·(W·V)ᵗ, symmetric n×n.
	var gram mat.SymDense
	gram.SymOuterK(1, &wv)

	// Solve Gram·S = W·V instead of forming an explicit inverse; since Gram
	// is symmetric, A = (W·V)ᵗ·Gram⁻¹ = Sᵗ.
	var sol mat.Dense
	if err = sol.Solve(&gram, &wv); err != nil {
		return nil, nil, fmt.Errorf("ica: reconstruct: %w", ErrSingularPseudoinverse)
	}
	mixing = mat.DenseCopyOf(sol.T())

	return &y, mixing, nil
}
