package ica

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// gramEigenFloor is the relative eigenvalue threshold below which the Gram
// matrix W·Wᵗ is treated as singular and the inverse principal square root
// as undefined.
const gramEigenFloor = 1e-12

// orthonormalize projects w back onto the manifold of orthonormal matrices
// via symmetric orthonormalization:
//
//	w ← (w·wᵗ)^(−1/2) · w
//
// The inverse principal square root is computed through the eigendecomposition
// of the symmetric positive-definite Gram matrix w·wᵗ: eigenvalues are raised
// to −1/2, eigenvectors are kept, and the matrix is reassembled. After the
// call w·wᵗ equals the identity up to floating-point error, correcting the
// first-order drift introduced by the preceding gradient step.
//
// Errors:
//   - ErrSingularGram — the eigendecomposition fails or any eigenvalue of
//     w·wᵗ falls below gramEigenFloor relative to the largest one. No
//     regularization is attempted; the policy is fail-fast.
//
// Complexity: O(n³) for n = dim(w).
func orthonormalize(w *mat.Dense) error {
	n, _ := w.Dims()

	var gram mat.SymDense
	gram.SymOuterK(1, w)

	var eig mat.EigenSym
	if !eig.Factorize(&gram, true) {
		return ErrSingularGram
	}

	vals := eig.Values(nil)
	// Eigenvalues of w·wᵗ are non-negative; the last one is the largest.
	floor := gramEigenFloor * vals[n-1]

	var q mat.Dense
	eig.VectorsTo(&q)

	// scaled = Q·diag(λ^(−1/2)), column by column.
	scaled := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		if vals[j] <= floor || vals[j] <= 0 {
			return ErrSingularGram
		}
		f := 1 / math.Sqrt(vals[j])
		for i := 0; i < n; i++ {
			scaled.Set(i, j, q.At(i, j)*f)
		}
	}

	// (w·wᵗ)^(−1/2) = Q·diag(λ^(−1/2))·Qᵗ, then apply it to w.
	var invRoot, next mat.Dense
	invRoot.Mul(scaled, q.T())
	next.Mul(&invRoot, w)
	w.Copy(&next)

	return nil
}
