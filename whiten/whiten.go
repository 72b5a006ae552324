package whiten

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("whiten: nil input matrix")

	// ErrBadDimension indicates targetDim outside [1, channels] or fewer
	// than two samples.
	ErrBadDimension = errors.New("whiten: invalid target dimension or sample count")

	// ErrDegenerateData indicates a rank-deficient channel covariance: one
	// of the targetDim largest eigenvalues is (numerically) zero, so the
	// whitening transform would not have full row rank.
	ErrDegenerateData = errors.New("whiten: degenerate data, covariance is rank-deficient")
)

// eigenFloor is the relative threshold below which a covariance eigenvalue
// is treated as zero.
const eigenFloor = 1e-12

// Whiten decorrelates X (channels × samples) down to targetDim rows.
//
// Steps:
//  1. Subtract each channel's mean to form X̄ (for the covariance only).
//  2. C = X̄·X̄ᵗ/(samples−1), the channel covariance.
//  3. Eigendecompose C; keep the targetDim largest eigenpairs, in
//     descending eigenvalue order.
//  4. V = D^(−1/2)·Eᵗ (targetDim × channels); Z = V·X̄ when removeMean,
//     otherwise Z = V·X.
//
// V is always built from the centered covariance, so the rows of Z are
// decorrelated with unit variance either way. removeMean only controls
// whether the channel means survive the projection: for non-negative ICA
// keep them (removeMean=false), since centering would push otherwise
// non-negative sources below zero and destroy the prior the solver
// depends on.
//
// Eigenvector signs are arbitrary in an eigendecomposition, so each
// selected eigenvector is oriented deterministically: it is flipped so
// that its projection of the channel means is non-negative (falling back
// to a positive largest-magnitude component when the means project to
// zero). Without this, already-separated non-negative input could reach
// the solver with a wholly sign-flipped row, which the non-negativity
// criterion can only undo by a slow rotation.
//
// X is read-only.
//
// Errors: ErrNilMatrix, ErrBadDimension, ErrDegenerateData.
//
// Complexity: O(channels²·samples + channels³).
func Whiten(X *mat.Dense, targetDim int, removeMean bool) (Z, V *mat.Dense, err error) {
	if X == nil {
		return nil, nil, ErrNilMatrix
	}
	channels, samples := X.Dims()
	if targetDim < 1 || targetDim > channels || samples < 2 {
		return nil, nil, ErrBadDimension
	}

	centered := mat.DenseCopyOf(X)
	means := make([]float64, channels)
	for i := 0; i < channels; i++ {
		row := centered.RawRowView(i)
		means[i] = stat.Mean(row, nil)
		floats.AddConst(-means[i], row)
	}

	var cov mat.SymDense
	cov.SymOuterK(1/float64(samples-1), centered)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return nil, nil, ErrDegenerateData
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// EigenSym orders eigenvalues ascending; the transform wants the
	// targetDim largest, descending.
	floor := eigenFloor * vals[channels-1]
	v := mat.NewDense(targetDim, channels, nil)
	for k := 0; k < targetDim; k++ {
		idx := channels - 1 - k
		lambda := vals[idx]
		if lambda <= 0 || lambda <= floor {
			return nil, nil, ErrDegenerateData
		}
		scale := 1 / math.Sqrt(lambda)
		if flipEigenvector(&vecs, idx, means) {
			scale = -scale
		}
		for j := 0; j < channels; j++ {
			v.Set(k, j, vecs.At(j, idx)*scale)
		}
	}

	var z mat.Dense
	if removeMean {
		z.Mul(v, centered)
	} else {
		z.Mul(v, X)
	}

	return &z, v, nil
}

// flipEigenvector reports whether eigenvector column idx of vecs needs its
// sign flipped under the deterministic orientation convention: the
// projection of the channel means must be non-negative, with the sign of
// the largest-magnitude component as the tie-breaker.
func flipEigenvector(vecs *mat.Dense, idx int, means []float64) bool {
	var proj float64
	for j, m := range means {
		proj += vecs.At(j, idx) * m
	}
	if proj != 0 {
		return proj < 0
	}

	lead, leadAbs := 0.0, 0.0
	for j := range means {
		if a := math.Abs(vecs.At(j, idx)); a > leadAbs {
			lead, leadAbs = vecs.At(j, idx), a
		}
	}

	return lead < 0
}
