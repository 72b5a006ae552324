// Package whiten decorrelates and rescales multichannel data as a
// preprocessing step for Independent Component Analysis.
//
// Whitening maps raw observations X (channels × samples) to Z = V·X such
// that the rows of Z are decorrelated with unit variance. V is built from
// the eigendecomposition of the channel covariance matrix: keep the
// targetDim largest eigenpairs, scale each eigenvector by λ^(−1/2).
//
// The transform V is returned alongside Z because ICA needs it again when
// reconstructing the mixing matrix in the original channel space.
//
// Contract (consumed by package ica):
//   - V·X = Z exactly, by construction (V·(X−mean) when removeMean is set).
//   - V has full row rank targetDim; rank-deficient covariance fails with
//     ErrDegenerateData instead of returning a defective transform.
package whiten
