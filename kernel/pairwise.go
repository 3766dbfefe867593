// SPDX-License-Identifier: MIT
// Package kernel: vectorized pairwise-distance path.
// SquaredDistances and GramRBF form an independent computation route for the
// RBF Gram matrix, built on matrix products instead of the pairwise loop in
// gram.go. The two routes agreeing within tolerance is a tested property and
// the package's main numerical self-check.

package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opSquaredDistances = "SquaredDistances"
	opGramRBF          = "GramRBF"
)

// SquaredDistances computes the symmetric matrix of pairwise squared
// Euclidean distances D[i,j] = ||X[i] - X[j]||².
//
// Implementation:
//   - Stage 1: Validate the feature matrix; compute the inner-product matrix
//     G = X·Xᵀ with a single dense multiply.
//   - Stage 2: Expand via the identity ||a-b||² = a·a + b·b - 2·a·b over the
//     upper triangle, clamping tiny negative values (cancellation noise) to
//     zero; the diagonal is set to zero exactly.
//
// Behavior highlights:
//   - Independent of the loop-based Gram path: all pairwise arithmetic here
//     routes through the matrix product.
//   - Distances are never negative in the output.
//
// Inputs:
//   - x: n×d feature matrix.
//
// Returns:
//   - *mat.SymDense: symmetric n×n squared-distance matrix with zero diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrBadShape.
//
// Complexity: Time O(n²·d) dominated by the product, Space O(n²).
func SquaredDistances(x mat.Matrix) (*mat.SymDense, error) {
	n, _, err := validateFeatures(x)
	if err != nil {
		return nil, kernelErrorf(opSquaredDistances, err)
	}

	// G = X·Xᵀ holds every pairwise inner product.
	var g mat.Dense
	g.Mul(x, x.T())

	// Row self-products g[i,i] are the squared norms needed for expansion.
	norms := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		norms[i] = g.At(i, i)
	}

	// Expand ||a-b||² = a·a + b·b - 2·a·b on the upper triangle.
	out := mat.NewSymDense(n, nil)
	var d2 float64
	for i = 0; i < n; i++ {
		out.SetSym(i, i, 0) // exact zero self-distance
		for j = i + 1; j < n; j++ {
			d2 = norms[i] + norms[j] - 2*g.At(i, j)
			if d2 < 0 { // cancellation can undershoot zero by rounding noise
				d2 = 0
			}
			out.SetSym(i, j, d2)
		}
	}

	return out, nil
}

// GramRBF computes the RBF Gram matrix K[i,j] = exp(-γ·||X[i]-X[j]||²)
// through the vectorized SquaredDistances path.
//
// Implementation:
//   - Stage 1: Validate γ (same policy as NewRBF) and delegate the distance
//     matrix to SquaredDistances.
//   - Stage 2: Apply exp(-γ·d²) elementwise over the upper triangle.
//
// Inputs:
//   - gamma: RBF bandwidth, γ > 0 and finite.
//   - x    : n×d feature matrix.
//
// Returns:
//   - *mat.SymDense: symmetric n×n RBF Gram matrix with unit diagonal.
//
// Errors:
//   - ErrBadGamma plus everything SquaredDistances can return.
//
// Complexity: Time O(n²·d), Space O(n²).
func GramRBF(gamma float64, x mat.Matrix) (*mat.SymDense, error) {
	// Same bandwidth policy as the loop-based kernel constructor.
	if _, err := NewRBF(gamma); err != nil {
		return nil, kernelErrorf(opGramRBF, err)
	}
	dists, err := SquaredDistances(x)
	if err != nil {
		return nil, kernelErrorf(opGramRBF, err)
	}

	// Map distances through the RBF profile on the upper triangle.
	n := dists.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.SetSym(i, j, math.Exp(-gamma*dists.At(i, j)))
		}
	}

	return out, nil
}

// MaxAbsDiff reports the largest elementwise absolute difference between two
// equally sized symmetric matrices. Convenience for cross-checking the
// loop-based and vectorized Gram routes against a tolerance.
//
// Errors:
//   - ErrNilMatrix for nil inputs, ErrDimensionMismatch for unequal sizes.
//
// Complexity: Time O(n²), Space O(1).
func MaxAbsDiff(a, b mat.Symmetric) (float64, error) {
	if a == nil || b == nil {
		return 0, kernelErrorf("MaxAbsDiff", ErrNilMatrix)
	}
	n := a.SymmetricDim()
	if n != b.SymmetricDim() {
		return 0, kernelErrorf("MaxAbsDiff", ErrDimensionMismatch)
	}

	// Scan the upper triangle; symmetry makes the lower redundant.
	var i, j int
	var diff, maxDiff float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			diff = math.Abs(a.At(i, j) - b.At(i, j))
			if diff > maxDiff {
				maxDiff = diff
			}
		}
	}
	return maxDiff, nil
}
