// SPDX-License-Identifier: MIT
// Package kernel: loop-based Gram construction and query-point scoring.

package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opGram       = "Gram"
	opEvalVector = "EvalVector"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Only call with err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Gram computes the n×n kernel (Gram) matrix K with K[i,j] = k(X[i], X[j]).
//
// Implementation:
//   - Stage 1: Validate kernel and feature matrix; materialize row views.
//   - Stage 2: Evaluate the upper triangle (i ≤ j) in fixed i→j order and
//     mirror it via symmetric storage, so K is symmetric by construction.
//
// Behavior highlights:
//   - Exactly n·(n+1)/2 kernel evaluations; the lower triangle is never
//     recomputed, so K[i,j] == K[j,i] holds bit for bit.
//   - X is never mutated; the result is a fresh allocation.
//
// Inputs:
//   - k: pairwise kernel (RBF, Linear, or any custom Kernel).
//   - x: n×d feature matrix, one observation per row.
//
// Returns:
//   - *mat.SymDense: symmetric n×n Gram matrix.
//
// Errors:
//   - ErrNilKernel, ErrNilMatrix, ErrEmptyMatrix, ErrBadShape.
//
// Complexity: Time O(n²·d), Space O(n²).
func Gram(k Kernel, x mat.Matrix) (*mat.SymDense, error) {
	// Validate kernel and shape before any allocation.
	if err := validateKernel(k); err != nil {
		return nil, kernelErrorf(opGram, err)
	}
	n, d, err := validateFeatures(x)
	if err != nil {
		return nil, kernelErrorf(opGram, err)
	}

	// Materialize row views once; avoids repeated At calls in the hot loop.
	rows := rowsOf(x, n, d)

	// Evaluate the upper triangle and mirror through symmetric storage.
	gram := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // upper triangle only, fixed order
			gram.SetSym(i, j, k.Eval(rows[i], rows[j]))
		}
	}

	return gram, nil
}

// EvalVector scores a single query point x against every row of the feature
// matrix: out[i] = k(X[i], x). Used to prepare the k* vector consumed by
// ridge.PredictAt.
//
// Implementation:
//   - Stage 1: Validate kernel, feature matrix, and query dimension.
//   - Stage 2: Evaluate rows in fixed ascending order.
//
// Inputs:
//   - k: pairwise kernel.
//   - x: n×d feature matrix (training rows).
//   - q: query vector of length d.
//
// Returns:
//   - *mat.VecDense: length-n kernel evaluation vector.
//
// Errors:
//   - ErrNilKernel, ErrNilMatrix, ErrEmptyMatrix, ErrBadShape,
//     ErrDimensionMismatch (len(q) ≠ d).
//
// Complexity: Time O(n·d), Space O(n).
func EvalVector(k Kernel, x mat.Matrix, q []float64) (*mat.VecDense, error) {
	// Validate kernel and shape.
	if err := validateKernel(k); err != nil {
		return nil, kernelErrorf(opEvalVector, err)
	}
	n, d, err := validateFeatures(x)
	if err != nil {
		return nil, kernelErrorf(opEvalVector, err)
	}
	// The query must match the training dimension exactly; no coercion.
	if len(q) != d {
		return nil, kernelErrorf(opEvalVector, ErrDimensionMismatch)
	}

	rows := rowsOf(x, n, d)

	// Score every training row against the query in fixed order.
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, k.Eval(rows[i], q))
	}

	return out, nil
}
