// SPDX-License-Identifier: MIT
// Package kernel: canonical validation helpers.
// Centralizing the guards keeps the evaluator entry points minimal and their
// error surfaces uniform. Validators return plain sentinels; call sites wrap
// with an operation tag.

package kernel

import "gonum.org/v1/gonum/mat"

// validateKernel ensures the kernel value is usable.
// Returns ErrNilKernel for a nil interface value. Complexity: O(1).
func validateKernel(k Kernel) error {
	if k == nil {
		return ErrNilKernel
	}

	return nil
}

// validateFeatures ensures X is non-nil with n ≥ 1 rows and d ≥ 1 columns,
// returning the validated dimensions.
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrBadShape. Complexity: O(1).
func validateFeatures(x mat.Matrix) (n, d int, err error) {
	if x == nil {
		return 0, 0, ErrNilMatrix
	}
	n, d = x.Dims()
	if n == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	if d == 0 {
		return 0, 0, ErrBadShape
	}

	return n, d, nil
}

// rowsOf materializes the rows of X as float64 slices.
// Fast-path: *mat.Dense rows are viewed in place (no copy); callers must not
// mutate the returned slices. Fallback copies element by element via At.
// Complexity: O(1) per row on the fast path, O(n·d) otherwise.
func rowsOf(x mat.Matrix, n, d int) [][]float64 {
	rows := make([][]float64, n)

	// Fast path: contiguous row-major storage exposes rows directly.
	if dense, ok := x.(*mat.Dense); ok {
		for i := 0; i < n; i++ {
			rows[i] = dense.RawRowView(i)
		}

		return rows
	}

	// Fallback: copy through the Matrix interface in fixed i→j order.
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, d)
		for j = 0; j < d; j++ {
			rows[i][j] = x.At(i, j)
		}
	}

	return rows
}
