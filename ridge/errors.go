// SPDX-License-Identifier: MIT
// Package ridge: sentinel error set (unified, consistent).
// Validation failures and numerical solve failures are distinct sentinels so
// callers can branch on them via errors.Is: a dimension mismatch is a caller
// bug, ErrUnsolvable is an invitation to retry with a larger λ.

package ridge

import "errors"

var (
	// ErrNilMatrix indicates that a nil kernel matrix was passed in.
	ErrNilMatrix = errors.New("ridge: nil kernel matrix")

	// ErrEmptyMatrix indicates a 0×0 kernel matrix.
	ErrEmptyMatrix = errors.New("ridge: empty kernel matrix")

	// ErrDimensionMismatch indicates that vector lengths disagree with the
	// kernel matrix dimension (y, α, k*, fitted).
	ErrDimensionMismatch = errors.New("ridge: dimension mismatch")

	// ErrBadLambda indicates a negative, NaN or ±Inf regularization scalar.
	ErrBadLambda = errors.New("ridge: lambda must be non-negative and finite")

	// ErrBadFactorization indicates an unknown Factorization mode in Options.
	ErrBadFactorization = errors.New("ridge: unknown factorization mode")

	// ErrUnsolvable indicates that K + λI is singular or too ill-conditioned
	// for a reliable solve. Distinct from validation errors; retry with a
	// larger λ.
	ErrUnsolvable = errors.New("ridge: system unsolvable, increase lambda")
)
