// SPDX-License-Identifier: MIT
// Package krr: sentinel error set.

package krr

import "errors"

var (
	// ErrNilKernel indicates that New received a nil kernel.
	ErrNilKernel = errors.New("krr: nil kernel")

	// ErrBadLambda indicates a negative, NaN or ±Inf regularization scalar.
	ErrBadLambda = errors.New("krr: lambda must be non-negative and finite")

	// ErrNilDataset indicates that Fit received a nil dataset.
	ErrNilDataset = errors.New("krr: nil dataset")

	// ErrNotFitted indicates that a prediction or diagnostic was requested
	// before a successful Fit.
	ErrNotFitted = errors.New("krr: model is not fitted")

	// ErrDimensionMismatch indicates a query point whose length differs from
	// the training feature dimension.
	ErrDimensionMismatch = errors.New("krr: dimension mismatch")
)
