// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the kernel
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions.

package kernel

import "errors"

var (
	// ErrNilKernel indicates that a nil Kernel was passed to an evaluator.
	ErrNilKernel = errors.New("kernel: nil kernel")

	// ErrNilMatrix indicates that a nil feature matrix was passed in.
	ErrNilMatrix = errors.New("kernel: nil feature matrix")

	// ErrEmptyMatrix indicates that the feature matrix has zero rows.
	ErrEmptyMatrix = errors.New("kernel: feature matrix has no rows")

	// ErrBadShape indicates that the feature matrix has zero columns.
	ErrBadShape = errors.New("kernel: feature matrix has no columns")

	// ErrDimensionMismatch indicates that a query vector's length differs
	// from the feature matrix column count.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrBadGamma indicates a non-positive or non-finite RBF bandwidth.
	ErrBadGamma = errors.New("kernel: gamma must be positive and finite")
)
