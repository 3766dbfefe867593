// SPDX-License-Identifier: MIT
// Package sample: sentinel error set.

package sample

import "errors"

var (
	// ErrBadSampleSize indicates a non-positive requested sample count.
	ErrBadSampleSize = errors.New("sample: sample size must be > 0")

	// ErrBadDim indicates a non-positive feature dimension at construction.
	ErrBadDim = errors.New("sample: feature dimension must be > 0")

	// ErrBadNoise indicates a negative or non-finite noise level.
	ErrBadNoise = errors.New("sample: noise level must be non-negative and finite")

	// ErrNilTarget indicates a nil target function at construction.
	ErrNilTarget = errors.New("sample: nil target function")
)
