// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// dataset package. Constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user input.

package dataset

import "errors"

var (
	// ErrEmptyDataset is returned when construction receives zero feature rows.
	ErrEmptyDataset = errors.New("dataset: no feature rows")

	// ErrEmptyRow is returned when a feature row has zero columns.
	ErrEmptyRow = errors.New("dataset: feature row has no columns")

	// ErrRaggedRows is returned when feature rows disagree on column count.
	ErrRaggedRows = errors.New("dataset: ragged feature rows")

	// ErrTargetMismatch is returned when len(targets) differs from the number
	// of feature rows; X and y must stay positionally aligned.
	ErrTargetMismatch = errors.New("dataset: target length does not match row count")

	// ErrNaNInf is returned when a NaN or ±Inf value is encountered at
	// ingestion while the finite-values policy is active.
	ErrNaNInf = errors.New("dataset: NaN or Inf encountered")

	// ErrRowOutOfRange is returned by Row for an index outside [0, Len).
	ErrRowOutOfRange = errors.New("dataset: row index out of range")
)
