// SPDX-License-Identifier: MIT

// Package dataset provides an immutable, validated container pairing a dense
// feature matrix X (n rows × d columns) with a positionally aligned target
// vector y (length n).
//
// The dataset package provides:
//
//   - Strict fail-fast construction: rectangular rows, aligned targets and
//     (by default) finite values only, reported via sentinel errors.
//   - Read-only access: every accessor returns a fresh copy, so downstream
//     kernel/ridge computations can never mutate a shared dataset.
//   - Positional alignment guarantees: Row(i) and Targets()[i] always refer
//     to the same observation, in sampling order.
//
// A Dataset is produced once (typically by a sample.Provider) and then
// treated as read-only input for Gram construction and regression.
package dataset
