// SPDX-License-Identifier: MIT
// Package dataset: immutable aligned (X, y) container.
// Construction copies its inputs; accessors copy their outputs. A Dataset is
// never mutated after New, which is what lets kernel/ridge treat it as a
// read-only input shared across computations.

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Option mutates construction-time policy. Options are applied in order.
type Option func(*config)

// config holds construction policy; fields are unexported by design.
type config struct {
	allowNonFinite bool
}

// WithAllowNonFinite disables the default finite-values check, permitting
// NaN/±Inf entries in features and targets. Use only when the caller has its
// own numeric policy downstream.
func WithAllowNonFinite() Option {
	return func(c *config) { c.allowNonFinite = true }
}

// Dataset pairs an n×d feature matrix with an aligned n-length target vector.
// The zero value is not usable; construct via New.
type Dataset struct {
	x *mat.Dense // n×d features, row-major, owned by the Dataset
	y []float64  // n targets, owned by the Dataset
	n int        // number of observations
	d int        // feature dimension
}

// New builds a Dataset from raw feature rows and targets.
//
// Implementation:
//   - Stage 1: Validate shape (non-empty, rectangular rows, aligned targets).
//   - Stage 2: Copy rows into a fresh dense matrix and targets into a fresh
//     slice, checking finiteness per value unless disabled.
//
// Inputs:
//   - features: n rows of equal length d ≥ 1.
//   - targets : n scalars, targets[i] aligned with features[i].
//   - opts    : construction policy (WithAllowNonFinite).
//
// Errors:
//   - ErrEmptyDataset, ErrEmptyRow, ErrRaggedRows, ErrTargetMismatch, ErrNaNInf.
//
// Complexity: Time O(n·d), Space O(n·d) for the owned copies.
func New(features [][]float64, targets []float64, opts ...Option) (*Dataset, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate shape before any allocation.
	n := len(features)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	d := len(features[0])
	if d == 0 {
		return nil, ErrEmptyRow
	}
	var i, j int
	for i = 1; i < n; i++ {
		if len(features[i]) != d {
			return nil, fmt.Errorf("row %d: %w", i, ErrRaggedRows)
		}
	}
	if len(targets) != n {
		return nil, ErrTargetMismatch
	}

	// Copy features row by row in deterministic order.
	x := mat.NewDense(n, d, nil)
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v = features[i][j]
			if !cfg.allowNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("feature (%d,%d): %w", i, j, ErrNaNInf)
			}
			x.Set(i, j, v)
		}
	}

	// Copy targets with the same numeric policy.
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		v = targets[i]
		if !cfg.allowNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, fmt.Errorf("target %d: %w", i, ErrNaNInf)
		}
		y[i] = v
	}

	return &Dataset{x: x, y: y, n: n, d: d}, nil
}

// FromMatrix builds a Dataset directly from a gonum matrix and a target
// slice. The matrix contents are copied; the same validation as New applies.
func FromMatrix(x mat.Matrix, targets []float64, opts ...Option) (*Dataset, error) {
	if x == nil {
		return nil, ErrEmptyDataset
	}
	n, d := x.Dims()
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if d == 0 {
		return nil, ErrEmptyRow
	}
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, d)
		for j = 0; j < d; j++ {
			rows[i][j] = x.At(i, j)
		}
	}

	return New(rows, targets, opts...)
}

// Len returns the number of observations n. Complexity: O(1).
func (ds *Dataset) Len() int { return ds.n }

// Dim returns the feature dimension d. Complexity: O(1).
func (ds *Dataset) Dim() int { return ds.d }

// Features returns a defensive copy of the n×d feature matrix.
// Mutating the returned matrix never affects the Dataset.
// Complexity: O(n·d).
func (ds *Dataset) Features() *mat.Dense {
	out := mat.NewDense(ds.n, ds.d, nil)
	out.Copy(ds.x)

	return out
}

// Targets returns a copy of the aligned target vector.
// Complexity: O(n).
func (ds *Dataset) Targets() []float64 {
	out := make([]float64, ds.n)
	copy(out, ds.y)

	return out
}

// Row returns a copy of feature row i, aligned with Targets()[i].
// Errors: ErrRowOutOfRange for i outside [0, Len).
// Complexity: O(d).
func (ds *Dataset) Row(i int) ([]float64, error) {
	if i < 0 || i >= ds.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrRowOutOfRange)
	}
	out := make([]float64, ds.d)
	copy(out, ds.x.RawRowView(i))

	return out, nil
}

// Target returns target value i.
// Errors: ErrRowOutOfRange for i outside [0, Len).
// Complexity: O(1).
func (ds *Dataset) Target(i int) (float64, error) {
	if i < 0 || i >= ds.n {
		return 0, fmt.Errorf("Target(%d): %w", i, ErrRowOutOfRange)
	}

	return ds.y[i], nil
}

// Clone returns a deep copy of the Dataset.
// Complexity: O(n·d).
func (ds *Dataset) Clone() *Dataset {
	x := mat.NewDense(ds.n, ds.d, nil)
	x.Copy(ds.x)
	y := make([]float64, ds.n)
	copy(y, ds.y)

	return &Dataset{x: x, y: y, n: ds.n, d: ds.d}
}
