// SPDX-License-Identifier: MIT
// Package krr: the fit/predict estimator.

package krr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramfit/dataset"
	"github.com/katalvlaran/gramfit/kernel"
	"github.com/katalvlaran/gramfit/ridge"
)

const (
	opFit     = "Fit"
	opPredict = "Predict"
)

// Option mutates construction-time configuration.
type Option func(*Model)

// WithSolverOptions overrides the ridge solver options (default:
// ridge.DefaultOptions, i.e. Cholesky with LU fallback).
func WithSolverOptions(opts ridge.Options) Option {
	return func(m *Model) { m.solver = opts }
}

// Model is a kernelized ridge regression estimator.
// The zero value is not usable; construct via New.
type Model struct {
	kern   kernel.Kernel
	lambda float64
	solver ridge.Options

	// State populated by a successful Fit; cleared by a failed one.
	x      *mat.Dense    // retained training features
	y      []float64     // retained training targets
	gram   *mat.SymDense // training Gram matrix
	alpha  []float64     // dual coefficients
	fitted bool
}

// New builds a Model from a kernel and a regularization scalar.
//
// Errors:
//   - ErrNilKernel, ErrBadLambda.
//
// Complexity: O(1).
func New(k kernel.Kernel, lambda float64, opts ...Option) (*Model, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, ErrBadLambda
	}

	m := &Model{kern: k, lambda: lambda, solver: ridge.DefaultOptions()}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Fit trains the model on an immutable dataset.
//
// Implementation:
//   - Stage 1: Validate the dataset; copy features and targets out of it.
//   - Stage 2: Build the Gram matrix, solve (K+λI)α = y, and commit all
//     cached state atomically. Any failure clears the fitted state instead
//     of leaving a half-updated model behind.
//
// Errors:
//   - ErrNilDataset, plus wrapped kernel and ridge errors (e.g. a singular
//     system with λ=0 surfaces as ridge.ErrUnsolvable).
//
// Complexity: Time O(n²·d + n³), Space O(n²).
func (m *Model) Fit(ds *dataset.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%s: %w", opFit, ErrNilDataset)
	}

	// Accessors copy, so the model owns everything it retains.
	x := ds.Features()
	y := ds.Targets()

	gram, err := kernel.Gram(m.kern, x)
	if err != nil {
		m.reset()

		return fmt.Errorf("%s: %w", opFit, err)
	}
	alpha, err := ridge.Solve(gram, y, m.lambda, &m.solver)
	if err != nil {
		m.reset()

		return fmt.Errorf("%s: %w", opFit, err)
	}

	// Commit on success only.
	m.x = x
	m.y = y
	m.gram = gram
	m.alpha = alpha
	m.fitted = true

	return nil
}

// reset clears all fitted state.
func (m *Model) reset() {
	m.x = nil
	m.y = nil
	m.gram = nil
	m.alpha = nil
	m.fitted = false
}

// IsFitted reports whether the model has been successfully fitted.
// Complexity: O(1).
func (m *Model) IsFitted() bool { return m.fitted }

// Predict returns the prediction for a single new point: k*·α with
// k*[i] = kernel(X[i], q) against the retained training rows.
//
// Errors:
//   - ErrNotFitted before a successful Fit, ErrDimensionMismatch when the
//     query length differs from the training dimension.
//
// Complexity: Time O(n·d), Space O(n).
func (m *Model) Predict(q []float64) (float64, error) {
	if !m.fitted {
		return 0, fmt.Errorf("%s: %w", opPredict, ErrNotFitted)
	}
	if _, d := m.x.Dims(); len(q) != d {
		return 0, fmt.Errorf("%s: %w", opPredict, ErrDimensionMismatch)
	}

	kstar, err := kernel.EvalVector(m.kern, m.x, q)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	out, err := ridge.PredictAt(vecSlice(kstar), m.alpha)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	return out, nil
}

// FittedValues returns K·α, the model's fitted values on the training set.
//
// Errors: ErrNotFitted.
// Complexity: Time O(n²), Space O(n).
func (m *Model) FittedValues() ([]float64, error) {
	if !m.fitted {
		return nil, fmt.Errorf("FittedValues: %w", ErrNotFitted)
	}

	fitted, err := ridge.Predict(m.gram, m.alpha)
	if err != nil {
		return nil, fmt.Errorf("FittedValues: %w", err)
	}

	return fitted, nil
}

// Residuals returns fitted − y on the training set.
//
// Errors: ErrNotFitted.
// Complexity: Time O(n²), Space O(n).
func (m *Model) Residuals() ([]float64, error) {
	fitted, err := m.FittedValues()
	if err != nil {
		return nil, err
	}

	res, err := ridge.Residuals(fitted, m.y)
	if err != nil {
		return nil, fmt.Errorf("Residuals: %w", err)
	}

	return res, nil
}

// RMSE returns the root-mean-square training error.
//
// Errors: ErrNotFitted.
// Complexity: Time O(n²), Space O(n).
func (m *Model) RMSE() (float64, error) {
	res, err := m.Residuals()
	if err != nil {
		return 0, err
	}

	return ridge.RMSE(res), nil
}

// Alpha returns a copy of the dual coefficient vector.
//
// Errors: ErrNotFitted.
// Complexity: O(n).
func (m *Model) Alpha() ([]float64, error) {
	if !m.fitted {
		return nil, fmt.Errorf("Alpha: %w", ErrNotFitted)
	}
	out := make([]float64, len(m.alpha))
	copy(out, m.alpha)

	return out, nil
}

// Lambda returns the configured regularization scalar. Complexity: O(1).
func (m *Model) Lambda() float64 { return m.lambda }

// vecSlice copies a VecDense into a plain slice.
func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	copy(out, v.RawVector().Data)

	return out
}
