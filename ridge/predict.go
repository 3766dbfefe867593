// SPDX-License-Identifier: MIT
// Package ridge: prediction and residual diagnostics over a solved system.

package ridge

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opPredict   = "Predict"
	opPredictAt = "PredictAt"
	opResiduals = "Residuals"
)

// Predict returns the fitted values K·α on the training set.
//
// Inputs:
//   - k    : n×m kernel matrix (n×n training Gram in the usual case).
//   - alpha: dual coefficient vector of length m.
//
// Returns:
//   - []float64: length-n fitted values.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(n·m), Space O(n).
func Predict(k mat.Matrix, alpha []float64) ([]float64, error) {
	if k == nil {
		return nil, ridgeErrorf(opPredict, ErrNilMatrix)
	}
	rows, cols := k.Dims()
	if rows == 0 || cols == 0 {
		return nil, ridgeErrorf(opPredict, ErrEmptyMatrix)
	}
	if len(alpha) != cols {
		return nil, ridgeErrorf(opPredict, ErrDimensionMismatch)
	}

	var fitted mat.VecDense
	fitted.MulVec(k, mat.NewVecDense(cols, alpha))

	return vecSlice(&fitted), nil
}

// PredictAt returns the prediction k*·α for a single new point, where k* is
// the kernel-evaluation vector of the point against the training rows
// (kernel.EvalVector).
//
// Errors:
//   - ErrEmptyMatrix for empty inputs, ErrDimensionMismatch when lengths
//     disagree.
//
// Complexity: Time O(n), Space O(1).
func PredictAt(kstar, alpha []float64) (float64, error) {
	if len(kstar) == 0 {
		return 0, ridgeErrorf(opPredictAt, ErrEmptyMatrix)
	}
	if len(kstar) != len(alpha) {
		return 0, ridgeErrorf(opPredictAt, ErrDimensionMismatch)
	}

	return floats.Dot(kstar, alpha), nil
}

// Residuals returns the elementwise difference fitted − y.
//
// Errors:
//   - ErrDimensionMismatch when lengths disagree.
//
// Complexity: Time O(n), Space O(n).
func Residuals(fitted, y []float64) ([]float64, error) {
	if len(fitted) != len(y) {
		return nil, ridgeErrorf(opResiduals, ErrDimensionMismatch)
	}

	out := make([]float64, len(fitted))
	for i := range fitted { // fixed ascending order
		out[i] = fitted[i] - y[i]
	}

	return out, nil
}

// RMSE returns √(mean of squared residuals). An empty residual vector yields
// 0 by convention.
//
// Complexity: Time O(n), Space O(1).
func RMSE(residuals []float64) float64 {
	n := len(residuals)
	if n == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(residuals, residuals) / float64(n))
}
