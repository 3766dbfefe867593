// SPDX-License-Identifier: MIT
// Package ridge: the regularized dual-form solve.

package ridge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opSolve = "Solve"

// ridgeErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Only call with err != nil.
func ridgeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSystem checks the (K, y, λ) triple shared by Solve.
// Returns the validated dimension n. Errors: ErrNilMatrix, ErrEmptyMatrix,
// ErrDimensionMismatch, ErrBadLambda. Complexity: O(1).
func validateSystem(k mat.Symmetric, y []float64, lambda float64) (int, error) {
	if k == nil {
		return 0, ErrNilMatrix
	}
	n := k.SymmetricDim()
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	if len(y) != n {
		return 0, ErrDimensionMismatch
	}
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return 0, ErrBadLambda
	}

	return n, nil
}

// Solve computes the dual coefficient vector α from (K + λ·I) α = y.
//
// Implementation:
//   - Stage 1: Validate K (non-nil symmetric, n ≥ 1), y (length n) and λ
//     (finite, ≥ 0); copy K into a fresh symmetric matrix and add λ to the
//     diagonal — the input is never mutated.
//   - Stage 2: Factor per Options.Factorization and back-solve. Auto tries
//     Cholesky first (cheapest and stablest for the positive-definite case)
//     and falls back to LU with partial pivoting when Cholesky rejects the
//     matrix.
//
// Behavior highlights:
//   - λ = 0 is accepted; solvability then depends entirely on K. Callers
//     wanting a guarantee supply λ > 0, which makes K+λI positive definite
//     for any positive semi-definite kernel matrix.
//   - On a well-conditioned system the returned α satisfies (K+λI)α = y to
//     solver tolerance (relative residual well below 1e-6).
//
// Inputs:
//   - k     : n×n symmetric kernel (Gram) matrix.
//   - y     : length-n target vector, positionally aligned with K's rows.
//   - lambda: regularization scalar, λ ≥ 0.
//   - opts  : solver options; nil means DefaultOptions().
//
// Returns:
//   - []float64: dual coefficient vector α of length n.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch, ErrBadLambda,
//     ErrBadFactorization (validation), ErrUnsolvable (numerical failure).
//
// Complexity: Time O(n³) for the factorization, Space O(n²).
func Solve(k mat.Symmetric, y []float64, lambda float64, opts *Options) ([]float64, error) {
	// Validate the system before any allocation.
	n, err := validateSystem(k, y, lambda)
	if err != nil {
		return nil, ridgeErrorf(opSolve, err)
	}
	mode := Auto
	if opts != nil {
		mode = opts.Factorization
	}
	if mode != Auto && mode != Cholesky && mode != LU {
		return nil, ridgeErrorf(opSolve, ErrBadFactorization)
	}

	// Regularize into a fresh copy: reg = K + λI. K itself stays untouched.
	reg := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // upper triangle suffices for SymDense
			reg.SetSym(i, j, k.At(i, j))
		}
		reg.SetSym(i, i, reg.At(i, i)+lambda)
	}

	yVec := mat.NewVecDense(n, y)
	var alpha mat.VecDense

	// Cholesky path: valid whenever reg is positive definite.
	if mode == Auto || mode == Cholesky {
		var chol mat.Cholesky
		if chol.Factorize(reg) {
			if err = chol.SolveVecTo(&alpha, yVec); err == nil {
				return vecSlice(&alpha), nil
			}
			// A factorized-but-unsolvable system is a numerical failure.
			return nil, ridgeErrorf(opSolve, fmt.Errorf("cholesky: %w", ErrUnsolvable))
		}
		if mode == Cholesky {
			// Caller demanded positive definiteness; reg is not PD.
			return nil, ridgeErrorf(opSolve, fmt.Errorf("not positive definite: %w", ErrUnsolvable))
		}
	}

	// LU path: general dense solve with partial pivoting.
	var lu mat.LU
	lu.Factorize(reg)
	if err = lu.SolveVecTo(&alpha, false, yVec); err != nil {
		return nil, ridgeErrorf(opSolve, fmt.Errorf("lu: %w", ErrUnsolvable))
	}

	return vecSlice(&alpha), nil
}

// vecSlice copies a VecDense into a plain slice so callers never alias
// solver-internal storage. Complexity: O(n).
func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	copy(out, v.RawVector().Data)

	return out
}
