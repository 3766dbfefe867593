// SPDX-License-Identifier: MIT

// Package ridge solves kernelized ridge regression in its dual form and
// provides prediction and residual diagnostics.
//
// Given an n×n kernel (Gram) matrix K, an aligned target vector y and a
// regularization scalar λ ≥ 0, Solve computes the dual coefficient vector α
// from
//
//	(K + λ·I) α = y
//
// using a dense Cholesky factorization when K + λI is positive definite and
// falling back to LU otherwise. Expressing the solution in the dual form
// routes all computation through the n×n kernel matrix, so the implicit
// feature map never has to be materialized (the kernel trick).
//
// Prediction utilities:
//
//   - Predict      — fitted values K·α on the training set.
//   - PredictAt    — k*·α for a new point, with k* from kernel.EvalVector.
//   - Residuals    — elementwise fitted − y.
//   - RMSE         — √(mean of squared residuals).
//
// Error surface: dimension and λ validation failures are reported via
// distinct sentinels, while a singular or severely ill-conditioned system
// surfaces as ErrUnsolvable — callers are expected to retry with a larger λ.
// λ = 0 is accepted but reduces to unregularized least squares and may be
// unsolvable when K is singular.
//
// All operations are pure, single-threaded computations over immutable
// inputs; memory is bounded by the O(n²) factorization workspace.
package ridge
