// Package gramfit is a small toolkit for kernel (Gram) matrix construction
// and kernelized ridge regression over in-memory dense data.
//
// 🚀 What is gramfit?
//
//	A deterministic, dependency-light numerical library that brings together:
//		• Kernels: RBF (Gaussian) and linear similarity functions
//		• Gram matrices: loop-based and vectorized pairwise evaluation
//		• Ridge solving: (K + λI)α = y via Cholesky with LU fallback
//		• Diagnostics: fitted values, residuals, RMSE
//		• Sampling: reproducible seeded feature/target providers
//
// ✨ Why choose gramfit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – fail-fast validation, sentinel errors, no panics
//   - Deterministic – fixed loop orders, seedable sampling, stable output
//   - Pure functions – immutable inputs, results are always fresh allocations
//
// Under the hood, everything is organized under five subpackages:
//
//	kernel/  — kernel functions and pairwise Gram/vector evaluation
//	ridge/   — regularized dual-form solver, prediction and residual stats
//	dataset/ — immutable aligned feature-matrix / target-vector container
//	sample/  — reproducible (seeded) synthetic feature-sampling providers
//	krr/     — high-level fit/predict estimator tying kernel + ridge together
//
// Quick sketch of the data flow:
//
//	X ──kernel.Gram──▶ K ──ridge.Solve(K, y, λ)──▶ α ──ridge.Predict──▶ ŷ
//
// Dive into examples/ for end-to-end fits and the Gram cross-check demo.
//
//	go get github.com/katalvlaran/gramfit
package gramfit
