// SPDX-License-Identifier: MIT

// Package kernel provides pairwise kernel (similarity) functions and the
// construction of symmetric Gram matrices from feature data.
//
// The kernel package provides:
//
//   - Kernel, a small interface over pairwise feature-vector similarity,
//     with RBF (Gaussian) and Linear implementations.
//   - Gram for the full n×n kernel matrix of a feature matrix, symmetric by
//     construction (upper triangle computed once, mirrored).
//   - EvalVector for scoring a single query point against every training row.
//   - SquaredDistances / GramRBF, a vectorized pairwise-distance path built
//     on matrix products, independent of the loop-based Gram and therefore
//     usable to cross-validate it numerically.
//
// All routines are pure: inputs are never mutated and results are fresh
// allocations. Loop orders are fixed, so identical inputs always produce
// identical output, bit for bit.
//
// Kernel contract (RBF): kernel(a,b) = exp(-γ·||a-b||²) with γ > 0, hence
// kernel(a,a) = 1 up to rounding and kernel(a,b) ∈ (0, 1]. As γ → 0 every
// kernel value degenerates toward 1; this is documented behavior, not an
// error.
package kernel
