// SPDX-License-Identifier: MIT
// Package kernel: kernel function types.
// The evaluator entry points (Gram, EvalVector) are polymorphic over Kernel;
// nothing in this package is hard-wired to RBF.

package kernel

import "math"

// Kernel is a symmetric pairwise similarity function over feature vectors.
//
// Contract:
//   - Eval(a, b) == Eval(b, a) for all inputs.
//   - Callers guarantee len(a) == len(b); the matrix-level entry points
//     (Gram, EvalVector) validate dimensions once up front so that the hot
//     pairwise loop stays branch-free.
type Kernel interface {
	// Eval returns the kernel value for the pair (a, b).
	Eval(a, b []float64) float64
}

// RBF is the radial basis function (Gaussian) kernel
// exp(-γ·||a-b||²) for a fixed bandwidth γ > 0.
//
// Behavior highlights:
//   - RBF(a, a) = 1 exactly up to floating-point rounding.
//   - Values lie in (0, 1] for any finite inputs.
//   - γ → 0 degenerates all values toward 1 (documented, not special-cased).
type RBF struct {
	gamma float64
}

// NewRBF validates the bandwidth and returns an RBF kernel.
//
// Errors:
//   - ErrBadGamma when gamma ≤ 0, NaN or ±Inf.
//
// Complexity: O(1).
func NewRBF(gamma float64) (RBF, error) {
	// Reject non-positive and non-finite bandwidths up front.
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return RBF{}, ErrBadGamma
	}

	return RBF{gamma: gamma}, nil
}

// Gamma returns the configured bandwidth. Complexity: O(1).
func (k RBF) Gamma() float64 { return k.gamma }

// Eval computes exp(-γ·||a-b||²).
//
// The squared Euclidean distance is a genuine sum of squared componentwise
// differences accumulated in fixed index order.
//
// Complexity: O(d) where d = len(a).
func (k RBF) Eval(a, b []float64) float64 {
	var sum, diff float64
	for i := range a { // fixed ascending order; deterministic accumulation
		diff = a[i] - b[i]
		sum += diff * diff
	}

	return math.Exp(-k.gamma * sum)
}

// Linear is the plain inner-product kernel a·b.
type Linear struct{}

// Eval computes the dot product of a and b.
// Complexity: O(d).
func (Linear) Eval(a, b []float64) float64 {
	var sum float64
	for i := range a { // fixed ascending order; deterministic accumulation
		sum += a[i] * b[i]
	}

	return sum
}
