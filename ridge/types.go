// SPDX-License-Identifier: MIT

// Package ridge defines options and factorization modes for the dual solver.
package ridge

// Factorization controls how Solve factors K + λI.
//
//   - Auto     — try Cholesky first (valid whenever K+λI is positive
//     definite, which λ>0 guarantees for a PSD kernel matrix), fall back to
//     LU when the Cholesky factorization is rejected.
//   - Cholesky — require the Cholesky path; a non-PD matrix is ErrUnsolvable.
//   - LU       — always use plain LU with partial pivoting.
type Factorization int

const (
	// Auto mode: Cholesky with transparent LU fallback. The default.
	Auto Factorization = iota

	// Cholesky mode: positive-definite solve only, no fallback.
	Cholesky

	// LU mode: general dense solve, no positive-definiteness requirement.
	LU
)

// Options configures Solve.
//
// Fields:
//   - Factorization — factorization strategy (Auto, Cholesky, LU).
//
// Example:
//
//	opts := ridge.DefaultOptions()
//	opts.Factorization = ridge.LU
//	alpha, err := ridge.Solve(K, y, 0.1, &opts)
type Options struct {
	Factorization Factorization
}

// DefaultOptions returns the canonical defaults: Auto factorization.
func DefaultOptions() Options {
	return Options{Factorization: Auto}
}
