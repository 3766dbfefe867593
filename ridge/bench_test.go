// SPDX-License-Identifier: MIT

package ridge_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramfit/ridge"
)

// benchmarkSolve is a helper that builds a diagonally dominant n×n symmetric
// system and times Solve under the given factorization mode. It resets the
// timer before entering the loop and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int, mode ridge.Factorization) {
	rng := rand.New(rand.NewSource(1))
	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			k.SetSym(i, j, rng.Float64()*0.1)
		}
		k.SetSym(i, i, 1.0) // diagonal dominance keeps the system well-conditioned
	}
	y := make([]float64, n)
	for i := range y {
		y[i] = rng.Float64()
	}
	opts := ridge.Options{Factorization: mode}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := ridge.Solve(k, y, 0.1, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Cholesky100 benchmarks the Cholesky path at n=100.
func BenchmarkSolve_Cholesky100(b *testing.B) { benchmarkSolve(b, 100, ridge.Cholesky) }

// BenchmarkSolve_Cholesky500 benchmarks the Cholesky path at n=500.
func BenchmarkSolve_Cholesky500(b *testing.B) { benchmarkSolve(b, 500, ridge.Cholesky) }

// BenchmarkSolve_LU100 benchmarks the LU path at n=100.
func BenchmarkSolve_LU100(b *testing.B) { benchmarkSolve(b, 100, ridge.LU) }

// BenchmarkSolve_LU500 benchmarks the LU path at n=500.
func BenchmarkSolve_LU500(b *testing.B) { benchmarkSolve(b, 500, ridge.LU) }
