// SPDX-License-Identifier: MIT

package ridge_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramfit/kernel"
	"github.com/katalvlaran/gramfit/ridge"
)

// systemTol is the norm bound for reproducing y from a solved system on the
// synthetic 100-sample scenario.
const systemTol = 1e-4

// relativeResidualTol is the solver-tolerance bound for well-conditioned
// systems.
const relativeResidualTol = 1e-6

// syntheticSystem builds a 100×100 RBF Gram matrix (γ=0.5) over seeded
// synthetic 3-band features together with a synthetic target vector.
func syntheticSystem(t *testing.T, n int, seed int64) (*mat.SymDense, []float64) {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, 3, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			x.Set(i, j, rng.Float64())
		}
		y[i] = math.Sin(x.At(i, 0)) + 0.5*x.At(i, 1) - x.At(i, 2)*x.At(i, 2)
	}

	gram, err := kernel.GramRBF(0.5, x)
	require.NoError(t, err)

	return gram, y
}

// applySystem computes (K + λI)·α for verification.
func applySystem(k mat.Symmetric, alpha []float64, lambda float64) []float64 {
	n := k.SymmetricDim()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += k.At(i, j) * alpha[j]
		}
		out[i] = sum + lambda*alpha[i]
	}

	return out
}

// vectorNorm is the Euclidean norm of a slice.
func vectorNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// TestSolve_Validation verifies the fail-fast sentinel surface.
func TestSolve_Validation(t *testing.T) {
	k := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	y := []float64{1, 2}

	_, err := ridge.Solve(nil, y, 0.1, nil)
	assert.ErrorIs(t, err, ridge.ErrNilMatrix, "nil K must error")

	_, err = ridge.Solve(k, []float64{1}, 0.1, nil)
	assert.ErrorIs(t, err, ridge.ErrDimensionMismatch, "short y must error")

	for _, lambda := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err = ridge.Solve(k, y, lambda, nil)
		assert.ErrorIs(t, err, ridge.ErrBadLambda, "lambda=%v must be rejected", lambda)
	}

	opts := ridge.Options{Factorization: ridge.Factorization(99)}
	_, err = ridge.Solve(k, y, 0.1, &opts)
	assert.ErrorIs(t, err, ridge.ErrBadFactorization, "unknown mode must error")
}

// TestSolve_ReproducesTargets is the core scenario: n=100, λ=0.1; solving and
// recomputing (K+λI)·α must reproduce y to < 1e-4 norm difference.
func TestSolve_ReproducesTargets(t *testing.T) {
	const lambda = 0.1
	gram, y := syntheticSystem(t, 100, 42)

	alpha, err := ridge.Solve(gram, y, lambda, nil)
	require.NoError(t, err)
	require.Len(t, alpha, 100)

	back := applySystem(gram, alpha, lambda)
	diff := make([]float64, len(y))
	for i := range y {
		diff[i] = back[i] - y[i]
	}
	assert.Less(t, vectorNorm(diff), systemTol, "(K+λI)α must reproduce y")
}

// TestSolve_RelativeResidual verifies the solver-tolerance guarantee on a
// well-conditioned system: ||(K+λI)α - y|| / ||y|| < 1e-6.
func TestSolve_RelativeResidual(t *testing.T) {
	const lambda = 1.0
	gram, y := syntheticSystem(t, 60, 7)

	alpha, err := ridge.Solve(gram, y, lambda, nil)
	require.NoError(t, err)

	back := applySystem(gram, alpha, lambda)
	diff := make([]float64, len(y))
	for i := range y {
		diff[i] = back[i] - y[i]
	}
	assert.Less(t, vectorNorm(diff)/vectorNorm(y), relativeResidualTol)
}

// TestSolve_TrainingResidualShrinksWithLambda verifies that ||K·α − y||
// shrinks monotonically as λ → 0 on a well-conditioned kernel matrix.
func TestSolve_TrainingResidualShrinksWithLambda(t *testing.T) {
	gram, y := syntheticSystem(t, 40, 3)

	lambdas := []float64{1, 0.1, 0.01, 0.001}
	norms := make([]float64, len(lambdas))
	for i, lambda := range lambdas {
		alpha, err := ridge.Solve(gram, y, lambda, nil)
		require.NoError(t, err, "lambda=%v", lambda)

		fitted, err := ridge.Predict(gram, alpha)
		require.NoError(t, err)
		res, err := ridge.Residuals(fitted, y)
		require.NoError(t, err)
		norms[i] = vectorNorm(res)
	}
	for i := 1; i < len(norms); i++ {
		assert.Less(t, norms[i], norms[i-1],
			"residual norm must shrink as lambda decreases (λ=%v→%v)", lambdas[i-1], lambdas[i])
	}
}

// TestSolve_SingleSample covers the n=1 boundary: K=[[1]], any λ>0 yields
// α = y/(1+λ).
func TestSolve_SingleSample(t *testing.T) {
	k := mat.NewSymDense(1, []float64{1})
	y := []float64{3}

	for _, lambda := range []float64{0.1, 1, 10} {
		alpha, err := ridge.Solve(k, y, lambda, nil)
		require.NoError(t, err)
		require.Len(t, alpha, 1)
		assert.InDelta(t, y[0]/(1+lambda), alpha[0], 1e-12, "lambda=%v", lambda)
	}
}

// TestSolve_SingularWithoutRegularization verifies that a singular K with
// λ=0 surfaces as ErrUnsolvable (not a validation error), and that the same
// system becomes solvable once λ > 0 is supplied.
func TestSolve_SingularWithoutRegularization(t *testing.T) {
	// Rank-1 positive semi-definite matrix: the all-ones 3×3.
	k := mat.NewSymDense(3, []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	})
	y := []float64{1, 2, 3}

	_, err := ridge.Solve(k, y, 0, nil)
	assert.ErrorIs(t, err, ridge.ErrUnsolvable, "singular system must fail numerically")
	assert.NotErrorIs(t, err, ridge.ErrDimensionMismatch, "must not look like a validation error")

	_, err = ridge.Solve(k, y, 0.5, nil)
	assert.NoError(t, err, "regularization floor must restore solvability")
}

// TestSolve_CholeskyModeRejectsNonPD verifies the strict Cholesky mode.
func TestSolve_CholeskyModeRejectsNonPD(t *testing.T) {
	// Indefinite symmetric matrix.
	k := mat.NewSymDense(2, []float64{
		0, 1,
		1, 0,
	})
	opts := ridge.DefaultOptions()
	opts.Factorization = ridge.Cholesky

	_, err := ridge.Solve(k, []float64{1, 1}, 0, &opts)
	assert.ErrorIs(t, err, ridge.ErrUnsolvable, "non-PD matrix must be rejected in Cholesky mode")
}

// TestSolve_LUMatchesCholesky verifies that the two factorization modes agree
// on a positive-definite system.
func TestSolve_LUMatchesCholesky(t *testing.T) {
	gram, y := syntheticSystem(t, 25, 9)

	cholOpts := ridge.Options{Factorization: ridge.Cholesky}
	luOpts := ridge.Options{Factorization: ridge.LU}

	a1, err := ridge.Solve(gram, y, 0.1, &cholOpts)
	require.NoError(t, err)
	a2, err := ridge.Solve(gram, y, 0.1, &luOpts)
	require.NoError(t, err)

	for i := range a1 {
		assert.InDelta(t, a1[i], a2[i], 1e-8, "alpha[%d]", i)
	}
}

// TestSolve_InputNotMutated verifies that Solve leaves K untouched.
func TestSolve_InputNotMutated(t *testing.T) {
	k := mat.NewSymDense(2, []float64{2, 0.5, 0.5, 2})
	before := mat.NewSymDense(2, nil)
	before.CopySym(k)

	_, err := ridge.Solve(k, []float64{1, 2}, 0.7, nil)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(before, k, 0), "K must not be mutated by Solve")
}
