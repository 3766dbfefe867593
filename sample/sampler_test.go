// SPDX-License-Identifier: MIT

package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramfit/sample"
)

// TestNewSynthetic_Validation verifies construction-time sentinels.
func TestNewSynthetic_Validation(t *testing.T) {
	_, err := sample.NewSynthetic(1, sample.WithDim(0))
	assert.ErrorIs(t, err, sample.ErrBadDim)

	_, err = sample.NewSynthetic(1, sample.WithNoise(-1))
	assert.ErrorIs(t, err, sample.ErrBadNoise)

	_, err = sample.NewSynthetic(1, sample.WithNoise(math.NaN()))
	assert.ErrorIs(t, err, sample.ErrBadNoise)

	_, err = sample.NewSynthetic(1, sample.WithTarget(nil))
	assert.ErrorIs(t, err, sample.ErrNilTarget)
}

// TestSample_BadSize verifies the n ≤ 0 guard.
func TestSample_BadSize(t *testing.T) {
	s, err := sample.NewSynthetic(1)
	require.NoError(t, err)

	_, err = s.Sample(0)
	assert.ErrorIs(t, err, sample.ErrBadSampleSize)
	_, err = s.Sample(-5)
	assert.ErrorIs(t, err, sample.ErrBadSampleSize)
}

// TestSample_SeedDeterminism is the reproducibility contract: two providers
// with equal seeds must return row-for-row equal datasets.
func TestSample_SeedDeterminism(t *testing.T) {
	const n = 100

	a, err := sample.NewSynthetic(42)
	require.NoError(t, err)
	b, err := sample.NewSynthetic(42)
	require.NoError(t, err)

	dsA, err := a.Sample(n)
	require.NoError(t, err)
	dsB, err := b.Sample(n)
	require.NoError(t, err)

	require.Equal(t, n, dsA.Len())
	require.Equal(t, dsA.Len(), dsB.Len())
	require.Equal(t, dsA.Dim(), dsB.Dim())

	for i := 0; i < n; i++ {
		rowA, errA := dsA.Row(i)
		require.NoError(t, errA)
		rowB, errB := dsB.Row(i)
		require.NoError(t, errB)
		assert.Equal(t, rowA, rowB, "row %d must match exactly", i)
	}
	assert.Equal(t, dsA.Targets(), dsB.Targets(), "targets must match exactly")
}

// TestSample_Idempotent verifies that repeated calls on one provider return
// identical rows (fresh generator per call).
func TestSample_Idempotent(t *testing.T) {
	s, err := sample.NewSynthetic(7)
	require.NoError(t, err)

	ds1, err := s.Sample(20)
	require.NoError(t, err)
	ds2, err := s.Sample(20)
	require.NoError(t, err)

	assert.Equal(t, ds1.Targets(), ds2.Targets(), "repeated sampling must be idempotent")
}

// TestSample_DifferentSeedsDiffer is a sanity check that the seed actually
// drives the generated values.
func TestSample_DifferentSeedsDiffer(t *testing.T) {
	a, err := sample.NewSynthetic(1)
	require.NoError(t, err)
	b, err := sample.NewSynthetic(2)
	require.NoError(t, err)

	dsA, err := a.Sample(10)
	require.NoError(t, err)
	dsB, err := b.Sample(10)
	require.NoError(t, err)

	assert.NotEqual(t, dsA.Targets(), dsB.Targets(), "different seeds must differ")
}

// TestSample_Configuration verifies dimension, scale and noiseless targets.
func TestSample_Configuration(t *testing.T) {
	s, err := sample.NewSynthetic(3,
		sample.WithDim(5),
		sample.WithScale(10),
		sample.WithNoise(0),
	)
	require.NoError(t, err)
	require.Equal(t, 5, s.Dim())

	ds, err := s.Sample(50)
	require.NoError(t, err)
	require.Equal(t, 5, ds.Dim())

	for i := 0; i < ds.Len(); i++ {
		row, rowErr := ds.Row(i)
		require.NoError(t, rowErr)
		for j, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "row %d band %d lower bound", i, j)
			assert.Less(t, v, 10.0, "row %d band %d upper bound", i, j)
		}

		// With noise disabled the target is exactly the target function.
		tgt, tgtErr := ds.Target(i)
		require.NoError(t, tgtErr)
		assert.Equal(t, sample.DefaultTarget(row), tgt, "row %d noiseless target", i)
	}
}

// TestDefaultTarget_ShortRows verifies the missing-band convention.
func TestDefaultTarget_ShortRows(t *testing.T) {
	assert.Equal(t, 0.0, sample.DefaultTarget(nil))
	assert.InDelta(t, math.Sin(2*math.Pi*0.25), sample.DefaultTarget([]float64{0.25}), 1e-12)
}
