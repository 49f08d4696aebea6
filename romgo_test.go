package romgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/romgo/eigen"
	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/snapshot"
)

func TestPOD(t *testing.T) {
	snaps, err := snapshot.FromFields(
		[]float64{2, 0},
		[]float64{0, 1},
	)
	require.NoError(t, err)

	res, err := POD(context.Background(), snaps, inner.Euclidean{}, 2, 0)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{4, 1}, res.Eigenvalues, 1e-12)
	assert.Equal(t, 2, res.Modes.Len())

	// Orthonormal under the form.
	for i := 0; i < res.Modes.Len(); i++ {
		sq, err := inner.Euclidean{}.Apply(res.Modes.At(i), res.Modes.At(i))
		require.NoError(t, err)
		assert.InDelta(t, 1, sq, 1e-9)
	}
}

func TestPODEmpty(t *testing.T) {
	res, err := POD(context.Background(), snapshot.NewList(), inner.Euclidean{}, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Eigenvalues)
	assert.Zero(t, res.Modes.Len())
}

func TestPODInvalidInput(t *testing.T) {
	snaps, err := snapshot.FromFields([]float64{1})
	require.NoError(t, err)

	_, err = POD(context.Background(), snaps, inner.Euclidean{}, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = POD(context.Background(), snaps, inner.Euclidean{}, 1, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPODWithOptions(t *testing.T) {
	snaps, err := snapshot.FromFields(
		[]float64{1, 1, 0},
		[]float64{0, 1, 1},
		[]float64{1, 0, 1},
	)
	require.NoError(t, err)

	res, err := POD(context.Background(), snaps, inner.Euclidean{}, 3, 0,
		WithNormalize(false),
		WithSolver(eigen.JacobiSolver{}),
		WithParallelism(2),
		WithLogger(NoopLogger()),
	)
	require.NoError(t, err)
	assert.Len(t, res.Eigenvalues, 3)
}

func TestPODBlockMixedParams(t *testing.T) {
	// Two blocks: rank caps per block, tolerance broadcast.
	b0 := snapshot.NewList()
	for i := 0; i < 3; i++ {
		require.NoError(t, b0.Append([]float64{float64(i + 1), 1}))
	}
	b1 := snapshot.NewList()
	for i := 0; i < 5; i++ {
		require.NoError(t, b1.Append([]float64{1, float64(i), float64(i) * 0.5}))
	}

	results, err := PODBlock(context.Background(),
		[]*snapshot.List{b0, b1},
		[]inner.Form{inner.Euclidean{}, inner.Euclidean{}},
		PerBlock(2, 5),
		Scalar(0.1),
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.LessOrEqual(t, results[0].Modes.Len(), 2)
	assert.Len(t, results[0].Eigenvalues, 3)
	assert.Len(t, results[1].Eigenvalues, 5)

	// Mismatched list length fails.
	_, err = PODBlock(context.Background(),
		[]*snapshot.List{b0, b1},
		[]inner.Form{inner.Euclidean{}, inner.Euclidean{}},
		PerBlock(1, 2, 3),
		Scalar(0.1),
	)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPODTensors(t *testing.T) {
	a, err := snapshot.NewTensor(2, 2, []float64{1, 0, 0, 0})
	require.NoError(t, err)
	b, err := snapshot.NewTensor(2, 2, []float64{0, 0, 0, 3})
	require.NoError(t, err)

	tensors := snapshot.NewTensorList()
	require.NoError(t, tensors.Append(a))
	require.NoError(t, tensors.Append(b))

	values, modes, vectors, err := PODTensors(context.Background(), tensors, 2, 0)
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, 2, modes.Len())
	assert.Len(t, vectors, 2)
}

func TestPODMetrics(t *testing.T) {
	snaps, err := snapshot.FromFields([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)

	mc := &BasicMetricsCollector{}
	_, err = POD(context.Background(), snaps, inner.Euclidean{}, 2, 0,
		WithMetricsCollector(mc))
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.DecompositionCount)
	assert.Equal(t, int64(2), stats.SnapshotsTotal)
	assert.Equal(t, int64(2), stats.ModesTotal)
	assert.Zero(t, stats.DecompositionErrors)
}
