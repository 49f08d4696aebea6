package pod

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/snapshot"
)

func TestBuildGramSymmetric(t *testing.T) {
	snaps, err := snapshot.FromFields(
		[]float64{1, 2, 0},
		[]float64{0, 1, 1},
		[]float64{3, 0, 2},
	)
	require.NoError(t, err)

	c, err := buildGram(context.Background(), snaps, inner.Euclidean{}, 1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, c.At(i, j), c.At(j, i), "C[%d][%d]", i, j)
		}
	}
	assert.Equal(t, 5.0, c.At(0, 0))
	assert.Equal(t, 2.0, c.At(0, 1))
	assert.Equal(t, 3.0, c.At(0, 2))
}

func TestBuildGramParallelMatchesSerial(t *testing.T) {
	snaps := snapshot.NewList()
	for i := 0; i < 8; i++ {
		f := make([]float64, 4)
		for j := range f {
			f[j] = float64(i*7+j*3) * 0.25
		}
		require.NoError(t, snaps.Append(f))
	}

	serial, err := buildGram(context.Background(), snaps, inner.Euclidean{}, 1)
	require.NoError(t, err)
	parallel, err := buildGram(context.Background(), snaps, inner.Euclidean{}, 4)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, serial.At(i, j), parallel.At(i, j))
		}
	}
}

func TestBuildGramFormFailure(t *testing.T) {
	snaps, err := snapshot.FromFields([]float64{1}, []float64{2})
	require.NoError(t, err)

	boom := errors.New("assembly failed")
	failing := inner.FormFunc(func(u, v []float64) (float64, error) {
		return 0, boom
	})

	_, err = buildGram(context.Background(), snaps, failing, 1)
	assert.ErrorIs(t, err, boom)

	_, err = buildGram(context.Background(), snaps, failing, 4)
	assert.ErrorIs(t, err, boom)
}

func TestBuildGramCanceled(t *testing.T) {
	snaps, err := snapshot.FromFields([]float64{1}, []float64{2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = buildGram(ctx, snaps, inner.Euclidean{}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
