package inner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		u, v     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Euclidean{}.Apply(tt.u, tt.v)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclideanDimensionMismatch(t *testing.T) {
	_, err := Euclidean{}.Apply([]float64{1, 2}, []float64{1})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 1, dm.Actual)
}

func TestWeighted(t *testing.T) {
	// M = diag(2, 3): a(u, v) = 2*u0*v0 + 3*u1*v1
	m := mat.NewSymDense(2, []float64{2, 0, 0, 3})
	w := NewWeighted(m)

	got, err := w.Apply([]float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-12)

	// Symmetry with an off-diagonal entry.
	m2 := mat.NewSymDense(2, []float64{2, 1, 1, 3})
	w2 := NewWeighted(m2)
	u, v := []float64{1, 2}, []float64{-1, 1}
	ab, err := w2.Apply(u, v)
	require.NoError(t, err)
	ba, err := w2.Apply(v, u)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)
}

func TestWeightedDimensionMismatch(t *testing.T) {
	w := NewWeighted(mat.NewSymDense(2, []float64{1, 0, 0, 1}))
	_, err := w.Apply([]float64{1}, []float64{1, 2})
	var dm *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestFormFunc(t *testing.T) {
	failing := FormFunc(func(u, v []float64) (float64, error) {
		return 0, errors.New("assembly failed")
	})
	_, err := failing.Apply(nil, nil)
	assert.EqualError(t, err, "assembly failed")
}

func TestNorm(t *testing.T) {
	n, err := Norm(Euclidean{}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5, n, 1e-12)

	// A form returning a slightly negative self-product must not yield NaN.
	noisy := FormFunc(func(u, v []float64) (float64, error) { return -1e-18, nil })
	n, err = Norm(noisy, []float64{1})
	require.NoError(t, err)
	assert.Zero(t, n)
}
