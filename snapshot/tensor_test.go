package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTensor(t *testing.T) {
	tensor, err := NewTensor(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, tensor.Rows())
	assert.Equal(t, 2, tensor.Cols())
	assert.Equal(t, 3.0, tensor.At(1, 0))

	_, err = NewTensor(2, 2, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestTensorListAppend(t *testing.T) {
	a, err := NewTensor(2, 3, make([]float64, 6))
	require.NoError(t, err)
	b, err := NewTensor(3, 2, make([]float64, 6))
	require.NoError(t, err)

	l := NewTensorList()
	require.NoError(t, l.Append(a))

	err = l.Append(b)
	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 2, sm.ExpectedRows)
	assert.Equal(t, 3, sm.ActualRows)
}

func TestTensorListFlatten(t *testing.T) {
	a, err := NewTensor(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := NewTensor(2, 2, []float64{5, 6, 7, 8})
	require.NoError(t, err)

	l := NewTensorList()
	require.NoError(t, l.Append(a))
	require.NoError(t, l.Append(b))

	flat := l.Flatten()
	assert.Equal(t, 2, flat.Len())
	assert.Equal(t, 4, flat.Dimension())
	assert.Equal(t, []float64{5, 6, 7, 8}, flat.At(1))
}
