package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestScaleInPlace(t *testing.T) {
	v := []float64{1, -2, 3}
	ScaleInPlace(v, 0.5)
	assert.Equal(t, []float64{0.5, -1, 1.5}, v)
}

func TestAxpyInPlace(t *testing.T) {
	dst := []float64{1, 1, 1}
	AxpyInPlace(dst, 2, []float64{1, 2, 3})
	assert.Equal(t, []float64{3, 5, 7}, dst)
}

func TestNorm2(t *testing.T) {
	assert.InDelta(t, 5, Norm2([]float64{3, 4}), 1e-12)
	assert.Zero(t, Norm2(nil))
}
