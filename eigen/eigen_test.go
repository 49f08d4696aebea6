package eigen

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sortedDescending(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

func TestDenseSolverDiagonal(t *testing.T) {
	c := mat.NewSymDense(3, []float64{
		2, 0, 0,
		0, 5, 0,
		0, 0, 1,
	})

	values, vectors, err := DenseSolver{}.Solve(c)
	require.NoError(t, err)
	require.Len(t, values, 3)

	assert.InDeltaSlice(t, []float64{5, 2, 1}, sortedDescending(values), 1e-12)

	r, cols := vectors.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, cols)
}

func TestDenseSolverResidual(t *testing.T) {
	c := mat.NewSymDense(2, []float64{
		2, 1,
		1, 2,
	})

	values, vectors, err := DenseSolver{}.Solve(c)
	require.NoError(t, err)

	// Each pair must satisfy C v = lambda v.
	for k := range values {
		v := mat.NewVecDense(2, []float64{vectors.At(0, k), vectors.At(1, k)})
		var cv mat.VecDense
		cv.MulVec(c, v)
		for i := 0; i < 2; i++ {
			assert.InDelta(t, values[k]*v.AtVec(i), cv.AtVec(i), 1e-10)
		}
	}

	assert.InDeltaSlice(t, []float64{3, 1}, sortedDescending(values), 1e-12)
}

func TestSolveZeroValueMatrix(t *testing.T) {
	// NewSymDense rejects a zero dimension, but a zero-value SymDense is a
	// valid empty input a caller can hand to Solve directly.
	solvers := map[string]Solver{
		"dense":  DenseSolver{},
		"jacobi": JacobiSolver{},
	}
	for name, s := range solvers {
		t.Run(name, func(t *testing.T) {
			values, vectors, err := s.Solve(&mat.SymDense{})
			require.NoError(t, err)
			assert.Empty(t, values)
			require.NotNil(t, vectors)
		})
	}
}

func TestJacobiSolverMatchesDense(t *testing.T) {
	c := mat.NewSymDense(4, []float64{
		4, 1, 0, 2,
		1, 3, 1, 0,
		0, 1, 2, 1,
		2, 0, 1, 5,
	})

	dv, _, err := DenseSolver{}.Solve(c)
	require.NoError(t, err)
	jv, jvec, err := JacobiSolver{}.Solve(c)
	require.NoError(t, err)

	assert.InDeltaSlice(t, sortedDescending(dv), sortedDescending(jv), 1e-8)

	// Eigenvectors must be unit length.
	for k := range jv {
		var norm2 float64
		for i := 0; i < 4; i++ {
			norm2 += jvec.At(i, k) * jvec.At(i, k)
		}
		assert.InDelta(t, 1, math.Sqrt(norm2), 1e-8)
	}
}

func TestJacobiSolverSemiDefinite(t *testing.T) {
	// Rank-1 Gram matrix of three identical snapshots.
	c := mat.NewSymDense(3, []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	})

	values, _, err := JacobiSolver{}.Solve(c)
	require.NoError(t, err)

	sorted := sortedDescending(values)
	assert.InDelta(t, 3, sorted[0], 1e-10)
	assert.InDelta(t, 0, sorted[1], 1e-10)
	assert.InDelta(t, 0, sorted[2], 1e-10)
}
