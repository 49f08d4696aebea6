package eigen

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiSolver solves the symmetric eigenproblem with cyclic Jacobi
// rotations. It is dependency-light and adequate for the small correlation
// matrices (e.g. < 64x64) typical of snapshot sets; prefer DenseSolver for
// larger problems.
type JacobiSolver struct {
	// MaxSweeps bounds the number of full rotation sweeps. Zero means the
	// default of 100.
	MaxSweeps int

	// Tol is the relative off-diagonal threshold below which a pair is
	// considered already rotated. Zero means the default of 1e-12.
	Tol float64
}

// Solve implements Solver.
func (s JacobiSolver) Solve(c *mat.SymDense) ([]float64, *mat.Dense, error) {
	n := c.SymmetricDim()
	if n == 0 {
		return nil, &mat.Dense{}, nil
	}

	maxSweeps := s.MaxSweeps
	if maxSweeps <= 0 {
		maxSweeps = 100
	}
	tol := s.Tol
	if tol <= 0 {
		tol = 1e-12
	}

	// Working copy of c; it converges to a diagonal of eigenvalues.
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = c.At(i, j)
		}
	}

	// V accumulates rotations, starting from the identity.
	v := make([][]float64, n)
	for i := range v {
		v[i] = make([]float64, n)
		v[i][i] = 1
	}

	converged := false
	for sweep_ := 0; sweep_ < maxSweeps; sweep_++ {
		if !sweep(a, v, n, tol) {
			converged = true
			break
		}
	}
	if !converged {
		return nil, nil, ErrNoConvergence
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = a[i][i]
	}
	vectors := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vectors.Set(i, j, v[i][j])
		}
	}
	return values, vectors, nil
}

// sweep performs one cyclic pass over all off-diagonal pairs.
// It reports whether any rotation was applied.
func sweep(a, v [][]float64, n int, tol float64) bool {
	changed := false
	for p := 0; p < n-1; p++ {
		for q := p + 1; q < n; q++ {
			apq := a[p][q]
			if math.Abs(apq) <= tol*(math.Abs(a[p][p])+math.Abs(a[q][q])) {
				continue
			}
			changed = true
			rotate(a, v, n, p, q)
		}
	}
	return changed
}

// rotate annihilates a[p][q] with a Jacobi rotation, updating a and v.
func rotate(a, v [][]float64, n, p, q int) {
	zeta := (a[q][q] - a[p][p]) / (2 * a[p][q])
	var t float64
	if zeta >= 0 {
		t = 1 / (zeta + math.Sqrt(1+zeta*zeta))
	} else {
		t = -1 / (-zeta + math.Sqrt(1+zeta*zeta))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := c * t

	app := a[p][p]
	aqq := a[q][q]
	apq := a[p][q]

	a[p][p] = app - t*apq
	a[q][q] = aqq + t*apq
	a[p][q] = 0
	a[q][p] = 0

	for k := 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		akp := a[k][p]
		akq := a[k][q]
		a[k][p] = c*akp - s*akq
		a[p][k] = a[k][p]
		a[k][q] = s*akp + c*akq
		a[q][k] = a[k][q]
	}

	for k := 0; k < n; k++ {
		vkp := v[k][p]
		vkq := v[k][q]
		v[k][p] = c*vkp - s*vkq
		v[k][q] = s*vkp + c*vkq
	}
}
