// Package eigen provides solvers for the dense symmetric eigenproblem
// C v = lambda v arising from snapshot correlation matrices.
//
// Solvers make no ordering guarantee on the returned eigenpairs; sorting is
// the caller's job. Near-zero or slightly negative eigenvalues caused by
// floating-point error in a semi-definite matrix are returned untouched.
package eigen

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when a solver fails to converge.
var ErrNoConvergence = errors.New("eigensolver did not converge")

// Solver solves the dense symmetric real eigenproblem.
type Solver interface {
	// Solve returns the eigenvalues of c and the matrix whose k-th column is
	// the eigenvector paired with the k-th eigenvalue. For an n x n input it
	// returns n eigenpairs in no particular order.
	Solve(c *mat.SymDense) ([]float64, *mat.Dense, error)
}

// DenseSolver solves the eigenproblem with gonum's symmetric QR
// factorization. This is the default solver.
type DenseSolver struct{}

// Solve implements Solver.
func (DenseSolver) Solve(c *mat.SymDense) ([]float64, *mat.Dense, error) {
	n := c.SymmetricDim()
	if n == 0 {
		return nil, &mat.Dense{}, nil
	}

	var es mat.EigenSym
	if ok := es.Factorize(c, true); !ok {
		return nil, nil, ErrNoConvergence
	}

	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)
	return values, &vectors, nil
}
