package inner

import "gonum.org/v1/gonum/mat"

// Weighted is the matrix-weighted form a(u, v) = u^T M v, with M a symmetric
// matrix assembled externally (e.g. a finite-element mass or stiffness
// matrix).
type Weighted struct {
	m *mat.SymDense
}

// NewWeighted creates a weighted form from the given symmetric matrix.
func NewWeighted(m *mat.SymDense) *Weighted {
	return &Weighted{m: m}
}

// Apply implements Form.
func (w *Weighted) Apply(u, v []float64) (float64, error) {
	n := w.m.SymmetricDim()
	if len(u) != n {
		return 0, &ErrDimensionMismatch{Expected: n, Actual: len(u)}
	}
	if len(v) != n {
		return 0, &ErrDimensionMismatch{Expected: n, Actual: len(v)}
	}

	uv := mat.NewVecDense(n, u)
	vv := mat.NewVecDense(n, v)
	var mv mat.VecDense
	mv.MulVec(w.m, vv)
	return mat.Dot(uv, &mv), nil
}
