// Package inner provides symmetric bilinear forms used as inner products
// over snapshot fields.
//
// A Form must be symmetric and positive semi-definite for the resulting
// eigen-decomposition to be physically meaningful. This is assumed, not
// enforced.
package inner

import (
	"fmt"

	"github.com/hupe1980/romgo/internal/floats"
)

// Form is a symmetric bilinear operator over snapshot fields.
type Form interface {
	// Apply evaluates the form on a pair of fields, producing a scalar.
	Apply(u, v []float64) (float64, error)
}

// FormFunc adapts an evaluator function to the Form interface.
type FormFunc func(u, v []float64) (float64, error)

// Apply implements Form.
func (f FormFunc) Apply(u, v []float64) (float64, error) {
	return f(u, v)
}

// Euclidean is the standard dot product form.
type Euclidean struct{}

// Apply implements Form.
func (Euclidean) Apply(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, &ErrDimensionMismatch{Expected: len(u), Actual: len(v)}
	}
	return floats.Dot(u, v), nil
}

// Norm returns the norm of u induced by the form, sqrt(f(u, u)).
func Norm(f Form, u []float64) (float64, error) {
	sq, err := f.Apply(u, u)
	if err != nil {
		return 0, err
	}
	if sq < 0 {
		// Floating-point noise on a semi-definite form.
		return 0, nil
	}
	return floats.Sqrt(sq), nil
}

// ErrDimensionMismatch indicates fields whose dimensions are incompatible
// with each other or with the form.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("form dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
