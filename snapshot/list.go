// Package snapshot provides ordered collections of discretized fields and
// tensors consumed by the proper orthogonal decomposition pipeline.
//
// A List is append-only and insertion order is significant: it defines the
// indexing of the correlation matrix built from it. All fields in a List
// share the same dimension and are assumed to live in the same space, so
// they are comparable under a single inner product.
package snapshot

import "fmt"

// ErrDimensionMismatch indicates a field whose dimension does not match
// the dimension established by the first appended field.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("snapshot dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// List is an ordered, append-only collection of snapshot fields.
//
// The zero value is not usable; use NewList. A List holds references to the
// appended slices and never mutates them.
type List struct {
	dim    int
	fields [][]float64
}

// NewList creates an empty snapshot list.
func NewList() *List {
	return &List{}
}

// FromFields creates a list from the given fields.
// All fields must share the same dimension.
func FromFields(fields ...[]float64) (*List, error) {
	l := NewList()
	for _, f := range fields {
		if err := l.Append(f); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Append adds a field to the end of the list.
// The first appended field fixes the dimension of the list.
func (l *List) Append(field []float64) error {
	if l.Len() == 0 {
		l.dim = len(field)
	} else if len(field) != l.dim {
		return &ErrDimensionMismatch{Expected: l.dim, Actual: len(field)}
	}
	l.fields = append(l.fields, field)
	return nil
}

// Len returns the number of snapshots in the list.
func (l *List) Len() int {
	return len(l.fields)
}

// Dimension returns the shared dimension of the stored fields.
// It is zero for an empty list.
func (l *List) Dimension() int {
	return l.dim
}

// At returns the i-th field. The returned slice is the backing storage;
// callers must treat it as read-only.
func (l *List) At(i int) []float64 {
	return l.fields[i]
}

// Select returns a new list containing only the snapshots whose indices are
// set in mask, in ascending index order. The returned list shares field
// storage with the receiver.
func (l *List) Select(mask *Mask) (*List, error) {
	out := NewList()
	out.dim = l.dim
	var err error
	mask.Iterate(func(i uint32) bool {
		if int(i) >= l.Len() {
			err = fmt.Errorf("mask index %d out of range for %d snapshots", i, l.Len())
			return false
		}
		out.fields = append(out.fields, l.fields[i])
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
