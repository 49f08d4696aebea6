package snapshot

import "fmt"

// Tensor is a dense rows x cols tensor with row-major flat storage.
//
// Tensors carry their own default inner product (Frobenius), so a
// decomposition over tensors needs no externally supplied bilinear form.
type Tensor struct {
	rows, cols int
	data       []float64
}

// NewTensor creates a tensor from row-major data.
func NewTensor(rows, cols int, data []float64) (*Tensor, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("tensor data length %d does not match shape %dx%d", len(data), rows, cols)
	}
	return &Tensor{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Tensor) Cols() int { return t.cols }

// At returns the element at (i, j).
func (t *Tensor) At(i, j int) float64 {
	return t.data[i*t.cols+j]
}

// Flat returns the row-major backing slice.
// Callers must treat it as read-only.
func (t *Tensor) Flat() []float64 {
	return t.data
}

// ErrShapeMismatch indicates a tensor whose shape does not match the shape
// established by the first appended tensor.
type ErrShapeMismatch struct {
	ExpectedRows, ExpectedCols int
	ActualRows, ActualCols     int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("tensor shape mismatch: expected %dx%d, got %dx%d",
		e.ExpectedRows, e.ExpectedCols, e.ActualRows, e.ActualCols)
}

// TensorList is an ordered, append-only collection of equally shaped tensors.
type TensorList struct {
	rows, cols int
	tensors    []*Tensor
}

// NewTensorList creates an empty tensor list.
func NewTensorList() *TensorList {
	return &TensorList{}
}

// Append adds a tensor to the end of the list.
// The first appended tensor fixes the shape of the list.
func (l *TensorList) Append(t *Tensor) error {
	if l.Len() == 0 {
		l.rows, l.cols = t.rows, t.cols
	} else if t.rows != l.rows || t.cols != l.cols {
		return &ErrShapeMismatch{
			ExpectedRows: l.rows, ExpectedCols: l.cols,
			ActualRows: t.rows, ActualCols: t.cols,
		}
	}
	l.tensors = append(l.tensors, t)
	return nil
}

// Len returns the number of tensors in the list.
func (l *TensorList) Len() int {
	return len(l.tensors)
}

// Rows returns the shared row count. Zero for an empty list.
func (l *TensorList) Rows() int { return l.rows }

// Cols returns the shared column count. Zero for an empty list.
func (l *TensorList) Cols() int { return l.cols }

// At returns the i-th tensor.
func (l *TensorList) At(i int) *Tensor {
	return l.tensors[i]
}

// Flatten returns a snapshot List viewing each tensor's row-major storage
// as one field. The returned list shares storage with the tensors.
func (l *TensorList) Flatten() *List {
	out := NewList()
	out.dim = l.rows * l.cols
	for _, t := range l.tensors {
		out.fields = append(out.fields, t.data)
	}
	return out
}
