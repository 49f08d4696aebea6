package snapshot

import "github.com/RoaringBitmap/roaring/v2"

// Mask selects a subset of snapshot indices, e.g. to run a decomposition on
// a training subset without copying fields. It wraps a 32-bit Roaring Bitmap.
type Mask struct {
	rb *roaring.Bitmap
}

// NewMask creates a mask containing the given indices.
func NewMask(indices ...uint32) *Mask {
	m := &Mask{rb: roaring.New()}
	m.rb.AddMany(indices)
	return m
}

// MaskRange creates a mask containing all indices in [start, end).
func MaskRange(start, end uint32) *Mask {
	m := &Mask{rb: roaring.New()}
	m.rb.AddRange(uint64(start), uint64(end))
	return m
}

// Add adds an index to the mask.
func (m *Mask) Add(i uint32) {
	m.rb.Add(i)
}

// Contains reports whether the mask includes index i.
func (m *Mask) Contains(i uint32) bool {
	return m.rb.Contains(i)
}

// Cardinality returns the number of selected indices.
func (m *Mask) Cardinality() int {
	return int(m.rb.GetCardinality())
}

// Iterate calls fn for each selected index in ascending order.
// Iteration stops when fn returns false.
func (m *Mask) Iterate(fn func(i uint32) bool) {
	it := m.rb.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			return
		}
	}
}
