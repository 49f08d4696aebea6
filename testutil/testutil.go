package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/romgo/internal/floats"
	"github.com/hupe1980/romgo/snapshot"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// FillGaussian fills dst with standard normal values.
func (r *RNG) FillGaussian(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
}

// UniformFields generates num random fields of the given dimension with
// values in [0, 1). Uses a single backing array for efficiency.
func (r *RNG) UniformFields(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	fields := make([][]float64, num)

	for i := 0; i < num; i++ {
		field := data[i*dim : (i+1)*dim]
		for j := range field {
			field[j] = r.rand.Float64()
		}
		fields[i] = field
	}
	return fields
}

// SnapshotList generates a list of num random snapshots of the given
// dimension with uniform values in [0, 1).
func (r *RNG) SnapshotList(num, dim int) *snapshot.List {
	list, err := snapshot.FromFields(r.UniformFields(num, dim)...)
	if err != nil {
		panic(err) // generated fields always share a dimension
	}
	return list
}

// Orthonormal reports whether the fields are pairwise orthonormal in
// the Euclidean inner product, up to tol.
func Orthonormal(fields [][]float64, tol float64) bool {
	for i := range fields {
		for j := i; j < len(fields); j++ {
			dot := floats.Dot(fields[i], fields[j])
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > tol {
				return false
			}
		}
	}
	return true
}
