// Package floats provides float64 vector kernels used by the POD pipeline.
// This is an internal package - external users should use the inner package.
package floats

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// ScaleInPlace multiplies all elements of a by scalar.
//
// This is primarily used by mode normalization.
func ScaleInPlace(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}

// AxpyInPlace computes dst[i] += alpha * x[i].
// Assumes dst and x are the same length (caller's responsibility).
func AxpyInPlace(dst []float64, alpha float64, x []float64) {
	for i := range x {
		dst[i] += alpha * x[i]
	}
}

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}
