package util

import (
	"github.com/viterin/vek/vek32"
	"gonum.org/v1/gonum/blas/blas32"
)

// dot product of two equal length vectors
func Dot(x, y []float32) float32 {
	return vek32.Dot(x, y)
}

// Axpy adds a*x to y in place.
func Axpy(a float32, x, y []float32) {
	blas32.Axpy(a,
		blas32.Vector{N: len(x), Inc: 1, Data: x},
		blas32.Vector{N: len(y), Inc: 1, Data: y})
}

// add x to dst in place
func Add(dst, x []float32) {
	vek32.Add_Inplace(dst, x)
}

// divide every element of x by a
func Div(x []float32, a float32) {
	vek32.DivNumber_Inplace(x, a)
}

// set every element of x to zero
func Zero(x []float32) {
	clear(x)
}

// Normalize scales x to unit length. A zero vector is left unchanged and
// reported as false.
func Normalize(x []float32) bool {
	n := vek32.Norm(x)
	if n == 0 {
		return false
	}
	vek32.DivNumber_Inplace(x, n)
	return true
}

// cosine similarity between x and y
func Cosine(x, y []float32) float32 {
	return vek32.CosineSimilarity(x, y)
}

// sum the vector
func VectorSum(data []float32) float32 {
	return vek32.Sum(data)
}
