package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, float32(32), Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
}

func TestAxpy(t *testing.T) {
	y := []float32{1, 1, 1}
	Axpy(2, []float32{1, 2, 3}, y)
	assert.Equal(t, []float32{3, 5, 7}, y)
}

func TestAddDivZero(t *testing.T) {
	v := []float32{1, 2}
	Add(v, []float32{3, 4})
	assert.Equal(t, []float32{4, 6}, v)

	Div(v, 2)
	assert.Equal(t, []float32{2, 3}, v)

	Zero(v)
	assert.Equal(t, []float32{0, 0}, v)
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	assert.True(t, Normalize(v))
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	z := []float32{0, 0}
	assert.False(t, Normalize(z))
	assert.Equal(t, []float32{0, 0}, z)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2}, []float32{2, 4}), 1e-6)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 3}), 1e-6)
}

func TestVectorSum(t *testing.T) {
	v := []float32{1.0, 2.0, 3.0}
	assert.Equal(t, float32(6.0), VectorSum(v))
}
