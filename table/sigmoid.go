package table

import "math"

const (
	// SigmoidSize is the number of discretization steps.
	SigmoidSize = 1000
	// MaxExp bounds the domain; outside (-MaxExp, MaxExp) the logistic
	// function is treated as saturated.
	MaxExp = 6

	scale = float32(SigmoidSize) / (2 * MaxExp)
)

// Sigmoid is a precomputed logistic function over (-MaxExp, MaxExp). It is
// read only after construction and shared by all workers.
type Sigmoid struct {
	values [SigmoidSize + 1]float32
}

func NewSigmoid() *Sigmoid {
	s := &Sigmoid{}
	for i := 0; i < SigmoidSize; i++ {
		e := math.Exp((float64(i)/SigmoidSize*2 - 1) * MaxExp)
		s.values[i] = float32(e / (e + 1))
	}
	// index SigmoidSize is only reachable through rounding at the upper bound
	s.values[SigmoidSize] = s.values[SigmoidSize-1]
	return s
}

// Lookup returns the approximate logistic of f. ok is false when f lies
// outside the table domain, in which case the value is not defined.
func (s *Sigmoid) Lookup(f float32) (float32, bool) {
	if f <= -MaxExp || f >= MaxExp {
		return 0, false
	}
	return s.values[int((f+MaxExp)*scale)], true
}
