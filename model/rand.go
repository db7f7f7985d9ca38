package model

// Rand is a linear congruential generator over a wrapping 64-bit state.
// Each worker owns one, so a single worker run is reproducible.
type Rand struct {
	state uint64
}

func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Next advances the generator and returns the new state.
func (r *Rand) Next() uint64 {
	r.state = r.state*25214903917 + 11
	return r.state
}

// Float returns a value in [0, 1) from the low 16 bits of the next state.
func (r *Rand) Float() float32 {
	return float32(r.Next()&0xFFFF) / 65536
}
