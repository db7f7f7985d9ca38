package table

import "math"

const (
	// DefaultUnigramSize is the number of slots of the sampling table.
	DefaultUnigramSize = 1e8
	// UnigramPower smooths the unigram distribution.
	UnigramPower = 0.75
)

// Unigram is a precomputed index array in which word i occupies a share of
// the slots proportional to count(i)^0.75, allowing O(1) draws.
type Unigram struct {
	slots []int32
}

// NewUnigram fills a table of size slots from counts in vocabulary order.
// size <= 0 selects DefaultUnigramSize.
func NewUnigram(counts []int64, size int) *Unigram {
	if size <= 0 {
		size = DefaultUnigramSize
	}
	n := len(counts)
	var total float64
	for _, c := range counts {
		total += math.Pow(float64(c), UnigramPower)
	}
	slots := make([]int32, size)
	i := 0
	d1 := math.Pow(float64(counts[i]), UnigramPower) / total
	for a := 0; a < size; a++ {
		slots[a] = int32(i)
		if float64(a)/float64(size) > d1 {
			i++
			if i < n {
				d1 += math.Pow(float64(counts[i]), UnigramPower) / total
			}
		}
		// guard against floating point overrun of the cumulative mass
		if i >= n {
			i = n - 1
		}
	}
	return &Unigram{slots: slots}
}

// Sample maps random bits to a word index.
func (u *Unigram) Sample(bits uint64) int32 {
	return u.slots[bits%uint64(len(u.slots))]
}

// Len returns the number of slots.
func (u *Unigram) Len() int {
	return len(u.slots)
}

// Slot returns the word index stored in slot i.
func (u *Unigram) Slot(i int) int32 {
	return u.slots[i]
}
