package huffman

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedLength(counts []int64, tree *Tree) int64 {
	var total int64
	for i, c := range counts {
		total += c * int64(tree.Codes[i].Len())
	}
	return total
}

// optimal Huffman cost computed with a plain priority scan
func optimalCost(counts []int64) int64 {
	w := append([]int64(nil), counts...)
	var cost int64
	for len(w) > 1 {
		sort.Slice(w, func(i, j int) bool { return w[i] < w[j] })
		merged := w[0] + w[1]
		cost += merged
		w = append([]int64{merged}, w[2:]...)
	}
	return cost
}

func randomCounts(r *rand.Rand, n int, zipf bool) []int64 {
	counts := make([]int64, n)
	for i := range counts {
		if zipf {
			counts[i] = int64(1e6 / (i + 1))
		} else {
			counts[i] = r.Int63n(1000) + 1
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })
	return counts
}

func TestBuildSixWords(t *testing.T) {
	counts := []int64{7, 5, 4, 4, 3, 2}

	tree, err := Build(counts, 0)
	require.NoError(t, err)

	assert.Len(t, tree.Children, 5)
	assert.Equal(t, 10, tree.Root())
	assert.Equal(t, int64(25), tree.Weight[tree.Root()])
	assert.Equal(t, int64(63), optimalCost(counts))
	assert.Equal(t, optimalCost(counts), weightedLength(counts, tree))

	longest := 0
	for _, c := range tree.Codes {
		if c.Len() > longest {
			longest = c.Len()
		}
	}
	assert.Equal(t, longest, tree.Codes[4].Len())
	assert.Equal(t, longest, tree.Codes[5].Len())
}

func TestBuildTwoLeaves(t *testing.T) {
	tree, err := Build([]int64{3, 1}, 0)
	require.NoError(t, err)

	assert.Equal(t, Code{Bits: []byte{1}, Path: []int32{0}}, tree.Codes[0])
	assert.Equal(t, Code{Bits: []byte{0}, Path: []int32{0}}, tree.Codes[1])
}

func TestBuildTieBreak(t *testing.T) {
	// after merging 1+1 the internal node weighs 2, equal to the next
	// leaf; the internal node is taken first
	tree, err := Build([]int64{2, 1, 1}, 0)
	require.NoError(t, err)

	assert.Equal(t, [2]int32{3, 0}, tree.Children[1])
	assert.Equal(t, 1, tree.Codes[0].Len())
	assert.Equal(t, 2, tree.Codes[1].Len())
}

func TestBuildProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, tc := range []struct {
		name string
		n    int
		zipf bool
	}{
		{"uniform small", 2, false},
		{"uniform", 57, false},
		{"uniform large", 1000, false},
		{"zipf", 500, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			counts := randomCounts(r, tc.n, tc.zipf)
			tree, err := Build(counts, 0)
			require.NoError(t, err)

			kraft := 0.0
			seen := make(map[string]bool)
			for i, c := range tree.Codes {
				require.GreaterOrEqual(t, c.Len(), 1)
				require.LessOrEqual(t, c.Len(), MaxCodeLength)
				require.Len(t, c.Path, c.Len())
				assert.Equal(t, int32(tc.n-2), c.Path[0])
				kraft += math.Pow(2, -float64(c.Len()))

				leaf, path, ok := tree.Decode(c.Bits)
				require.True(t, ok)
				assert.Equal(t, i, leaf)
				assert.Equal(t, c.Path, path)

				key := string(c.Bits)
				assert.False(t, seen[key], "duplicate code for leaf %d", i)
				seen[key] = true
			}
			assert.InDelta(t, 1.0, kraft, 1e-9)

			for i := range counts {
				for j := i + 1; j < len(counts); j++ {
					if counts[i] > counts[j] && tree.Codes[i].Len() > tree.Codes[j].Len() {
						t.Fatalf("count %d got length %d, count %d got %d",
							counts[i], tree.Codes[i].Len(), counts[j], tree.Codes[j].Len())
					}
				}
			}
			assert.Equal(t, optimalCost(counts), weightedLength(counts, tree))
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	counts := randomCounts(rand.New(rand.NewSource(3)), 200, false)

	a, err := Build(counts, 0)
	require.NoError(t, err)
	b, err := Build(counts, 0)
	require.NoError(t, err)

	assert.Equal(t, a.Codes, b.Codes)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build([]int64{5}, 0)
	assert.ErrorIs(t, err, ErrTooFewLeaves)


	// Fibonacci weights give a fully skewed tree of depth n-1
	fib := []int64{1, 1}
	for len(fib) < 45 {
		fib = append(fib, fib[len(fib)-1]+fib[len(fib)-2])
	}
	sort.Slice(fib, func(i, j int) bool { return fib[i] > fib[j] })
	_, err = Build(fib, 0)
	assert.ErrorIs(t, err, ErrCodeTooLong)

	_, err = Build(fib, 64)
	assert.NoError(t, err)
}

func TestBuildPinnedFirstLeaf(t *testing.T) {
	// a light first leaf, as with a rare sentence marker, still gets a code
	counts := []int64{1, 9, 8, 6, 2}
	tree, err := Build(counts, 0)
	require.NoError(t, err)

	kraft := 0.0
	for i, c := range tree.Codes {
		kraft += math.Pow(2, -float64(c.Len()))
		leaf, _, ok := tree.Decode(c.Bits)
		require.True(t, ok)
		assert.Equal(t, i, leaf)
	}
	assert.InDelta(t, 1.0, kraft, 1e-9)
}

func TestDecodeRejectsPartialCodes(t *testing.T) {
	tree, err := Build([]int64{7, 5, 4, 4, 3, 2}, 0)
	require.NoError(t, err)

	_, _, ok := tree.Decode(nil)
	assert.False(t, ok)

	long := append(append([]byte(nil), tree.Codes[0].Bits...), 0)
	_, _, ok = tree.Decode(long)
	assert.False(t, ok)
}
