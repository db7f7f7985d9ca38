package cluster

import (
	log "github.com/golang/glog"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/bobonovski/word2vec/matrix"
	"github.com/bobonovski/word2vec/util"
)

// KMeans groups the rows of m into k classes with iter rounds of Lloyd's
// algorithm. Row i starts in class i mod k. Every round recomputes the
// centroids, scales them to unit length and reassigns each row to the
// centroid with the highest dot product. m is only read.
func KMeans(m matrix.Matrix, k, iter int) []int {
	rows, dim := m.Shape()
	classes := make([]int, rows)
	for i := range classes {
		classes[i] = i % k
	}
	cent := make([]float32, k*dim)
	counts := make([]int, k)
	scores := make([]float32, k)
	centroids := blas32.General{Rows: k, Cols: dim, Stride: dim, Data: cent}

	for it := 0; it < iter; it++ {
		util.Zero(cent)
		for c := range counts {
			counts[c] = 1
		}
		for i := 0; i < rows; i++ {
			c := classes[i]
			util.Add(cent[c*dim:(c+1)*dim], m.Row(i))
			counts[c]++
		}
		for c := 0; c < k; c++ {
			row := cent[c*dim : (c+1)*dim]
			util.Div(row, float32(counts[c]))
			// an empty class keeps a zero centroid and attracts nothing
			util.Normalize(row)
		}
		changed := 0
		for i := 0; i < rows; i++ {
			blas32.Gemv(blas.NoTrans, 1, centroids,
				blas32.Vector{N: dim, Inc: 1, Data: m.Row(i)},
				0, blas32.Vector{N: k, Inc: 1, Data: scores})
			best, bestScore := 0, float32(-10)
			for c, s := range scores {
				if s > bestScore {
					best, bestScore = c, s
				}
			}
			if classes[i] != best {
				changed++
			}
			classes[i] = best
		}
		log.V(1).Infof("k-means iter %d, %d reassigned", it, changed)
	}
	return classes
}
