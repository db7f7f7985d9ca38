package matrix

// Matrix is the read side of a dense row-major float32 matrix. Consumers
// of finished embeddings (export, cluster) only need this view.
type Matrix interface {
	Shape() (int, int)
	Get(int, int) float32
	Row(int) []float32
}
