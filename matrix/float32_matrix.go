package matrix

// Float32Matrix is a dense float32 matrix stored in a single row-major
// slice, i.e. the (i*c + j)-th element of data is the [i, j]-th element.
// The backing slice is allocated once and never resized, so row views
// handed out by Row stay valid for the lifetime of the matrix.
type Float32Matrix struct {
	nrow int
	ncol int
	data []float32
}

// NewFloat32Matrix creates a zeroed Float32Matrix with r rows and c columns.
// It panics with ErrBadShape if either dimension is not positive.
func NewFloat32Matrix(r, c int) *Float32Matrix {
	if r <= 0 || c <= 0 {
		panic(ErrBadShape)
	}
	return &Float32Matrix{
		nrow: r,
		ncol: c,
		data: make([]float32, r*c),
	}
}

// get the shape of the matrix
func (m *Float32Matrix) Shape() (int, int) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float32Matrix) Get(r, c int) float32 {
	if r < 0 || r >= m.nrow || c < 0 || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// set val to the [r, c]-th element of the matrix
func (m *Float32Matrix) Set(r, c int, val float32) {
	if r < 0 || r >= m.nrow || c < 0 || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// Row returns the r-th row as a slice aliasing the matrix storage. Writes
// through the returned slice mutate the matrix; its capacity is clipped so
// an append can never spill into the next row.
func (m *Float32Matrix) Row(r int) []float32 {
	if r < 0 || r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	lo := r * m.ncol
	hi := lo + m.ncol
	return m.data[lo:hi:hi]
}

// Data exposes the whole backing slice in row-major order.
func (m *Float32Matrix) Data() []float32 {
	return m.data
}
