package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for dense matrix operations.
var (
	// ErrNegativeOrder indicates that NewDense was asked for a negative order.
	ErrNegativeOrder = errors.New("matrix: order must be non-negative")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, order).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil *Dense was supplied.
	ErrNilMatrix = errors.New("matrix: matrix is nil")
)

// Dense is a square row-major matrix of float64 values: order n, flat
// backing slice of n*n elements. It is the working storage of the
// Floyd-Warshall closure.
type Dense struct {
	n    int       // matrix order (rows == cols)
	data []float64 // flat backing storage, length n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrNegativeOrder if n < 0.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Order returns the matrix order (number of rows and columns).
// Complexity: O(1).
func (m *Dense) Order() int { return m.n }

// indexOf computes the flat offset for (row, col) or reports a bounds error.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrIndexOutOfBounds, row, col, m.n, m.n)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// Row returns a copy of one row.
// Complexity: O(n).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.n {
		return nil, fmt.Errorf("%w: row %d in %d×%d", ErrIndexOutOfBounds, row, m.n, m.n)
	}
	out := make([]float64, m.n)
	copy(out, m.data[row*m.n:(row+1)*m.n])

	return out, nil
}

// String implements fmt.Stringer for debugging.
// Complexity: O(n²).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
