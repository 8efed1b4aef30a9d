// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Dense is the n×m export form of an Adjacency, stored row-major.
type Dense struct {
	r, c int
	data []float64
}

// NewDense returns a zeroed rows×cols matrix, or ErrBadShape for an empty shape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

func (m *Dense) offset(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d) on %dx%d: %w", op, row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	k, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	k, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.data[k] = v

	return nil
}

// IsSymmetric reports whether m is square with |m[i][j] − m[j][i]| ≤ eps.
func (m *Dense) IsSymmetric(eps float64) bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return false
			}
		}
	}

	return true
}

// Equal reports whether m and o have the same shape and identical values.
func (m *Dense) Equal(o *Dense) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if o.data[k] != v {
			return false
		}
	}

	return true
}
