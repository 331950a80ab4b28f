package sparse

import "golang.org/x/exp/slices"

// RowMatrix is a rows×cols sparse matrix in list-of-lists form.
// The zero value is not usable; construct with NewRowMatrix.
type RowMatrix struct {
	r, c int
	cols [][]int     // per row, ascending column indices
	data [][]float64 // per row, values parallel to cols
	nnz  int
}

// NewRowMatrix allocates an empty rows×cols matrix.
// Complexity: O(rows) for the row headers; no per-entry storage.
func NewRowMatrix(rows, cols int) (*RowMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("New", rows, cols, ErrBadShape)
	}

	return &RowMatrix{
		r:    rows,
		c:    cols,
		cols: make([][]int, rows),
		data: make([][]float64, rows),
	}, nil
}

// Dims returns the shape of the matrix.
func (m *RowMatrix) Dims() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *RowMatrix) NNZ() int { return m.nnz }

// Set stores v at (row, col). An existing entry at the same position is
// overwritten, so a row never holds a column twice. Explicit zeros are kept.
// Complexity: O(log n + n) for a row with n entries.
func (m *RowMatrix) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return sparseErrorf("Set", row, col, ErrOutOfRange)
	}

	pos, found := slices.BinarySearch(m.cols[row], col)
	if found {
		m.data[row][pos] = v
		return nil
	}
	m.cols[row] = slices.Insert(m.cols[row], pos, col)
	m.data[row] = slices.Insert(m.data[row], pos, v)
	m.nnz++

	return nil
}

// At returns the value at (row, col), 0 when no entry is stored.
func (m *RowMatrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, sparseErrorf("At", row, col, ErrOutOfRange)
	}
	if pos, found := slices.BinarySearch(m.cols[row], col); found {
		return m.data[row][pos], nil
	}

	return 0, nil
}

// Row returns the column indices and values of one row. The slices alias the
// matrix storage and must not be modified.
func (m *RowMatrix) Row(row int) (cols []int, vals []float64, err error) {
	if row < 0 || row >= m.r {
		return nil, nil, sparseErrorf("Row", row, 0, ErrOutOfRange)
	}

	return m.cols[row], m.data[row], nil
}

// NonzeroRows lists the rows holding at least one entry, ascending.
// Complexity: O(rows).
func (m *RowMatrix) NonzeroRows() []int {
	out := make([]int, 0, m.r)
	for row, cs := range m.cols {
		if len(cs) > 0 {
			out = append(out, row)
		}
	}

	return out
}
