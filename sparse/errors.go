package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested rows or cols are ≤ 0.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")
)

// sparseErrorf tags err with method context and the offending index pair.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("RowMatrix.%s(%d,%d): %w", method, row, col, err)
}
