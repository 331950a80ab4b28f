// SPDX-License-Identifier: MIT
// Package block: sentinel error set.
//
// Every resolver and validator in this package returns one of these sentinels,
// wrapped with call-site context via blockErrorf. Callers branch with errors.Is.
// Out-of-range rows are precondition violations; they are reported as errors
// so the conversion driver can abort without a partial result.

package block

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStruct is returned when a block structure has no blocks.
	ErrEmptyStruct = errors.New("block: empty block structure")

	// ErrBadBlockSize is returned when a block dimension is zero or negative.
	ErrBadBlockSize = errors.New("block: block size must be > 0")

	// ErrRowOutOfRange indicates a row index outside [0, NumRows()).
	ErrRowOutOfRange = errors.New("block: row index out of range")

	// ErrLowerSlot indicates a Square-layout slot strictly below the diagonal,
	// which cannot carry upper-triangular input.
	ErrLowerSlot = errors.New("block: slot lies below the diagonal")

	// ErrUnknownLayout is returned for a Layout value outside the defined set.
	ErrUnknownLayout = errors.New("block: unknown layout")

	// ErrOffsetsMismatch indicates caller-supplied offsets that do not agree
	// with the block structure (length or contents).
	ErrOffsetsMismatch = errors.New("block: offsets do not match block structure")
)

// blockErrorf tags err with the method name, preserving errors.Is.
func blockErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
