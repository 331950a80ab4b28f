// SPDX-License-Identifier: MIT
// Package block: facades with explicit offset arguments.
//
// These mirror the classic (block_struct, row_offsets, block_offsets, row)
// calling convention of SDPA-format tooling. They always use the Square
// layout and verify the supplied offsets against bs on every call, so prefer
// NewOffsets + Offsets.Resolve/Lower inside loops.

package block

import "golang.org/x/exp/slices"

// ResolveRow returns (block, local row, local col) for a row of the Square
// encoding described by bs and its slot prefix sums rowOffsets.
// Complexity: O(B) for the offsets check, O(log B) for the lookup.
func ResolveRow(bs Struct, rowOffsets []int, row int) (Coord, error) {
	off, err := checkedOffsets(bs, rowOffsets, nil)
	if err != nil {
		return Coord{}, blockErrorf("ResolveRow", err)
	}

	return off.Resolve(row)
}

// ToLower is ResolveRow followed by the block shift and the axis swap,
// returning the lower-triangular (row, col) of the full matrix.
func ToLower(bs Struct, rowOffsets, blockOffsets []int, row int) (r, c int, err error) {
	off, err := checkedOffsets(bs, rowOffsets, blockOffsets)
	if err != nil {
		return 0, 0, blockErrorf("ToLower", err)
	}

	return off.Lower(row)
}

// checkedOffsets rebuilds Square offsets for bs and compares them with the
// caller's copies; a nil blockOffsets is not checked.
func checkedOffsets(bs Struct, rowOffsets, blockOffsets []int) (*Offsets, error) {
	off, err := NewOffsets(bs, Square)
	if err != nil {
		return nil, err
	}
	if !slices.Equal(off.Rows, rowOffsets) {
		return nil, ErrOffsetsMismatch
	}
	if blockOffsets != nil && !slices.Equal(off.Blocks, blockOffsets) {
		return nil, ErrOffsetsMismatch
	}

	return off, nil
}
