// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Coord is a position inside one block's own upper-triangular numbering.
// Invariant: 0 ≤ I ≤ J < size of block Block.
type Coord struct {
	Block int // index into the block structure
	I     int // local row
	J     int // local column
}

// Offsets holds the prefix sums derived from a block structure.
//
//   - Rows[b]   is the first row slot of block b; Rows[B] is the total slot count.
//   - Blocks[b] is the first full-matrix coordinate of block b; Blocks[B] is Dim.
//
// Both slices have B+1 entries and are strictly increasing. Offsets is
// immutable after construction and safe to share.
type Offsets struct {
	Rows   []int
	Blocks []int

	sizes  Struct
	layout Layout
}

// NewOffsets validates bs and builds both prefix sums once.
// Complexity: O(B) time and memory.
func NewOffsets(bs Struct, layout Layout) (*Offsets, error) {
	if err := bs.Validate(); err != nil {
		return nil, blockErrorf("NewOffsets", err)
	}
	if !layout.Valid() {
		return nil, blockErrorf("NewOffsets", ErrUnknownLayout)
	}

	sizes := append(Struct(nil), bs...)

	return &Offsets{
		Rows:   prefixSums([]int(sizes), layout.Slots),
		Blocks: prefixSums([]int(sizes), func(d int) int { return d }),
		sizes:  sizes,
		layout: layout,
	}, nil
}

// Layout returns the enumeration the row offsets were built for.
func (o *Offsets) Layout() Layout { return o.layout }

// Struct returns a copy of the underlying block structure.
func (o *Offsets) Struct() Struct { return append(Struct(nil), o.sizes...) }

// NumRows is the number of row slots the sparse input must provide.
func (o *Offsets) NumRows() int { return o.Rows[len(o.Rows)-1] }

// Dim is the dimension of the concatenated block-diagonal matrix.
func (o *Offsets) Dim() int { return o.Blocks[len(o.Blocks)-1] }

// Resolve maps a global row slot to its block and local upper-triangular
// position. The block is found by binary search over Rows.
//
// Errors: ErrRowOutOfRange, ErrLowerSlot (Square only).
// Complexity: O(log B) plus Layout.Coord.
func (o *Offsets) Resolve(row int) (Coord, error) {
	if row < 0 || row >= o.NumRows() {
		return Coord{}, fmt.Errorf("Resolve(%d): rows [0,%d): %w", row, o.NumRows(), ErrRowOutOfRange)
	}

	pos, found := slices.BinarySearch(o.Rows, row)
	b := pos - 1
	if found {
		b = pos // row is the first slot of block pos
	}

	i, j, err := o.layout.Coord(o.sizes[b], row-o.Rows[b])
	if err != nil {
		return Coord{}, fmt.Errorf("Resolve(%d): %w", row, err)
	}

	return Coord{Block: b, I: i, J: j}, nil
}

// Lower maps a global row slot to its coordinate in the full matrix, in
// lower-triangular orientation: the upper entry (i, j) of block b becomes
// (j+off, i+off) with off = Blocks[b]. Symmetry makes both the same entry.
func (o *Offsets) Lower(row int) (r, c int, err error) {
	co, err := o.Resolve(row)
	if err != nil {
		return 0, 0, err
	}
	off := o.Blocks[co.Block]

	return co.J + off, co.I + off, nil
}
