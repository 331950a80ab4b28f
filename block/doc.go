// SPDX-License-Identifier: MIT

// Package block describes the block-diagonal layout of an SDP relaxation and
// translates row indices of its sparse upper-triangular encoding into
// coordinates of the concatenated lower-triangular matrix.
//
// A block structure is an ordered list of positive block dimensions. Every
// block owns a contiguous range of "slots" in the row encoding; how many and
// in which order depends on the Layout:
//
//	Square: d² slots per block, local slot k ↦ (k / d, k % d).
//	Packed: d(d+1)/2 slots per block, row-major upper triangle:
//	        (0,0) (0,1) … (0,d-1) (1,1) … (d-1,d-1).
//
// Offsets precomputes the two prefix sums (slots and dimensions) once, after
// which Resolve and Lower cost O(log B) per row (B = number of blocks) plus
// the intra-block inversion, O(1) for Square and O(d) for Packed.
//
//	bs := block.Struct{2, 1}
//	off, _ := block.NewOffsets(bs, block.Square) // Rows=[0 4 5] Blocks=[0 2 3]
//	r, c, _ := off.Lower(4)                      // (2, 2)
package block
