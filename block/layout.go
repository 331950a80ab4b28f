// SPDX-License-Identifier: MIT

package block

import "fmt"

// Layout selects how a block of dimension d is enumerated in the row encoding.
type Layout int

const (
	// Square gives every block d² slots in row-major order; only slots with
	// local row ≤ local col carry data. This is the SDPA-style encoding.
	Square Layout = iota

	// Packed gives every block d(d+1)/2 slots enumerating the upper triangle
	// row by row: (0,0) (0,1) … (0,d-1) (1,1) … (d-1,d-1).
	Packed
)

// DefaultLayout is used when no layout is requested explicitly.
const DefaultLayout = Square

// String returns the lower-case layout name ("square", "packed").
func (l Layout) String() string {
	switch l {
	case Square:
		return "square"
	case Packed:
		return "packed"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// ParseLayout maps a layout name back to its Layout.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "square":
		return Square, nil
	case "packed":
		return Packed, nil
	default:
		return 0, fmt.Errorf("ParseLayout(%q): %w", name, ErrUnknownLayout)
	}
}

// Valid reports whether l is one of the defined layouts.
func (l Layout) Valid() bool {
	return l == Square || l == Packed
}

// Slots returns the number of row slots a block of dimension d occupies.
func (l Layout) Slots(d int) int {
	if l == Packed {
		return d * (d + 1) / 2
	}

	return d * d
}

// Coord inverts the intra-block enumeration: local slot k of a d×d block
// becomes (i, j) with 0 ≤ i ≤ j < d.
//
// Errors:
//   - ErrRowOutOfRange if k ∉ [0, Slots(d)).
//   - ErrLowerSlot for a Square slot with i > j.
//   - ErrUnknownLayout for an undefined layout.
//
// Complexity: O(1) for Square, O(d) for Packed.
func (l Layout) Coord(d, k int) (i, j int, err error) {
	if !l.Valid() {
		return 0, 0, blockErrorf("Layout.Coord", ErrUnknownLayout)
	}
	if d <= 0 {
		return 0, 0, blockErrorf("Layout.Coord", ErrBadBlockSize)
	}
	if k < 0 || k >= l.Slots(d) {
		return 0, 0, fmt.Errorf("Layout.Coord(%d,%d): %w", d, k, ErrRowOutOfRange)
	}

	if l == Square {
		i, j = k/d, k%d
		if i > j {
			return 0, 0, fmt.Errorf("Layout.Coord(%d,%d) = (%d,%d): %w", d, k, i, j, ErrLowerSlot)
		}
		return i, j, nil
	}

	// Packed: row i holds d-i entries; peel full rows until k falls inside one.
	for k >= d-i {
		k -= d - i
		i++
	}

	return i, i + k, nil
}

// Slot is the forward enumeration: the local slot of upper entry (i, j) in a
// d×d block. It is the exact inverse of Coord.
func (l Layout) Slot(d, i, j int) (int, error) {
	if !l.Valid() {
		return 0, blockErrorf("Layout.Slot", ErrUnknownLayout)
	}
	if i < 0 || j < i || j >= d {
		return 0, fmt.Errorf("Layout.Slot(%d,%d,%d): %w", d, i, j, ErrRowOutOfRange)
	}
	if l == Square {
		return i*d + j, nil
	}

	return i*d - i*(i-1)/2 + (j - i), nil
}
