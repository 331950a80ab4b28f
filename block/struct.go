// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Struct is the ordered list of diagonal block dimensions of a block-diagonal
// symmetric matrix. All blocks are square.
type Struct []int

// Validate fails fast on structures that would yield meaningless offsets.
// Returns ErrEmptyStruct for no blocks, ErrBadBlockSize for any size ≤ 0.
// Complexity: O(B).
func (s Struct) Validate() error {
	if len(s) == 0 {
		return blockErrorf("Struct.Validate", ErrEmptyStruct)
	}
	for b, d := range s {
		if d <= 0 {
			return fmt.Errorf("Struct.Validate: block %d has size %d: %w", b, d, ErrBadBlockSize)
		}
	}

	return nil
}

// Dim returns the dimension of the full block-diagonal matrix (Σ sizes).
func (s Struct) Dim() int {
	n := 0
	for _, d := range s {
		n += d
	}

	return n
}

// prefixSums returns [0, f(x0), f(x0)+f(x1), …] with len(xs)+1 entries.
func prefixSums[T constraints.Integer](xs []T, f func(T) T) []T {
	out := make([]T, len(xs)+1)
	for i, x := range xs {
		out[i+1] = out[i] + f(x)
	}

	return out
}
