// SPDX-License-Identifier: MIT

package triplet

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotLower marks an entry with column > row.
	ErrNotLower = errors.New("triplet: entry above the diagonal")

	// ErrOutOfRange marks an entry outside [0, dim).
	ErrOutOfRange = errors.New("triplet: index out of range")

	// ErrBadDim is returned for a non-positive matrix dimension.
	ErrBadDim = errors.New("triplet: dimension must be > 0")

	// ErrLengthMismatch marks I, J, V slices of different lengths.
	ErrLengthMismatch = errors.New("triplet: I, J, V lengths differ")
)

// Triplets is a sparse symmetric matrix given by its lower triangle.
// The three slices are parallel; entry k is (I[k], J[k]) = V[k].
type Triplets struct {
	I []int
	J []int
	V []float64
}

// Append adds one entry. No checks are made; see ValidateLower.
func (t *Triplets) Append(i, j int, v float64) {
	t.I = append(t.I, i)
	t.J = append(t.J, j)
	t.V = append(t.V, v)
}

// Len returns the number of stored entries.
func (t Triplets) Len() int { return len(t.V) }

// Clone returns a deep copy.
func (t Triplets) Clone() Triplets {
	return Triplets{
		I: append([]int(nil), t.I...),
		J: append([]int(nil), t.J...),
		V: append([]float64(nil), t.V...),
	}
}

// ValidateLower checks that every entry satisfies 0 ≤ J ≤ I < dim.
// Complexity: O(Len).
func (t Triplets) ValidateLower(dim int) error {
	if dim <= 0 {
		return fmt.Errorf("ValidateLower: %w", ErrBadDim)
	}
	if len(t.I) != len(t.V) || len(t.J) != len(t.V) {
		return fmt.Errorf("ValidateLower: %d/%d/%d: %w", len(t.I), len(t.J), len(t.V), ErrLengthMismatch)
	}
	for k := range t.V {
		i, j := t.I[k], t.J[k]
		if i < 0 || j < 0 || i >= dim || j >= dim {
			return fmt.Errorf("ValidateLower: entry %d (%d,%d) dim %d: %w", k, i, j, dim, ErrOutOfRange)
		}
		if j > i {
			return fmt.Errorf("ValidateLower: entry %d (%d,%d): %w", k, i, j, ErrNotLower)
		}
	}

	return nil
}

// SymDense assembles the dim×dim symmetric matrix. Entries sharing a
// coordinate are summed.
func (t Triplets) SymDense(dim int) (*mat.SymDense, error) {
	if err := t.ValidateLower(dim); err != nil {
		return nil, fmt.Errorf("SymDense: %w", err)
	}

	s := mat.NewSymDense(dim, nil)
	for k, v := range t.V {
		i, j := t.I[k], t.J[k]
		s.SetSym(i, j, s.At(i, j)+v)
	}

	return s, nil
}
