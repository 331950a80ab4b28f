// SPDX-License-Identifier: MIT
// Package solver: sentinel errors of the shipped builders. Errors returned by
// a Builder are passed through Load untouched; only conversion errors are
// wrapped with the "Load" tag.

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAllocated is returned when data arrives before Allocate.
	ErrNotAllocated = errors.New("solver: builder not allocated")

	// ErrAlreadyAllocated is returned by a second Allocate.
	ErrAlreadyAllocated = errors.New("solver: builder already allocated")

	// ErrAlreadyFinalized is returned for any mutation after Finalize.
	ErrAlreadyFinalized = errors.New("solver: builder already finalized")

	// ErrConstraintIndex marks a constraint index outside [0, numCons).
	ErrConstraintIndex = errors.New("solver: constraint index out of range")

	// ErrBadDimension marks a non-positive matrix dimension or negative count.
	ErrBadDimension = errors.New("solver: invalid dimension")

	// ErrIncomplete is returned by Finalize when the cost matrix or some
	// constraint matrix was never registered.
	ErrIncomplete = errors.New("solver: problem incomplete")
)

func solverErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
