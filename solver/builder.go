// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/sdpconv/triplet"
)

// Sense is the objective direction.
type Sense int

const (
	// Minimize is the direction used for SDP relaxations.
	Minimize Sense = iota
	// Maximize is available for callers that negate their objective.
	Maximize
)

// String returns "minimize" or "maximize".
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("sense(%d)", int(s))
	}
}

// Builder is the narrow construction surface of a conic solver with one
// symmetric matrix variable X of dimension dim and numCons linear equalities.
// All triples are lower-triangular in X's coordinates.
type Builder interface {
	// Allocate declares dim(X) and the number of equality constraints.
	Allocate(dim, numCons int) error

	// SetConstraintBound fixes constraint i to ⟨A_i, X⟩ = value.
	SetConstraintBound(i int, value float64) error

	// SetCostMatrix registers the objective matrix C.
	SetCostMatrix(t triplet.Triplets) error

	// AddConstraintMatrix registers A_i and attaches it to constraint i.
	AddConstraintMatrix(i int, t triplet.Triplets) error

	// Finalize fixes the objective sense; no calls may follow.
	Finalize(sense Sense) error
}

// LogReceiver is implemented by builders that produce their own diagnostics.
// Load hands them its sink before Allocate.
type LogReceiver interface {
	SetLogFunc(fn func(string))
}
