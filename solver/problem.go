// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sdpconv/triplet"
)

// Problem is an in-memory Builder. It assembles C and every A_i as dense
// symmetric matrices and can evaluate a candidate X against them:
//
//	Objective(X)        = ⟨C, X⟩
//	ConstraintValues(X) = [⟨A_i, X⟩]
//	Residuals(X)        = [⟨A_i, X⟩ - b_i]
//
// with ⟨A, X⟩ = Σ_ij A_ij·X_ij. Problem rejects triples that are not
// lower-triangular within dim and any out-of-order call.
type Problem struct {
	dim    int
	bounds []float64
	cost   *mat.SymDense
	cons   []*mat.SymDense
	sense  Sense
	log    func(string)

	allocated bool
	finalized bool
}

// NewProblem returns an empty, unallocated Problem.
func NewProblem() *Problem {
	return &Problem{log: func(string) {}}
}

// SetLogFunc installs the diagnostics sink.
func (p *Problem) SetLogFunc(fn func(string)) {
	if fn != nil {
		p.log = fn
	}
}

// Allocate sizes the problem. Bounds start at 0 and no matrix is registered.
func (p *Problem) Allocate(dim, numCons int) error {
	if p.allocated {
		return solverErrorf("Problem.Allocate", ErrAlreadyAllocated)
	}
	if dim <= 0 || numCons < 0 {
		return fmt.Errorf("Problem.Allocate(%d,%d): %w", dim, numCons, ErrBadDimension)
	}

	p.dim = dim
	p.bounds = make([]float64, numCons)
	p.cons = make([]*mat.SymDense, numCons)
	p.allocated = true
	p.log(fmt.Sprintf("problem: barvar dim=%d, %d equality constraints", dim, numCons))

	return nil
}

// SetConstraintBound sets b_i.
func (p *Problem) SetConstraintBound(i int, value float64) error {
	if err := p.checkIndex("Problem.SetConstraintBound", i); err != nil {
		return err
	}
	p.bounds[i] = value

	return nil
}

// SetCostMatrix assembles C; a second call replaces it.
func (p *Problem) SetCostMatrix(t triplet.Triplets) error {
	if err := p.checkState("Problem.SetCostMatrix"); err != nil {
		return err
	}
	s, err := t.SymDense(p.dim)
	if err != nil {
		return solverErrorf("Problem.SetCostMatrix", err)
	}
	p.cost = s

	return nil
}

// AddConstraintMatrix assembles A_i. Empty triples give a zero matrix.
func (p *Problem) AddConstraintMatrix(i int, t triplet.Triplets) error {
	if err := p.checkIndex("Problem.AddConstraintMatrix", i); err != nil {
		return err
	}
	s, err := t.SymDense(p.dim)
	if err != nil {
		return fmt.Errorf("Problem.AddConstraintMatrix(%d): %w", i, err)
	}
	p.cons[i] = s

	return nil
}

// Finalize records the sense. C and every A_i must have been registered.
func (p *Problem) Finalize(sense Sense) error {
	if err := p.checkState("Problem.Finalize"); err != nil {
		return err
	}
	if p.cost == nil {
		return fmt.Errorf("Problem.Finalize: cost matrix missing: %w", ErrIncomplete)
	}
	for i, a := range p.cons {
		if a == nil {
			return fmt.Errorf("Problem.Finalize: constraint %d missing: %w", i, ErrIncomplete)
		}
	}
	p.sense = sense
	p.finalized = true

	return nil
}

// Dim returns the dimension of X (0 before Allocate).
func (p *Problem) Dim() int { return p.dim }

// NumCons returns the number of equality constraints.
func (p *Problem) NumCons() int { return len(p.bounds) }

// Sense returns the objective sense set by Finalize.
func (p *Problem) Sense() Sense { return p.sense }

// Finalized reports whether Finalize succeeded.
func (p *Problem) Finalized() bool { return p.finalized }

// Bounds returns a copy of the right-hand sides b.
func (p *Problem) Bounds() []float64 { return append([]float64(nil), p.bounds...) }

// Cost returns C, or nil before SetCostMatrix. The matrix is shared.
func (p *Problem) Cost() *mat.SymDense { return p.cost }

// Constraint returns A_i, or nil if it was not registered yet.
func (p *Problem) Constraint(i int) (*mat.SymDense, error) {
	if i < 0 || i >= len(p.cons) {
		return nil, fmt.Errorf("Problem.Constraint(%d): %w", i, ErrConstraintIndex)
	}

	return p.cons[i], nil
}

// Objective returns ⟨C, X⟩. Requires a finalized problem.
func (p *Problem) Objective(x mat.Symmetric) (float64, error) {
	if err := p.checkEval("Problem.Objective", x); err != nil {
		return 0, err
	}

	return inner(p.cost, x), nil
}

// ConstraintValues returns ⟨A_i, X⟩ for every constraint.
func (p *Problem) ConstraintValues(x mat.Symmetric) ([]float64, error) {
	if err := p.checkEval("Problem.ConstraintValues", x); err != nil {
		return nil, err
	}
	out := make([]float64, len(p.cons))
	for i, a := range p.cons {
		out[i] = inner(a, x)
	}

	return out, nil
}

// Residuals returns ⟨A_i, X⟩ - b_i; X is feasible for the equalities when
// every residual is zero.
func (p *Problem) Residuals(x mat.Symmetric) ([]float64, error) {
	vals, err := p.ConstraintValues(x)
	if err != nil {
		return nil, err
	}
	for i := range vals {
		vals[i] -= p.bounds[i]
	}

	return vals, nil
}

func (p *Problem) checkState(method string) error {
	if !p.allocated {
		return solverErrorf(method, ErrNotAllocated)
	}
	if p.finalized {
		return solverErrorf(method, ErrAlreadyFinalized)
	}

	return nil
}

func (p *Problem) checkIndex(method string, i int) error {
	if err := p.checkState(method); err != nil {
		return err
	}
	if i < 0 || i >= len(p.cons) {
		return fmt.Errorf("%s(%d): %w", method, i, ErrConstraintIndex)
	}

	return nil
}

func (p *Problem) checkEval(method string, x mat.Symmetric) error {
	if !p.finalized {
		return fmt.Errorf("%s: not finalized: %w", method, ErrIncomplete)
	}
	if x == nil || x.SymmetricDim() != p.dim {
		return fmt.Errorf("%s: X must be %d×%d: %w", method, p.dim, p.dim, ErrBadDimension)
	}

	return nil
}

// inner is the trace inner product Σ_ij A_ij·X_ij.
func inner(a, x mat.Symmetric) float64 {
	var prod mat.Dense
	prod.MulElem(a, x)

	return mat.Sum(&prod)
}
