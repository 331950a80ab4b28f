// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"github.com/katalvlaran/sdpconv/block"
	"github.com/katalvlaran/sdpconv/sparse"
	"github.com/katalvlaran/sdpconv/triplet"
)

// Relaxation is the input of the conversion: an SDP in SDPA-like form
//
//	min  Σ_i ObjFacVar[i]·y_i   s.t.  F_0 - Σ_i y_i F_i ⪰ 0
//
// with F_0 stored in column 0 of F and F_i in column i.
type Relaxation struct {
	// NVars is the number of constraint matrices (columns 1..NVars of F).
	NVars int

	// ObjFacVar holds one objective coefficient per constraint matrix.
	ObjFacVar []float64

	// BlockStruct lists the diagonal block dimensions.
	BlockStruct block.Struct

	// F is the row-indexed constraint data: one row per slot of the block
	// encoding, NVars+1 columns.
	F *sparse.RowMatrix
}

// Result is the solver-facing form of a relaxation.
type Result struct {
	// Dim is the dimension of the single block-diagonal matrix variable.
	Dim int

	// Layout is the row encoding F was read with.
	Layout block.Layout

	// Bounds holds the equality right-hand side of each constraint,
	// Bounds[i] = -ObjFacVar[i].
	Bounds []float64

	// Cost is the lower triangle of the cost matrix, values unchanged.
	Cost triplet.Triplets

	// Constraints[i] is the lower triangle of constraint matrix i+1 with
	// negated values. Always NVars entries; unused ones are empty.
	Constraints []triplet.Triplets
}

// Matrices runs the full conversion.
//
// Steps:
//  1. Validate the relaxation and build block offsets once.
//  2. Visit the nonzero rows of F in ascending order.
//  3. Map each row to its lower-triangular (r, c) and append every entry of
//     the row to the cost (k=0) or to constraint k-1 with the sign flipped.
//
// Errors: ErrNilRelaxation, ErrShapeMismatch, ErrBoundsMismatch, block.Err*.
// Complexity: O(B + rows(F) + nnz(F)·log B).
func Matrices(rel *Relaxation, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	off, err := validate(rel, cfg.layout)
	if err != nil {
		return nil, convertErrorf("Matrices", err)
	}

	res := &Result{
		Dim:         off.Dim(),
		Layout:      cfg.layout,
		Bounds:      make([]float64, rel.NVars),
		Constraints: make([]triplet.Triplets, rel.NVars),
	}
	for i, c := range rel.ObjFacVar {
		res.Bounds[i] = -c
	}

	for _, row := range rel.F.NonzeroRows() {
		r, c, err := off.Lower(row)
		if err != nil {
			return nil, convertErrorf("Matrices", err)
		}

		ks, vals, err := rel.F.Row(row)
		if err != nil {
			return nil, convertErrorf("Matrices", err)
		}
		for n, k := range ks {
			if k == 0 {
				res.Cost.Append(r, c, vals[n])
				continue
			}
			res.Constraints[k-1].Append(r, c, -vals[n])
		}
	}

	return res, nil
}

// validate applies the fail-fast checks in a fixed order:
// nil → block structure → NVars/bounds → F rows → F cols.
func validate(rel *Relaxation, layout block.Layout) (*block.Offsets, error) {
	if rel == nil || rel.F == nil {
		return nil, ErrNilRelaxation
	}

	off, err := block.NewOffsets(rel.BlockStruct, layout)
	if err != nil {
		return nil, err
	}

	if rel.NVars < 0 {
		return nil, fmt.Errorf("NVars=%d: %w", rel.NVars, ErrShapeMismatch)
	}
	if len(rel.ObjFacVar) != rel.NVars {
		return nil, fmt.Errorf("len(ObjFacVar)=%d NVars=%d: %w", len(rel.ObjFacVar), rel.NVars, ErrBoundsMismatch)
	}

	rows, cols := rel.F.Dims()
	if rows != off.NumRows() {
		return nil, fmt.Errorf("F has %d rows, %s layout of %v needs %d: %w",
			rows, layout, rel.BlockStruct, off.NumRows(), ErrShapeMismatch)
	}
	if cols != rel.NVars+1 {
		return nil, fmt.Errorf("F has %d cols, NVars=%d needs %d: %w", cols, rel.NVars, rel.NVars+1, ErrShapeMismatch)
	}

	return off, nil
}
