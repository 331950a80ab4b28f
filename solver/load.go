// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/sdpconv/convert"
)

// Load converts rel and drives b through the full construction sequence:
//
//	Allocate(Dim, NVars)
//	SetConstraintBound(i, -ObjFacVar[i])   for i in [0, NVars)
//	SetCostMatrix(C)
//	AddConstraintMatrix(i, A_{i+1})        for i in [0, NVars), empty ones too
//	Finalize(sense)
//
// It returns the conversion result so callers can inspect or fingerprint
// what was handed over. Conversion errors are wrapped with "Load"; errors from
// b are returned exactly as b produced them and stop the sequence.
func Load(rel *convert.Relaxation, b Builder, opts ...Option) (*convert.Result, error) {
	cfg := newLoadConfig(opts...)

	res, err := convert.Matrices(rel, cfg.convOpts...)
	if err != nil {
		return nil, solverErrorf("Load", err)
	}
	cfg.log(fmt.Sprintf("converted %d constraint matrices (%s layout): dim=%d nnz(C)=%d nnz(A)=%d",
		len(res.Constraints), res.Layout, res.Dim, res.Cost.Len(), constraintNNZ(res)))

	if lr, ok := b.(LogReceiver); ok {
		lr.SetLogFunc(cfg.log)
	}

	if err := b.Allocate(res.Dim, len(res.Constraints)); err != nil {
		return nil, err
	}
	for i, v := range res.Bounds {
		if err := b.SetConstraintBound(i, v); err != nil {
			return nil, err
		}
	}
	if err := b.SetCostMatrix(res.Cost); err != nil {
		return nil, err
	}
	for i, t := range res.Constraints {
		if err := b.AddConstraintMatrix(i, t); err != nil {
			return nil, err
		}
	}
	if err := b.Finalize(cfg.sense); err != nil {
		return nil, err
	}
	cfg.log(fmt.Sprintf("task ready: objective sense %s", cfg.sense))

	return res, nil
}

func constraintNNZ(res *convert.Result) int {
	n := 0
	for _, t := range res.Constraints {
		n += t.Len()
	}

	return n
}
