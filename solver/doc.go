// SPDX-License-Identifier: MIT

// Package solver hands a converted relaxation to a conic solver.
//
// The solver is reached only through Builder, a five-call interface that
// mirrors how SDP solvers are populated:
//
//	Allocate(dim, m)                one symmetric matrix variable, m equalities
//	SetConstraintBound(i, b_i)      ⟨A_i, X⟩ = b_i
//	SetCostMatrix(C)                objective ⟨C, X⟩
//	AddConstraintMatrix(i, A_i)     constraint data
//	Finalize(sense)                 objective sense
//
// Load drives any Builder in that order. Two implementations ship here:
//
//   - TaskBuilder adapts an append/put style solver task (Task), the shape of
//     most native conic solver APIs; a cgo binding only implements Task.
//   - Problem keeps everything in memory as gonum SymDense matrices and can
//     evaluate objective and constraint residuals for a candidate X.
//
// Diagnostics go to a caller-supplied sink (WithLogFunc / WithLogWriter);
// nothing is written to a global stream.
package solver
