// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/sdpconv/triplet"
)

// Task is the append/put object model of a native conic solver task with
// semidefinite matrix variables ("barvars"). Matrices are first stored in the
// task's symmetric-matrix pool, which returns a handle, and then attached to
// the objective or a constraint as a weighted sum of handles.
type Task interface {
	AppendVars(n int) error
	AppendCons(n int) error
	AppendBarVars(dims []int) error

	// PutConBoundFixed sets lower = upper = value for constraint i.
	PutConBoundFixed(i int, value float64) error

	// AppendSparseSymMat stores a lower-triangular sparse symmetric matrix.
	AppendSparseSymMat(dim int, i, j []int, v []float64) (int64, error)

	// PutBarCj sets the objective coefficient of barvar j to Σ w_k·mats_k.
	PutBarCj(j int, mats []int64, weights []float64) error

	// PutBarAij sets the coefficient of barvar j in constraint i.
	PutBarAij(i, j int, mats []int64, weights []float64) error

	PutObjSense(s Sense) error

	// SetLogStream installs the receiver of the task's log output.
	SetLogStream(fn func(string))
}

// barVar is the index of the single semidefinite variable.
const barVar = 0

// unitWeight scales each attached matrix; data already carries its values.
var unitWeight = []float64{1.0}

// TaskBuilder adapts a Task to Builder. The task is created and owned by the
// caller; errors from the task are returned unchanged.
type TaskBuilder struct {
	task      Task
	dim       int
	numCons   int
	allocated bool
	finalized bool
}

// NewTaskBuilder wraps task. It performs no calls on the task.
func NewTaskBuilder(task Task) *TaskBuilder {
	return &TaskBuilder{task: task}
}

// SetLogFunc forwards the task's log stream to fn.
func (tb *TaskBuilder) SetLogFunc(fn func(string)) {
	tb.task.SetLogStream(fn)
}

// Allocate appends numCons constraints and one dim×dim barvar; the task has
// no scalar variables.
func (tb *TaskBuilder) Allocate(dim, numCons int) error {
	if tb.allocated {
		return solverErrorf("TaskBuilder.Allocate", ErrAlreadyAllocated)
	}
	if dim <= 0 || numCons < 0 {
		return fmt.Errorf("TaskBuilder.Allocate(%d,%d): %w", dim, numCons, ErrBadDimension)
	}

	if err := tb.task.AppendVars(0); err != nil {
		return err
	}
	if err := tb.task.AppendCons(numCons); err != nil {
		return err
	}
	if err := tb.task.AppendBarVars([]int{dim}); err != nil {
		return err
	}
	tb.dim, tb.numCons, tb.allocated = dim, numCons, true

	return nil
}

// SetConstraintBound fixes constraint i as an equality.
func (tb *TaskBuilder) SetConstraintBound(i int, value float64) error {
	if err := tb.readyFor("TaskBuilder.SetConstraintBound", i); err != nil {
		return err
	}

	return tb.task.PutConBoundFixed(i, value)
}

// SetCostMatrix stores C and attaches it to the barvar with weight 1.
func (tb *TaskBuilder) SetCostMatrix(t triplet.Triplets) error {
	if err := tb.ready("TaskBuilder.SetCostMatrix"); err != nil {
		return err
	}
	h, err := tb.task.AppendSparseSymMat(tb.dim, t.I, t.J, t.V)
	if err != nil {
		return err
	}

	return tb.task.PutBarCj(barVar, []int64{h}, unitWeight)
}

// AddConstraintMatrix stores A_i and attaches it to (constraint i, barvar)
// with weight 1.
func (tb *TaskBuilder) AddConstraintMatrix(i int, t triplet.Triplets) error {
	if err := tb.readyFor("TaskBuilder.AddConstraintMatrix", i); err != nil {
		return err
	}
	h, err := tb.task.AppendSparseSymMat(tb.dim, t.I, t.J, t.V)
	if err != nil {
		return err
	}

	return tb.task.PutBarAij(i, barVar, []int64{h}, unitWeight)
}

// Finalize sets the objective sense.
func (tb *TaskBuilder) Finalize(sense Sense) error {
	if err := tb.ready("TaskBuilder.Finalize"); err != nil {
		return err
	}
	if err := tb.task.PutObjSense(sense); err != nil {
		return err
	}
	tb.finalized = true

	return nil
}

// ready checks the call order.
func (tb *TaskBuilder) ready(method string) error {
	if !tb.allocated {
		return solverErrorf(method, ErrNotAllocated)
	}
	if tb.finalized {
		return solverErrorf(method, ErrAlreadyFinalized)
	}

	return nil
}

// readyFor is ready plus a range check of constraint index con.
func (tb *TaskBuilder) readyFor(method string, con int) error {
	if err := tb.ready(method); err != nil {
		return err
	}
	if con < 0 || con >= tb.numCons {
		return fmt.Errorf("%s(%d): %w", method, con, ErrConstraintIndex)
	}

	return nil
}
