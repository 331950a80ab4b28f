// SPDX-License-Identifier: MIT
// Package convert_test covers the conversion driver end to end.
package convert_test

import (
	"testing"

	"github.com/katalvlaran/sdpconv/block"
	"github.com/katalvlaran/sdpconv/convert"
	"github.com/katalvlaran/sdpconv/sparse"
	"github.com/katalvlaran/sdpconv/triplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entry is one (row, constraint, value) of F.
type entry struct {
	row, k int
	v      float64
}

// mustRelaxation builds a relaxation whose F has exactly the rows required by
// bs under layout and nVars+1 columns.
func mustRelaxation(t testing.TB, bs block.Struct, layout block.Layout, obj []float64, entries ...entry) *convert.Relaxation {
	t.Helper()

	off, err := block.NewOffsets(bs, layout)
	require.NoError(t, err)
	f, err := sparse.NewRowMatrix(off.NumRows(), len(obj)+1)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, f.Set(e.row, e.k, e.v))
	}

	return &convert.Relaxation{
		NVars:       len(obj),
		ObjFacVar:   obj,
		BlockStruct: bs,
		F:           f,
	}
}

// TestScenarioCostOffDiagonal: block_struct=[2], cost entry at row 1.
func TestScenarioCostOffDiagonal(t *testing.T) {
	t.Parallel()

	rel := mustRelaxation(t, block.Struct{2}, block.Square, nil, entry{row: 1, k: 0, v: 5.0})
	res, err := convert.Matrices(rel)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Dim)
	assert.Equal(t, []int{1}, res.Cost.I)
	assert.Equal(t, []int{0}, res.Cost.J)
	assert.Equal(t, []float64{5.0}, res.Cost.V)
	assert.Empty(t, res.Constraints)
}

// TestScenarioSecondBlockConstraint: block_struct=[2,1], constraint 1 at row 4.
func TestScenarioSecondBlockConstraint(t *testing.T) {
	t.Parallel()

	rel := mustRelaxation(t, block.Struct{2, 1}, block.Square, []float64{0.5}, entry{row: 4, k: 1, v: 3.0})
	res, err := convert.Matrices(rel)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Dim)
	assert.Zero(t, res.Cost.Len())
	require.Len(t, res.Constraints, 1)
	assert.Equal(t, triplet.Triplets{I: []int{2}, J: []int{2}, V: []float64{-3.0}}, res.Constraints[0])
	assert.Equal(t, []float64{-0.5}, res.Bounds)
}

// TestSignLaw checks cost values pass through and constraint values flip.
func TestSignLaw(t *testing.T) {
	t.Parallel()

	rel := mustRelaxation(t, block.Struct{3}, block.Square, []float64{1, 2},
		entry{0, 0, 1.5}, entry{0, 1, -2.5}, entry{0, 2, 4},
		entry{4, 0, -7}, entry{5, 2, 0.25},
	)
	res, err := convert.Matrices(rel)
	require.NoError(t, err)

	assert.Equal(t, []float64{1.5, -7}, res.Cost.V)
	assert.Equal(t, []float64{2.5}, res.Constraints[0].V)
	assert.Equal(t, []float64{-4, -0.25}, res.Constraints[1].V)

	// row 5 of a 3×3 square block is (1,2) -> lower (2,1)
	assert.Equal(t, []int{0, 2}, res.Constraints[1].I)
	assert.Equal(t, []int{0, 1}, res.Constraints[1].J)
}

// TestEmptyInput keeps one empty triple list per constraint.
func TestEmptyInput(t *testing.T) {
	t.Parallel()

	rel := mustRelaxation(t, block.Struct{2, 2}, block.Square, []float64{1, 1, 1})
	res, err := convert.Matrices(rel)
	require.NoError(t, err)

	assert.Zero(t, res.Cost.Len())
	require.Len(t, res.Constraints, 3)
	for i, c := range res.Constraints {
		assert.Zero(t, c.Len(), "constraint %d", i)
	}
	assert.Equal(t, []float64{-1, -1, -1}, res.Bounds)
}

// TestOutputIsLowerAndOrdered fills every upper slot of a mixed structure and
// checks the emitted coordinates: lower-triangular, inside the owning block,
// and in ascending input-row order.
func TestOutputIsLowerAndOrdered(t *testing.T) {
	t.Parallel()

	bs := block.Struct{2, 3, 1}
	for _, layout := range []block.Layout{block.Square, block.Packed} {
		off, err := block.NewOffsets(bs, layout)
		require.NoError(t, err)

		var entries []entry
		for b, d := range bs {
			for i := 0; i < d; i++ {
				for j := i; j < d; j++ {
					slot, err := layout.Slot(d, i, j)
					require.NoError(t, err)
					entries = append(entries, entry{row: off.Rows[b] + slot, k: 1, v: float64(len(entries) + 1)})
				}
			}
		}

		rel := mustRelaxation(t, bs, layout, []float64{0}, entries...)
		res, err := convert.Matrices(rel, convert.WithLayout(layout))
		require.NoError(t, err)

		a := res.Constraints[0]
		require.Equal(t, len(entries), a.Len())
		require.NoError(t, a.ValidateLower(res.Dim))
		for n := range a.V {
			assert.Equal(t, -float64(n+1), a.V[n], "%s entry %d out of order", layout, n)
		}
	}
}

// TestLayoutsAgree: the same problem encoded in both layouts yields identical
// results and fingerprints.
func TestLayoutsAgree(t *testing.T) {
	t.Parallel()

	bs := block.Struct{3, 2}
	type upper struct {
		b, i, j, k int
		v          float64
	}
	data := []upper{
		{0, 0, 0, 0, 1}, {0, 0, 2, 1, 2}, {0, 1, 1, 2, 3},
		{1, 0, 1, 0, 4}, {1, 1, 1, 1, 5},
	}

	build := func(layout block.Layout) *convert.Result {
		off, err := block.NewOffsets(bs, layout)
		require.NoError(t, err)
		var entries []entry
		for _, u := range data {
			slot, err := layout.Slot(bs[u.b], u.i, u.j)
			require.NoError(t, err)
			entries = append(entries, entry{row: off.Rows[u.b] + slot, k: u.k, v: u.v})
		}
		res, err := convert.Matrices(mustRelaxation(t, bs, layout, []float64{1, -1}, entries...), convert.WithLayout(layout))
		require.NoError(t, err)
		return res
	}

	sq, pk := build(block.Square), build(block.Packed)
	assert.Equal(t, sq.Cost, pk.Cost)
	assert.Equal(t, sq.Constraints, pk.Constraints)
	assert.Equal(t, sq.Fingerprint(), pk.Fingerprint())
	assert.Equal(t, block.Packed, pk.Layout)
}

// TestValidation walks the fail-fast checks in priority order.
func TestValidation(t *testing.T) {
	t.Parallel()

	okF := func(rows, cols int) *sparse.RowMatrix {
		f, err := sparse.NewRowMatrix(rows, cols)
		require.NoError(t, err)
		return f
	}

	tests := []struct {
		name    string
		rel     *convert.Relaxation
		opts    []convert.Option
		wantErr error
	}{
		{"nil", nil, nil, convert.ErrNilRelaxation},
		{"nil F", &convert.Relaxation{BlockStruct: block.Struct{1}}, nil, convert.ErrNilRelaxation},
		{"empty blocks", &convert.Relaxation{F: okF(1, 1)}, nil, block.ErrEmptyStruct},
		{"bad block", &convert.Relaxation{BlockStruct: block.Struct{2, -1}, F: okF(4, 1)}, nil, block.ErrBadBlockSize},
		{"negative nvars", &convert.Relaxation{NVars: -1, BlockStruct: block.Struct{1}, F: okF(1, 1)}, nil, convert.ErrShapeMismatch},
		{"bounds", &convert.Relaxation{NVars: 2, ObjFacVar: []float64{1}, BlockStruct: block.Struct{1}, F: okF(1, 3)}, nil, convert.ErrBoundsMismatch},
		{"rows square", &convert.Relaxation{BlockStruct: block.Struct{2}, F: okF(3, 1)}, nil, convert.ErrShapeMismatch},
		{"rows packed", &convert.Relaxation{BlockStruct: block.Struct{2}, F: okF(4, 1)}, []convert.Option{convert.WithLayout(block.Packed)}, convert.ErrShapeMismatch},
		{"cols", &convert.Relaxation{NVars: 1, ObjFacVar: []float64{0}, BlockStruct: block.Struct{1}, F: okF(1, 3)}, nil, convert.ErrShapeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := convert.Matrices(tc.rel, tc.opts...)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, res)
		})
	}
}

// TestLowerSlotAborts: data in a below-diagonal square slot fails without a
// partial result.
func TestLowerSlotAborts(t *testing.T) {
	t.Parallel()

	// slot 2 of a 2×2 square block is (1,0)
	rel := mustRelaxation(t, block.Struct{2}, block.Square, nil, entry{0, 0, 1}, entry{2, 0, 1})
	res, err := convert.Matrices(rel)
	require.ErrorIs(t, err, block.ErrLowerSlot)
	require.Nil(t, res)
}

func TestWithLayoutPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { convert.WithLayout(block.Layout(9)) })
}

// TestFingerprint: deterministic across runs, sensitive to values and to the
// constraint a value belongs to.
func TestFingerprint(t *testing.T) {
	t.Parallel()

	bs := block.Struct{2}
	base := func(v float64, k int) *convert.Result {
		res, err := convert.Matrices(mustRelaxation(t, bs, block.Square, []float64{1, 2}, entry{0, 0, 1}, entry{1, k, v}))
		require.NoError(t, err)
		return res
	}

	a, b := base(3, 1), base(3, 1)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.FingerprintHex(), 64)

	assert.NotEqual(t, a.Fingerprint(), base(3.0000001, 1).Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), base(3, 2).Fingerprint())
}
