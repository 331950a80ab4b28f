// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/sdpconv/block"
	"github.com/katalvlaran/sdpconv/convert"
	"github.com/katalvlaran/sdpconv/sparse"
)

// relaxationFile is the JSON form of a relaxation. Entries address F by slot
// row and constraint column k (0 = cost).
type relaxationFile struct {
	NVars       int         `json:"n_vars"`
	ObjFacVar   []float64   `json:"obj_facvar"`
	BlockStruct []int       `json:"block_struct"`
	Entries     []fileEntry `json:"entries"`
}

type fileEntry struct {
	Row int     `json:"row"`
	K   int     `json:"k"`
	V   float64 `json:"v"`
}

// readRelaxation decodes r and sizes F for layout. Unknown JSON fields are
// rejected so typos do not silently drop data.
func readRelaxation(r io.Reader, layout block.Layout) (*convert.Relaxation, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var rf relaxationFile
	if err := dec.Decode(&rf); err != nil {
		return nil, fmt.Errorf("decode relaxation: %w", err)
	}

	off, err := block.NewOffsets(rf.BlockStruct, layout)
	if err != nil {
		return nil, fmt.Errorf("relaxation: %w", err)
	}
	f, err := sparse.NewRowMatrix(off.NumRows(), rf.NVars+1)
	if err != nil {
		return nil, fmt.Errorf("relaxation: n_vars=%d: %w", rf.NVars, err)
	}
	for n, e := range rf.Entries {
		if err := f.Set(e.Row, e.K, e.V); err != nil {
			return nil, fmt.Errorf("relaxation: entry %d: %w", n, err)
		}
	}

	return &convert.Relaxation{
		NVars:       rf.NVars,
		ObjFacVar:   rf.ObjFacVar,
		BlockStruct: rf.BlockStruct,
		F:           f,
	}, nil
}
