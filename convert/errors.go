// SPDX-License-Identifier: MIT
// Package convert: sentinel errors. Structural problems with the relaxation
// surface here; block structure problems keep their block.Err* sentinels.

package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRelaxation is returned for a nil relaxation or a nil F.
	ErrNilRelaxation = errors.New("convert: nil relaxation")

	// ErrShapeMismatch indicates that F's shape disagrees with the block
	// structure (rows) or with NVars (cols).
	ErrShapeMismatch = errors.New("convert: constraint data shape mismatch")

	// ErrBoundsMismatch indicates len(ObjFacVar) != NVars.
	ErrBoundsMismatch = errors.New("convert: objective coefficients do not match NVars")
)

func convertErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
