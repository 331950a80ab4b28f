// SPDX-License-Identifier: MIT

// Package convert turns the row-indexed constraint data of an SDP relaxation
// into per-constraint lower-triangular triples over the concatenated
// block-diagonal matrix.
//
// Conventions:
//   - Column 0 of Relaxation.F is the cost matrix C; it is copied unchanged.
//   - Column k ≥ 1 is constraint matrix A_k; its values are negated and land
//     in Result.Constraints[k-1].
//   - Rows are visited in ascending order and, within a row, columns in
//     ascending order, so the output order is fully deterministic.
//
// Matrices is pure: it reads the relaxation and returns a fresh Result or an
// error, never a partial result.
package convert
