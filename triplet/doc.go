// SPDX-License-Identifier: MIT

// Package triplet holds one sparse symmetric matrix as coordinate triples
// (I[k], J[k], V[k]) in lower-triangular orientation, the form conic solvers
// take for sparse symmetric data. SymDense assembles the full matrix with
// gonum for inspection and evaluation.
package triplet
