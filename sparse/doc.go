// Package sparse stores the row-indexed constraint data of an SDP relaxation.
//
// RowMatrix is a list-of-lists matrix: every row keeps its column indices in
// ascending order together with a parallel value slice. Rows correspond to
// slots of the block encoding (see package block); column 0 holds the cost
// contribution and column k ≥ 1 the k-th constraint matrix.
package sparse
