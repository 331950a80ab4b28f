// Package sdpconv converts the constraint data of sparse SDP relaxations into
// the sparse symmetric form taken by conic solvers.
//
// A relaxation stores its matrices F_0 (cost) and F_1..F_m (constraints)
// row by row: every row is one upper-triangular slot of one diagonal block,
// every column one matrix. Conic solvers want, per matrix, lower-triangular
// (row, col, value) triples in the coordinates of a single block-diagonal
// matrix variable. Bridging the two is pure index arithmetic:
//
//	block/    block structure, slot layouts, row → (block, i, j) → (r, c)
//	sparse/   row-indexed input matrix (list of lists)
//	triplet/  per-matrix output triples, dense assembly via gonum
//	convert/  the conversion driver and a SHA3 fingerprint of its result
//	solver/   Builder interface, Load hand-off, task adapter, in-memory problem
//
// Quick example:
//
//	p := solver.NewProblem()
//	res, err := solver.Load(rel, p, solver.WithLogWriter(os.Stdout))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Dim, res.FingerprintHex())
//
// cmd/sdpconv wraps the same pipeline as a command reading JSON.
package sdpconv
