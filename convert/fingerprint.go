// SPDX-License-Identifier: MIT

package convert

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/sdpconv/triplet"
)

// Fingerprint is a SHA3-256 digest of the solver-facing data: Dim, Bounds,
// Cost and every constraint matrix, in that order. Values are hashed by their
// IEEE-754 bits, so -0 and +0 differ. The layout does not enter the digest:
// the same problem read through either layout hashes the same.
func (r *Result) Fingerprint() [32]byte {
	h := sha3.New256()
	w := digestWriter{h: h}

	w.putInt(r.Dim)
	w.putInt(len(r.Bounds))
	for _, b := range r.Bounds {
		w.putFloat(b)
	}
	w.triplets(r.Cost)
	w.putInt(len(r.Constraints))
	for _, t := range r.Constraints {
		w.triplets(t)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))

	return out
}

// FingerprintHex is Fingerprint in lower-case hex.
func (r *Result) FingerprintHex() string {
	fp := r.Fingerprint()
	return hex.EncodeToString(fp[:])
}

// digestWriter feeds fixed-width little-endian words into a hash.
type digestWriter struct {
	h   hash.Hash
	buf [8]byte
}

func (w *digestWriter) word(u uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], u)
	_, _ = w.h.Write(w.buf[:]) // hash.Hash never returns an error
}

func (w *digestWriter) putInt(n int)       { w.word(uint64(int64(n))) }
func (w *digestWriter) putFloat(v float64) { w.word(math.Float64bits(v)) }

func (w *digestWriter) triplets(t triplet.Triplets) {
	w.putInt(t.Len())
	for k := range t.V {
		w.putInt(t.I[k])
		w.putInt(t.J[k])
		w.putFloat(t.V[k])
	}
}
