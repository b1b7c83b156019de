// Package bitvec provides a fixed-length packed boolean array.
//
// # Memory Layout
//
// Bit i lives in bit (i % 64) of words[i / 64]:
//
//	┌──────────────────┬──────────────────┬─────────────────────────┐
//	│  Word 0 (uint64) │  Word 1 (uint64) │  Word k-1 (uint64)      │
//	│  bits [0,63]     │  bits [64,127]   │  bits [.., n) + padding │
//	└──────────────────┴──────────────────┴─────────────────────────┘
//
// The padding bits past the logical length carry the fill value chosen at
// construction. IntoWords clears them, so a raw popcount over the extracted
// words counts exactly the true values in [0, n).
//
// # Bounds
//
// Get and Set sit on the sieve's inner loop and trust their callers. Build
// with `-tags invariants` to panic on any index outside [0, n).
//
// # Ownership
//
// A BitVec has a single owner and no internal locking. IntoWords hands the
// backing storage to the caller and leaves the BitVec unusable.
package bitvec
