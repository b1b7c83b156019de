package oddsieve

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/oddsieve/internal/bitvec"
	"github.com/hupe1980/oddsieve/internal/simd"
)

// Result is the extracted output of a Sieve: the packed words with padding
// bits cleared, plus the bound they were computed for.
type Result struct {
	words    []uint64
	n        int
	limit    uint64
	reserved int64
	opts     options
}

// Limit returns the upper limit the primes were computed for.
func (r *Result) Limit() uint64 {
	return r.limit
}

// Len returns the number of odd values represented.
func (r *Result) Len() int {
	return r.n
}

// Words returns the packed words. Bit i stands for the value 2i+1.
// The slice is owned by the Result.
func (r *Result) Words() []uint64 {
	return r.words
}

// Count returns the number of primes up to Limit.
//
// The padding past Len is zero, so a raw popcount needs no correction.
func (r *Result) Count() uint64 {
	return 1 + simd.PopcountWords(r.words) // 1 for the prime 2
}

// ForEach calls fn for every prime up to Limit in ascending order, starting
// with 2. Iteration stops early if fn returns false.
func (r *Result) ForEach(fn func(p uint64) bool) {
	if !fn(2) {
		return
	}

	for wi, w := range r.words {
		base := uint64(wi) * bitvec.WordBits
		for w != 0 {
			bit := uint64(bits.TrailingZeros64(w))
			v := 2*(base+bit) + 1
			if v > r.limit {
				return
			}
			if !fn(v) {
				return
			}
			w &= w - 1 // Clear lowest bit
		}
	}
}

// Primes returns all primes up to Limit.
func (r *Result) Primes() []uint64 {
	primes := make([]uint64, 0, r.Count())
	r.ForEach(func(p uint64) bool {
		primes = append(primes, p)
		return true
	})
	return primes
}

// Bitmap returns the primes as a compressed bitmap for set operations,
// rank queries and range cardinality.
func (r *Result) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	r.ForEach(func(p uint64) bool {
		bm.Add(p)
		return true
	})
	bm.RunOptimize()
	return bm
}

// Close drops the words and returns their reservation to the memory limit.
func (r *Result) Close() error {
	if r.words == nil {
		return nil
	}
	r.opts.resources.ReleaseMemory(r.reserved)
	r.words = nil
	r.n = 0
	r.reserved = 0
	return nil
}
