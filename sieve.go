package oddsieve

import (
	"math"
	"time"

	"github.com/hupe1980/oddsieve/internal/bitvec"
	"github.com/hupe1980/oddsieve/internal/conv"
)

// MinLimit is the smallest accepted upper limit.
const MinLimit = 2

// Sieve holds the primality of every odd number up to its limit.
type Sieve struct {
	bits     *bitvec.BitVec
	limit    uint64
	reserved int64
	opts     options
}

// Build runs the sieve for all numbers up to and including limit.
//
// It returns ErrLimitTooSmall for limits below 2 and ErrMemoryLimitExceeded
// when a memory limit is configured and the bit array would not fit.
func Build(limit uint64, optFns ...Option) (*Sieve, error) {
	o := applyOptions(optFns)

	start := time.Now()
	s, err := build(limit, o)
	duration := time.Since(start)

	words := 0
	if s != nil {
		words = s.bits.NumWords()
	}
	o.logger.LogBuild(limit, words, duration, err)
	o.metricsCollector.RecordBuild(limit, duration, err)

	return s, err
}

func build(limit uint64, o options) (*Sieve, error) {
	if limit < MinLimit {
		return nil, &ErrInvalidLimit{Limit: limit, cause: ErrLimitTooSmall}
	}

	// One slot per odd value in [1, limit].
	n, err := conv.Uint64ToInt(limit/2 + limit%2)
	if err != nil {
		return nil, &ErrInvalidLimit{Limit: limit, cause: err}
	}

	reserved, err := conv.WordsToBytes(bitvec.NumWords(n))
	if err != nil {
		return nil, &ErrInvalidLimit{Limit: limit, cause: err}
	}
	if err := o.resources.AcquireMemory(reserved); err != nil {
		return nil, err
	}

	bits := bitvec.New(true, n)
	bits.Set(0, false) // 1 is not prime

	sqrtHalf := int(isqrt(limit) / 2)
	for i := 1; i <= sqrtHalf; i++ {
		if !bits.Get(i) {
			continue
		}

		// Start at base² (index 2i(i+1)) and step 2·base in value space.
		step := 2*i + 1
		for j := 2 * i * (i + 1); j < n; j += step {
			bits.Set(j, false)
		}
	}

	return &Sieve{
		bits:     bits,
		limit:    limit,
		reserved: reserved,
		opts:     o,
	}, nil
}

// isqrt returns ⌊√n⌋, exact for every uint64.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Limit returns the upper limit the sieve was built for.
func (s *Sieve) Limit() uint64 {
	return s.limit
}

// Len returns the number of odd values represented.
func (s *Sieve) Len() int {
	s.mustOwn()
	return s.bits.Len()
}

// IsPrime reports whether v is prime. Values above Limit report false.
func (s *Sieve) IsPrime(v uint64) bool {
	s.mustOwn()
	switch {
	case v == 2:
		return true
	case v < 2 || v%2 == 0 || v > s.limit:
		return false
	}
	return s.bits.Get(int(v / 2))
}

// Result hands the packed words to a Result. The Sieve must not be used
// afterwards.
func (s *Sieve) Result() *Result {
	s.mustOwn()

	words, n := s.bits.IntoWords()
	s.bits = nil

	return &Result{
		words:    words,
		n:        n,
		limit:    s.limit,
		reserved: s.reserved,
		opts:     s.opts,
	}
}

func (s *Sieve) mustOwn() {
	if s.bits == nil {
		panic("oddsieve: sieve used after Result")
	}
}
