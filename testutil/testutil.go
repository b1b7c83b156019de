package testutil

// IsPrime reports whether v is prime by trial division.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	if v%2 == 0 {
		return v == 2
	}
	for d := uint64(3); d <= v/d; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// ReferencePrimes returns every prime in [2, n] in ascending order.
func ReferencePrimes(n uint64) []uint64 {
	var primes []uint64
	for v := uint64(2); v <= n; v++ {
		if IsPrime(v) {
			primes = append(primes, v)
		}
	}
	return primes
}

// PrimeCounts lists π(n) for selected n, the prime-counting function.
var PrimeCounts = map[uint64]uint64{
	2:             1,
	3:             2,
	4:             2,
	9:             4,
	10:            4,
	100:           25,
	1_000:         168,
	10_000:        1_229,
	100_000:       9_592,
	1_000_000:     78_498,
	10_000_000:    664_579,
	100_000_000:   5_761_455,
	1_000_000_000: 50_847_534,
}
