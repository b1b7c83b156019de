// Package oddsieve computes the primes up to a bound with a bit-packed Sieve
// of Eratosthenes over odd numbers only.
//
// # Quick Start
//
//	s, err := oddsieve.Build(1_000_000)
//	if err != nil {
//	    return err
//	}
//	r := s.Result()
//	defer r.Close()
//
//	fmt.Println(r.Count()) // 78498
//
// # Index Mapping
//
// Only odd numbers are stored. Bit i of the packed array stands for the
// value 2i+1, so bit 0 is the value 1 (cleared) and 2 is never stored:
//
//	index:  0  1  2  3  4  5  6  7  8 ...
//	value:  1  3  5  7  9 11 13 15 17 ...
//	prime:  0  1  1  1  0  1  1  0  1 ...
//
// This halves memory relative to one bit per integer.
//
// # Ownership
//
// A Sieve owns its bit array until Result is called. Result hands the
// packed words to a Result and the Sieve must not be used afterwards.
// Neither type is safe for concurrent use.
//
// # Output
//
// Emit writes the bracketed prime list and/or the count line exactly as the
// oddsieve command prints them:
//
//	[ 2, 3, 5, 7 ]
//	There are 4 primes up to 10.
//
// # Configuration
//
//	s, _ := oddsieve.Build(n,
//	    oddsieve.WithLogger(oddsieve.NewTextLogger(slog.LevelDebug)),
//	    oddsieve.WithMetricsCollector(&oddsieve.BasicMetricsCollector{}),
//	    oddsieve.WithMemoryLimit(64<<20),
//	)
package oddsieve
