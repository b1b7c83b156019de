// Package testutil provides testing utilities for oddsieve.
//
// This package is intended for use in tests and benchmarks only. It
// provides an independent trial-division oracle for primality so sieve
// output can be checked against something that shares none of its code.
//
//	want := testutil.ReferencePrimes(10_000)
//	assert.Equal(t, want, result.Primes())
package testutil
