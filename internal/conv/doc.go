// Package conv provides safe integer type conversion utilities.
//
// The sieve takes its bound as a uint64 but indexes with int, and the memory
// budget is accounted in int64 bytes. These helpers reject values that would
// wrap on the current platform instead of silently truncating them.
package conv
