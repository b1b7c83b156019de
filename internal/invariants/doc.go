// Package invariants exposes a compile-time switch for expensive assertions.
//
// Build or test with `-tags invariants` to enable bounds checks on hot paths
// that are otherwise trusted to receive valid input:
//
//	go test -tags invariants ./...
package invariants
