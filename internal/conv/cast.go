package conv

import (
	"fmt"
	"math"
)

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// WordsToBytes returns the byte size of n 64-bit words as int64.
func WordsToBytes(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("integer overflow: %d words cannot be sized (negative)", n)
	}
	if uint64(n) > math.MaxInt64/8 {
		return 0, fmt.Errorf("integer overflow: %d words exceed %d bytes", n, int64(math.MaxInt64))
	}
	return int64(n) * 8, nil
}
