// Package simd provides word-level popcount kernels.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: NEON (CNT + ADDV)
//
// Runtime CPU feature detection selects the kernel. On hardware without a
// population count instruction a branch-free SWAR kernel is used instead,
// since math/bits falls back to a table walk there.
//
// Set ODDSIEVE_SIMD=generic to force the SWAR kernel.
package simd
