package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents an instruction set used by the popcount kernel.
type ISA uint8

const (
	// Generic represents the portable SWAR kernel.
	Generic ISA = iota
	// POPCNT represents the x86-64 POPCNT instruction.
	POPCNT
	// NEON represents ARM64 ASIMD (CNT/ADDV).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "ODDSIEVE_SIMD"

// Set once from the platform init; read-only afterwards.
var (
	activeISA   ISA
	hasOverride bool

	hasPOPCNT bool // x86-64
	hasASIMD  bool // ARM64
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			selectKernel()
			return
		}
		// Unknown or unavailable: fall through to auto-detection.
	}

	activeISA = selectBestISA()
	selectKernel()
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64":
		if hasPOPCNT {
			return POPCNT
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	}
	return Generic
}

// SetISA switches the active kernel. It reports false if isa is not
// supported on this CPU. Not safe for concurrent use with PopcountWords;
// intended for tests and benchmarks.
func SetISA(isa ISA) bool {
	if !isISAAvailable(isa) {
		return false
	}
	activeISA = isa
	selectKernel()
	return true
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if ODDSIEVE_SIMD selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
