package simd

import "math/bits"

var kernelPopcountWords = popcountWordsGeneric

func selectKernel() {
	if activeISA == Generic {
		kernelPopcountWords = popcountWordsGeneric
		return
	}
	kernelPopcountWords = popcountWordsHW
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) uint64 {
	return kernelPopcountWords(words)
}

// popcountWordsHW relies on the compiler lowering bits.OnesCount64 to the
// hardware instruction.
func popcountWordsHW(words []uint64) uint64 {
	var count uint64
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += uint64(bits.OnesCount64(words[i]))
		count += uint64(bits.OnesCount64(words[i+1]))
		count += uint64(bits.OnesCount64(words[i+2]))
		count += uint64(bits.OnesCount64(words[i+3]))
	}
	for ; i < len(words); i++ {
		count += uint64(bits.OnesCount64(words[i]))
	}
	return count
}

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

func popcountWordsGeneric(words []uint64) uint64 {
	var count uint64
	for _, x := range words {
		x -= (x >> 1) & m1
		x = (x & m2) + ((x >> 2) & m2)
		x = (x + (x >> 4)) & m4
		count += (x * h01) >> 56
	}
	return count
}
