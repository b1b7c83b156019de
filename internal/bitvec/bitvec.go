package bitvec

import (
	"fmt"
	"math"

	"github.com/hupe1980/oddsieve/internal/invariants"
)

// WordBits is the number of bits per word.
const WordBits = 64

const (
	wordShift = 6            // log2(WordBits)
	wordMask  = WordBits - 1 // i % WordBits
)

// BitVec is a fixed-length sequence of booleans packed into 64-bit words.
type BitVec struct {
	// words is the backing storage. nil after IntoWords.
	words []uint64

	// n is the logical number of bits; len(words)*WordBits may exceed it.
	n int

	consumed bool
}

// New returns a BitVec of n bits, each initialized to def.
//
// It panics if n is negative. Running out of memory is fatal.
func New(def bool, n int) *BitVec {
	if n < 0 {
		panic(fmt.Sprintf("bitvec.New: negative length %d", n))
	}

	words := make([]uint64, NumWords(n))
	if def {
		for i := range words {
			words[i] = math.MaxUint64
		}
	}

	return &BitVec{words: words, n: n}
}

// NumWords returns the number of words needed to hold n bits.
func NumWords(n int) int {
	return (n + wordMask) >> wordShift
}

// Get reports the value at index i.
func (b *BitVec) Get(i int) bool {
	if invariants.Enabled {
		b.check(i)
	}
	return b.words[i>>wordShift]&(1<<(uint(i)&wordMask)) != 0
}

// Set stores v at index i.
func (b *BitVec) Set(i int, v bool) {
	if invariants.Enabled {
		b.check(i)
	}
	mask := uint64(1) << (uint(i) & wordMask)
	if v {
		b.words[i>>wordShift] |= mask
	} else {
		b.words[i>>wordShift] &^= mask
	}
}

// Len returns the logical number of bits.
func (b *BitVec) Len() int {
	return b.n
}

// NumWords returns the number of allocated words.
func (b *BitVec) NumWords() int {
	return len(b.words)
}

// IntoWords hands the backing words and the logical length to the caller.
//
// Padding bits past Len in the final word are cleared first. The BitVec
// must not be used afterwards.
func (b *BitVec) IntoWords() ([]uint64, int) {
	if b.consumed {
		panic("bitvec: use after IntoWords")
	}

	words, n := b.words, b.n
	if tail := uint(n) & wordMask; tail != 0 {
		words[len(words)-1] &= (uint64(1) << tail) - 1
	}

	b.words = nil
	b.n = 0
	b.consumed = true

	return words, n
}

func (b *BitVec) check(i int) {
	if b.consumed {
		panic("bitvec: use after IntoWords")
	}
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, b.n))
	}
}
