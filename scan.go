package lzp

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Scanner measures the repeated run between two positions in a buffer.
// All implementations in this package are interchangeable: for the same valid
// arguments they return the same count. See WhileEqual for the contract.
type Scanner func(src []byte, from, index int) int

// checkScanArgs enforces the scanner contract: from < index < len(src) and the
// first byte pair already verified equal by the caller. Violations are caller
// bugs, not stream conditions, and abort via panic.
func checkScanArgs(src []byte, from, index int) {
	if from >= index {
		panic(fmt.Sprintf("lzp: scan from=%d must be below index=%d", from, index))
	}
	if index >= len(src) {
		panic(fmt.Sprintf("lzp: scan index=%d out of range for %d bytes", index, len(src)))
	}
	if src[from] != src[index] {
		panic(fmt.Sprintf("lzp: scan start bytes differ: src[%d]=0x%02x src[%d]=0x%02x",
			from, src[from], index, src[index]))
	}
}

// WhileEqual counts consecutive equal byte pairs starting at from and index,
// one pair per step. The count includes the already-verified first pair, so
// the minimum return value is 1. The left cursor stops before index and the
// right cursor before the end of src, which bounds the result by
// min(index-from, len(src)-index) and keeps a match from overrunning the
// position it will be copied from.
func WhileEqual(src []byte, from, index int) int {
	checkScanArgs(src, from, index)

	s := from + 1
	i := index + 1
	for s < index && i < len(src) && src[s] == src[i] {
		s++
		i++
	}

	return s - from
}

// WhileEqualUnrolled is WhileEqual testing four byte pairs per iteration.
// The four comparisons carry no data dependency between them, so an
// out-of-order processor can issue the loads in parallel. The scalar tail loop
// settles the up-to-three positions the last iteration left unchecked plus any
// remainder below the unroll bound.
func WhileEqualUnrolled(src []byte, from, index int) int {
	checkScanArgs(src, from, index)

	s := from + 1
	i := index + 1
	for s+4 < index && i+4 < len(src) {
		b1 := src[s] == src[i]
		b2 := src[s+1] == src[i+1]
		b3 := src[s+2] == src[i+2]
		b4 := src[s+3] == src[i+3]
		if !(b1 && b2 && b3 && b4) {
			break
		}
		s += 4
		i += 4
	}

	for s < index && i < len(src) && src[s] == src[i] {
		s++
		i++
	}

	return s - from
}

// wordLen is the native word width in bytes: 4 on 32-bit targets, 8 on 64-bit.
const wordLen = bits.UintSize / 8

// loadWord reinterprets wordLen bytes of src at pos as one native word.
// The read itself performs no bounds check: the caller must have proven
// pos+wordLen <= len(src) before calling. Word equality does not depend on
// byte order, so the raw representation is compared directly.
func loadWord(src []byte, pos int) uint {
	return *(*uint)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(src)), pos))
}

// WhileEqualWide is WhileEqual comparing one native word per iteration.
// Both loadWord calls are covered by the loop bounds: s+wordLen < index keeps
// the left read inside [from+1, index) and i+wordLen < len(src) keeps the
// right read inside the buffer, so every dereference touches only positions
// the surrounding arithmetic has already verified.
func WhileEqualWide(src []byte, from, index int) int {
	checkScanArgs(src, from, index)

	s := from + 1
	i := index + 1
	for s+wordLen < index && i+wordLen < len(src) && loadWord(src, s) == loadWord(src, i) {
		s += wordLen
		i += wordLen
	}

	for s < index && i < len(src) && src[s] == src[i] {
		s++
		i++
	}

	return s - from
}
