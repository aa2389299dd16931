// Package simd provides accelerated byte-search primitives for the wildmatch
// engine. All functions are portable pure Go: they use SWAR (SIMD Within A
// Register) techniques, processing 8 bytes per step with uint64 bitwise
// operations instead of per-byte loops.
//
// The primary use case is driving the section scan: finding candidate
// positions for a section's search substring in large subjects without
// falling back to byte-at-a-time comparison.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo64 = 0x0101010101010101
	hi64 = 0x8080808080808080
)

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo64
}

// zeroBytes reports which bytes of v are zero: bit 7 of each zero byte is set
// in the result. Classic zero-in-word detection (Hacker's Delight 6-1).
func zeroBytes(v uint64) uint64 {
	return (v - lo64) & ^v & hi64
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte. Inputs shorter than 8 bytes are scanned
// directly; longer inputs are processed 8 bytes at a time.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present. Both needles are checked
// in parallel within each 8-byte chunk.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	mask3 := broadcast(needle3)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
			return i
		}
	}
	return -1
}

// MemchrPair returns the first index i such that haystack[i] == byte1 and
// haystack[i+offset] == byte2, or -1 if no such position exists. offset must
// be non-negative.
//
// Requiring two bytes at a fixed distance is far more selective than a
// single-byte probe, which makes this the candidate filter of choice for
// substring search with two rare bytes (see Memmem).
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	n := len(haystack)
	if offset < 0 || n <= offset {
		return -1
	}
	if n < 8+offset {
		for i := 0; i+offset < n; i++ {
			if haystack[i] == byte1 && haystack[i+offset] == byte2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(byte1)
	mask2 := broadcast(byte2)
	i := 0
	// Bit k of z1 marks haystack[i+k] == byte1; bit k of z2 marks
	// haystack[i+offset+k] == byte2. The AND keeps positions where both hold.
	for ; i+8+offset <= n; i += 8 {
		chunk1 := binary.LittleEndian.Uint64(haystack[i:])
		chunk2 := binary.LittleEndian.Uint64(haystack[i+offset:])
		z := zeroBytes(chunk1^mask1) & zeroBytes(chunk2^mask2)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i+offset < n; i++ {
		if haystack[i] == byte1 && haystack[i+offset] == byte2 {
			return i
		}
	}
	return -1
}
