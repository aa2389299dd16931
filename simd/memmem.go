package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.Index, implemented as a rare-byte candidate scan:
// the two rarest needle bytes (by frequency rank) are located at their fixed
// distance with MemchrPair, and only those positions are verified against
// the full needle. Needles whose bytes are all identical degrade to a
// single-byte probe.
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world"))
//	// pos == 6
//
// Example with repeated prefixes:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at the start, mirroring bytes.Index.
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	info := SelectRareBytes(needle)
	if info.Byte1 == info.Byte2 {
		return memmemSingleProbe(haystack, needle, info.Byte1, info.Index1)
	}

	// Probe for the earlier of the two rare bytes first so the pair offset
	// is non-negative.
	probe1, probeIdx := info.Byte1, info.Index1
	probe2, offset := info.Byte2, info.Index2-info.Index1
	if offset < 0 {
		probe1, probeIdx = info.Byte2, info.Index2
		probe2, offset = info.Byte1, -offset
	}

	searchStart := 0
	for searchStart < haystackLen {
		pos := MemchrPair(haystack[searchStart:], probe1, probe2, offset)
		if pos == -1 {
			return -1
		}
		pos += searchStart

		start := pos - probeIdx
		if start >= 0 && start+needleLen <= haystackLen &&
			bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}

// memmemSingleProbe is the fallback for needles with a single distinct byte
// value: every candidate position of the probe byte is verified in full.
func memmemSingleProbe(haystack, needle []byte, probe byte, probeIdx int) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	searchStart := 0
	for searchStart < haystackLen {
		pos := Memchr(haystack[searchStart:], probe)
		if pos == -1 {
			return -1
		}
		pos += searchStart

		start := pos - probeIdx
		if start >= 0 && start+needleLen <= haystackLen &&
			bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}
