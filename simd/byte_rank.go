package simd

// byteRanks holds empirical byte frequency ranks derived from English text,
// source code, and binary sampling. Lower rank = rarer byte = better search
// probe. The same approach is used by Rust's memchr crate for rare byte
// selection in substring search.
var byteRanks = [256]byte{
	// 0x00-0x0F: control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	// 0x10-0x1F: control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F: space and punctuation
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F: digits and punctuation
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x4F: '@' and A-O
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// 0x50-0x5F: P-Z and brackets
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x6F: backtick and a-o
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// 0x70-0x7F: p-z and braces
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: UTF-8 continuation and extended bytes, rare in text
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// ByteRank returns the frequency rank of b. Lower values indicate rarer
// bytes, which make more selective search probes.
func ByteRank(b byte) byte {
	return byteRanks[b]
}

// RareByteInfo describes the two rarest bytes of a needle, used to drive
// paired-byte candidate filtering in Memmem.
type RareByteInfo struct {
	// Byte1 is the rarest byte in the needle, at position Index1.
	Byte1  byte
	Index1 int
	// Byte2 is the second-rarest byte, at position Index2. For single-byte
	// needles Byte2/Index2 equal Byte1/Index1.
	Byte2  byte
	Index2 int
}

// SelectRareBytes finds the two rarest bytes in needle by frequency rank.
//
// Byte1 always carries the lowest rank in the needle; Byte2 is the rarest
// byte with a different value than Byte1 when one exists. Searching for two
// distinct rare bytes at their fixed distance filters candidates much harder
// than probing for a single byte.
func SelectRareBytes(needle []byte) RareByteInfo {
	n := len(needle)
	if n == 0 {
		return RareByteInfo{}
	}
	if n == 1 {
		return RareByteInfo{Byte1: needle[0], Byte2: needle[0]}
	}

	byte1, idx1 := needle[0], 0
	byte2, idx2 := needle[1], 1
	if byteRanks[byte2] < byteRanks[byte1] {
		byte1, byte2 = byte2, byte1
		idx1, idx2 = idx2, idx1
	}

	for i := 2; i < n; i++ {
		b := needle[i]
		rank := byteRanks[b]
		switch {
		case rank < byteRanks[byte1]:
			byte2, idx2 = byte1, idx1
			byte1, idx1 = b, i
		case b != byte1 && rank < byteRanks[byte2]:
			byte2, idx2 = b, i
		}
	}

	return RareByteInfo{Byte1: byte1, Index1: idx1, Byte2: byte2, Index2: idx2}
}
