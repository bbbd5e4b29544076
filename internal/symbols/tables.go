// Package symbols holds the RFC 1951 length/distance range tables and the
// fixed (type-1) literal/length and distance code lengths. These are the
// compile-time constant data that spec.md's DESIGN NOTES single out as the
// module-wide fixed tables: they never change at runtime, so they live as
// package-level arrays rather than fields on any encoder value.
package symbols

// LengthRangeStart maps length symbol 257+i to the smallest length it
// represents.
var LengthRangeStart = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

// LengthExtraBits gives the number of extra bits that follow length symbol
// 257+i.
var LengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// DistRangeStart maps distance symbol i to the smallest distance it
// represents.
var DistRangeStart = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

// DistExtraBits gives the number of extra bits that follow distance symbol i.
var DistExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// LengthSymbol returns the length symbol (257..285) for a match length in
// [3,258].
func LengthSymbol(length uint16) uint16 {
	for i := 0; i < len(LengthRangeStart)-1; i++ {
		if LengthRangeStart[i+1] > length {
			return uint16(i) + 257
		}
	}
	return 285
}

// LengthOffset returns the extra-bits value for length given the length
// symbol already computed for it.
func LengthOffset(length, symbol uint16) uint16 {
	return length - LengthRangeStart[symbol-257]
}

// LengthExtra returns the number of extra bits following a length symbol.
func LengthExtra(symbol uint16) uint8 {
	return LengthExtraBits[symbol-257]
}

// DistanceSymbol returns the distance symbol (0..29) for a distance in
// [1,32768].
func DistanceSymbol(distance uint16) uint16 {
	for i := 0; i < len(DistRangeStart)-1; i++ {
		if DistRangeStart[i+1] > distance {
			return uint16(i)
		}
	}
	return 29
}

// DistanceOffset returns the extra-bits value for distance given the
// distance symbol already computed for it.
func DistanceOffset(distance, symbol uint16) uint16 {
	return distance - DistRangeStart[symbol]
}

// DistanceExtra returns the number of extra bits following a distance
// symbol.
func DistanceExtra(symbol uint16) uint8 {
	return DistExtraBits[symbol]
}

// FixedLiteralLengths returns the type-1 (fixed Huffman) code lengths for
// the 288-symbol literal/length alphabet, per RFC 1951 §3.2.6.
func FixedLiteralLengths() []uint8 {
	lengths := make([]uint8, 288)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}
	return lengths
}

// FixedDistanceLengths returns the type-1 distance code lengths. The table
// has 32 entries, not 30: the original source builds a canonical code over
// all 32 possible 5-bit patterns, leaving the two unused distance codes
// (30, 31) with a valid but unreachable length. See SPEC_FULL.md §13.
func FixedDistanceLengths() []uint8 {
	lengths := make([]uint8, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}

// FixedLiteralBits returns the number of bits the type-1 code spends on a
// literal/length symbol. It is used only by the LZSS bit estimator (spec
// §4.3), which charges this cost without building the real fixed tree.
func FixedLiteralBits(symbol uint16) uint {
	switch {
	case symbol < 144:
		return 8
	case symbol < 256:
		return 9
	case symbol < 280:
		return 7
	default:
		return 8
	}
}

// FixedDistanceBits is the constant the LZSS bit estimator charges for a
// distance symbol, approximating the fixed 5-bit distance code regardless
// of which symbol is used (spec §4.3, §9).
const FixedDistanceBits = 5
