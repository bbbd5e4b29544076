package huffman

// Canonical assigns canonical prefix codes from per-symbol code lengths,
// following the RFC 1951 §3.2.2 algorithm (spec §4.6). A symbol with length
// 0 receives code 0, which is never written since its length is also 0.
func Canonical(lengths []uint8) []uint16 {
	var maxLength uint8
	var counts [16]int
	for _, l := range lengths {
		counts[l]++
		if l > maxLength {
			maxLength = l
		}
	}
	counts[0] = 0

	nextCode := make([]uint16, maxLength+1)
	code := 0
	for l := 1; l <= int(maxLength); l++ {
		code = (code + counts[l-1]) << 1
		nextCode[l] = uint16(code)
	}

	codes := make([]uint16, len(lengths))
	for symbol, l := range lengths {
		if l > 0 {
			codes[symbol] = nextCode[l]
			nextCode[l]++
		}
	}
	return codes
}
