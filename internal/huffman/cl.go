package huffman

// CL symbol ids for the three run-length-encoded repeat codes (spec §4.7).
const (
	RepeatPrevious  = 16
	RepeatZeroShort = 17
	RepeatZeroLong  = 18
)

// CLPermutation is the fixed transmission order DEFLATE uses for the 19 CL
// alphabet code lengths (spec §4.7).
var CLPermutation = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// CLSymbol is one emitted CL-alphabet symbol, with its extra-bits payload
// when it is a repeat code.
type CLSymbol struct {
	Symbol    uint8
	Extra     uint16
	ExtraBits uint8
}

// TrimTrailingZeros drops trailing zero entries from lengths beyond the
// first minKeep, returning the shortest prefix that still contains every
// non-zero entry (spec §4.7, "Trimming rules").
func TrimTrailingZeros(lengths []uint8, minKeep int) []uint8 {
	keep := minKeep
	for i := minKeep; i < len(lengths); i++ {
		if lengths[i] != 0 {
			keep = i + 1
		}
	}
	return lengths[:keep]
}

// TrimPermuted applies the same trailing-trim rule as TrimTrailingZeros but
// walks lengths in perm order, used to compute HCLEN (spec §4.7).
func TrimPermuted(lengths []uint8, perm []int, minKeep int) int {
	keep := minKeep
	for i := minKeep; i < len(perm); i++ {
		if lengths[perm[i]] != 0 {
			keep = i + 1
		}
	}
	return keep
}

// RunLengthEncode applies the CL run-length policy from spec §4.7 to a
// (already trimmed) code-length sequence: runs of 3+ zeros become symbol 17
// or 18, a value repeated 4+ times becomes that value followed by symbol
// 16, and anything else is emitted literally.
func RunLengthEncode(lengths []uint8) []CLSymbol {
	var out []CLSymbol
	n := len(lengths)
	i := 0
	for i < n {
		cur := lengths[i]

		switch {
		case cur == 0 && i+2 < n && lengths[i+1] == 0 && lengths[i+2] == 0:
			run := 3
			for i+run < n && lengths[i+run] == 0 && run < 138 {
				run++
			}
			if run < 11 {
				out = append(out, CLSymbol{Symbol: RepeatZeroShort, Extra: uint16(run - 3), ExtraBits: 3})
			} else {
				out = append(out, CLSymbol{Symbol: RepeatZeroLong, Extra: uint16(run - 11), ExtraBits: 7})
			}
			i += run

		case i+3 < n && cur == lengths[i+1] && cur == lengths[i+2] && cur == lengths[i+3]:
			out = append(out, CLSymbol{Symbol: cur})
			run := 3
			for run+i+1 < n && lengths[run+i+1] == cur && run < 6 {
				run++
			}
			out = append(out, CLSymbol{Symbol: RepeatPrevious, Extra: uint16(run - 3), ExtraBits: 2})
			i += run + 1

		default:
			out = append(out, CLSymbol{Symbol: cur})
			i++
		}
	}
	return out
}

// CLFrequencies tallies CL-symbol occurrences in syms, for feeding into
// package-merge over the 19-symbol CL alphabet.
func CLFrequencies(syms []CLSymbol) []uint32 {
	freq := make([]uint32, 19)
	for _, s := range syms {
		freq[s.Symbol]++
	}
	return freq
}
