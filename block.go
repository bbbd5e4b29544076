package gzoe

import (
	"github.com/zoejohnston/gzoe/internal/huffman"
	"github.com/zoejohnston/gzoe/internal/symbols"
	"github.com/zoejohnston/gzoe/internal/window"
)

const (
	endOfBlockSymbol  = 256
	litLenAlphabet    = 286
	distAlphabet      = 30
	varianceThreshold = 1.5
	clMinKeep         = 4

	// llVarianceSize and distVarianceSize size the arrays fed to variance,
	// not huffman.BuildLengths: original_source/prefix_code.c's
	// frequency_analysis calls variance(ll_storage, 288) and
	// variance(dist_storage, 32), two slots wider than the real 286/30
	// symbol alphabets, and those two always-zero slots shift the computed
	// variance relative to a 286/30-sized call. Matching the source's
	// buffer sizes here keeps the fixed-vs-dynamic decision boundary
	// faithful to it (DESIGN.md, block.go entry).
	llVarianceSize   = 288
	distVarianceSize = 32
)

// Fixed (type-1) tables are built once: they never depend on a block's
// contents, per spec §4.8 step 4.
var (
	fixedLitLengths  = symbols.FixedLiteralLengths()
	fixedLitCodes    = huffman.Canonical(fixedLitLengths)
	fixedDistLengths = symbols.FixedDistanceLengths()
	fixedDistCodes   = huffman.Canonical(fixedDistLengths)
)

// WriteBlock writes one DEFLATE block for data: the BFINAL bit, then a
// stored, fixed, or dynamic body chosen per spec §4.8.
func WriteBlock(bw *BitWriter, win *window.Window, data []byte, final bool) error {
	finalBit := uint32(0)
	if final {
		finalBit = 1
	}
	if err := bw.PushBits(finalBit, 1); err != nil {
		return err
	}

	tokens, estimate := win.EncodeBlock(data)
	if estimate > 8*len(data)+40 {
		return writeStoredBlock(bw, data)
	}

	llFreq, distFreq := tokenFrequencies(tokens)
	if variance(llFreq) > varianceThreshold || variance(distFreq) > varianceThreshold {
		return writeDynamicBlock(bw, tokens, llFreq[:litLenAlphabet], distFreq[:distAlphabet])
	}
	return writeFixedBlock(bw, tokens)
}

func writeStoredBlock(bw *BitWriter, data []byte) error {
	if err := bw.PushBits(0, 2); err != nil {
		return err
	}
	if err := bw.AlignToByte(); err != nil {
		return err
	}
	n := uint16(len(data))
	if err := bw.PushUint16LE(n); err != nil {
		return err
	}
	if err := bw.PushUint16LE(^n); err != nil {
		return err
	}
	for _, b := range data {
		if err := bw.PushByte(b); err != nil {
			return err
		}
	}
	return bw.Err()
}

func writeFixedBlock(bw *BitWriter, tokens []window.Token) error {
	if err := bw.PushBits(1, 2); err != nil {
		return err
	}
	for _, t := range tokens {
		if err := emitToken(bw, t, fixedLitCodes, fixedLitLengths, fixedDistCodes, fixedDistLengths); err != nil {
			return err
		}
	}
	return emitSymbol(bw, fixedLitCodes, fixedLitLengths, endOfBlockSymbol)
}

func writeDynamicBlock(bw *BitWriter, tokens []window.Token, llFreq, distFreq []uint32) error {
	if err := bw.PushBits(2, 2); err != nil {
		return err
	}

	llLengths := huffman.BuildLengths(llFreq, 15)
	distLengths := huffman.BuildLengths(distFreq, 15)
	llCodes := huffman.Canonical(llLengths)
	distCodes := huffman.Canonical(distLengths)

	trimmedLL := huffman.TrimTrailingZeros(llLengths, 257)
	trimmedDist := huffman.TrimTrailingZeros(distLengths, 1)

	if err := writeCLData(bw, trimmedLL, trimmedDist); err != nil {
		return err
	}

	for _, t := range tokens {
		if err := emitToken(bw, t, llCodes, llLengths, distCodes, distLengths); err != nil {
			return err
		}
	}
	return emitSymbol(bw, llCodes, llLengths, endOfBlockSymbol)
}

// writeCLData writes HLIT, HDIST, HCLEN, the CL code-length table, and the
// RLE-encoded literal/length + distance code lengths (spec §4.7).
func writeCLData(bw *BitWriter, llLengths, distLengths []uint8) error {
	degenerateDist := len(distLengths) == 1 && distLengths[0] == 0

	hlit := len(llLengths) - 257
	hdist := len(distLengths) - 1
	if degenerateDist {
		hdist = 0
	}

	combined := make([]uint8, 0, len(llLengths)+len(distLengths))
	combined = append(combined, llLengths...)
	combined = append(combined, distLengths...)
	clSyms := huffman.RunLengthEncode(combined)
	clFreq := huffman.CLFrequencies(clSyms)
	clLengths := huffman.BuildLengths(clFreq, 7)
	clCodes := huffman.Canonical(clLengths)

	hclen := huffman.TrimPermuted(clLengths, huffman.CLPermutation[:], clMinKeep) - clMinKeep

	if err := bw.PushBits(uint32(hlit), 5); err != nil {
		return err
	}
	if err := bw.PushBits(uint32(hdist), 5); err != nil {
		return err
	}
	if err := bw.PushBits(uint32(hclen), 4); err != nil {
		return err
	}
	for i := 0; i < hclen+clMinKeep; i++ {
		sym := huffman.CLPermutation[i]
		if err := bw.PushBits(uint32(clLengths[sym]), 3); err != nil {
			return err
		}
	}

	if degenerateDist {
		// Unreachable: package-merge always synthesizes at least two leaves
		// (spec §4.5), so the distance alphabet never collapses to a single
		// absent code. The raw fallback is preserved for fidelity to the
		// source's write_cl_data (see SPEC_FULL.md §13).
		llSyms := huffman.RunLengthEncode(llLengths)
		if err := writeCLSymbols(bw, llSyms, clCodes, clLengths); err != nil {
			return err
		}
		return bw.PushBits(0, 5)
	}

	return writeCLSymbols(bw, clSyms, clCodes, clLengths)
}

func writeCLSymbols(bw *BitWriter, syms []huffman.CLSymbol, codes []uint16, lengths []uint8) error {
	for _, s := range syms {
		if err := emitSymbol(bw, codes, lengths, uint16(s.Symbol)); err != nil {
			return err
		}
		if s.ExtraBits > 0 {
			if err := bw.PushBits(uint32(s.Extra), uint(s.ExtraBits)); err != nil {
				return err
			}
		}
	}
	return bw.Err()
}

func emitSymbol(bw *BitWriter, codes []uint16, lengths []uint8, symbol uint16) error {
	l := lengths[symbol]
	if l == 0 {
		return InvariantError("no huffman code assigned for a symbol the block writer must emit")
	}
	return bw.PushCode(codes[symbol], l)
}

func emitToken(bw *BitWriter, t window.Token, llCodes []uint16, llLengths []uint8, distCodes []uint16, distLengths []uint8) error {
	if t.Literal {
		return emitSymbol(bw, llCodes, llLengths, uint16(t.Byte))
	}

	lsym := symbols.LengthSymbol(t.Length)
	if err := emitSymbol(bw, llCodes, llLengths, lsym); err != nil {
		return err
	}
	if extra := symbols.LengthExtra(lsym); extra > 0 {
		off := symbols.LengthOffset(t.Length, lsym)
		if err := bw.PushBits(uint32(off), uint(extra)); err != nil {
			return err
		}
	}

	dsym := symbols.DistanceSymbol(t.Distance)
	if err := emitSymbol(bw, distCodes, distLengths, dsym); err != nil {
		return err
	}
	if extra := symbols.DistanceExtra(dsym); extra > 0 {
		off := symbols.DistanceOffset(t.Distance, dsym)
		if err := bw.PushBits(uint32(off), uint(extra)); err != nil {
			return err
		}
	}
	return nil
}

// tokenFrequencies tallies literal/length and distance symbol frequencies
// from a token stream, counting the end-of-block symbol exactly once
// regardless of token count (spec §4.8 step 3, SPEC_FULL.md §13). The
// returned arrays are sized llVarianceSize/distVarianceSize (288/32), two
// slots wider than the real 286/30-symbol alphabets, so that variance sees
// the same buffer width original_source/prefix_code.c's frequency_analysis
// does; callers building real dynamic codes must slice down to
// [:litLenAlphabet]/[:distAlphabet] first.
func tokenFrequencies(tokens []window.Token) (llFreq, distFreq []uint32) {
	llFreq = make([]uint32, llVarianceSize)
	distFreq = make([]uint32, distVarianceSize)
	for _, t := range tokens {
		if t.Literal {
			llFreq[t.Byte]++
			continue
		}
		llFreq[symbols.LengthSymbol(t.Length)]++
		distFreq[symbols.DistanceSymbol(t.Distance)]++
	}
	llFreq[endOfBlockSymbol]++
	return llFreq, distFreq
}

// variance is the sample variance over freq, including zero entries, used
// by the fixed-vs-dynamic heuristic (spec §4.8 step 3, §9 DESIGN NOTES).
func variance(freq []uint32) float64 {
	n := float64(len(freq))
	if n == 0 {
		return 0
	}
	var sum float64
	for _, f := range freq {
		sum += float64(f)
	}
	mean := sum / n

	var sq float64
	for _, f := range freq {
		d := float64(f) - mean
		sq += d * d
	}
	return sq / n
}
