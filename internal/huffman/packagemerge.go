// Package huffman builds length-limited canonical Huffman codes via the
// package-merge algorithm (spec §4.5), assigns canonical codes from code
// lengths (spec §4.6), and run-length encodes a code-length sequence for
// DEFLATE's CL alphabet (spec §4.7).
package huffman

import "sort"

// item is one entry in a package-merge work list: either an original leaf
// (symbol, cost) or a package formed by summing two items from a prior
// list, tracked via merged so the final pass can tell leaves from packages.
type item struct {
	symbol uint16
	cost   uint32
	merged bool
}

// BuildLengths runs package-merge over freq, an array of per-symbol
// frequencies (index = symbol id), and returns code lengths bounded by
// maxLen. Symbols with zero frequency get length 0, except for the synthetic
// leaves setupOriginals adds when fewer than two symbols are used (spec
// §4.5). An empty freq yields empty lengths.
func BuildLengths(freq []uint32, maxLen uint8) []uint8 {
	lengths := make([]uint8, len(freq))
	if len(freq) == 0 {
		return lengths
	}

	originals := setupOriginals(freq)
	maximum := 2*len(originals) - 2
	if maximum <= 0 {
		return lengths
	}

	// lists[i] holds the package-merge work list after i+1 rounds of
	// pairing and merging; lists[int(maxLen)-2] is the final, truncated
	// list the interpretation pass starts from (spec §4.5 step 2).
	lists := make([][]item, int(maxLen)-1)
	lists[0] = packageAndMerge(originals, originals, maximum)
	for i := 1; i < int(maxLen)-1; i++ {
		lists[i] = packageAndMerge(lists[i-1], originals, maximum)
	}

	last := lists[len(lists)-1]
	num := interpretN(last, len(last), lengths)
	for i := len(lists) - 2; i > 0; i-- {
		num = interpretN(lists[i], num, lengths)
	}
	if len(lists) > 1 {
		num = interpretN(lists[0], num, lengths)
	}
	interpretN(originals, num, lengths)

	return lengths
}

// setupOriginals builds one leaf per symbol with non-zero frequency, sorted
// ascending by cost. DEFLATE's canonical coder needs at least two symbols,
// so the 0-or-1-used-symbol cases get synthetic cost-1 leaves (spec §4.5
// step 1, preserved exactly per spec §9 DESIGN NOTES).
func setupOriginals(freq []uint32) []item {
	var originals []item
	last := 0
	for i, f := range freq {
		if f == 0 {
			continue
		}
		last = i
		originals = append(originals, item{symbol: uint16(i), cost: f})
	}

	if len(originals) == 0 {
		originals = append(originals, item{symbol: uint16(last), cost: 1})
	}
	if len(originals) == 1 {
		next := (int(originals[0].symbol) + 1) % len(freq)
		originals = append(originals, item{symbol: uint16(next), cost: 1})
	}

	sort.Slice(originals, func(i, j int) bool { return originals[i].cost < originals[j].cost })
	return originals
}

// packageAndMerge pairs adjacent items of list into packages (dropping a
// trailing unpaired item), then merges the package costs with originals,
// preserving ascending order, truncated to maximum entries.
func packageAndMerge(list []item, originals []item, maximum int) []item {
	pairs := len(list) / 2
	packaged := make([]uint32, pairs)
	for i := 0; i < pairs; i++ {
		packaged[i] = list[2*i].cost + list[2*i+1].cost
	}

	merged := make([]item, 0, maximum)
	i, j, k := 0, 0, 0
	for i < maximum && j < pairs && k < len(originals) {
		if packaged[j] < originals[k].cost {
			merged = append(merged, item{cost: packaged[j], merged: true})
			j++
		} else {
			merged = append(merged, item{cost: originals[k].cost, symbol: originals[k].symbol})
			k++
		}
		i++
	}
	for i < maximum && j < pairs {
		merged = append(merged, item{cost: packaged[j], merged: true})
		j++
		i++
	}
	for i < maximum && k < len(originals) {
		merged = append(merged, item{cost: originals[k].cost, symbol: originals[k].symbol})
		k++
		i++
	}
	return merged
}

// interpretN walks the first n entries of items: each package contributes
// two entries to the next list down, each leaf increments its symbol's code
// length by one. It returns 2x the number of packages seen, the count of
// entries the caller should interpret from the next list down.
func interpretN(items []item, n int, lengths []uint8) int {
	merged := 0
	for i := 0; i < n; i++ {
		if items[i].merged {
			merged++
		} else {
			lengths[items[i].symbol]++
		}
	}
	return 2 * merged
}
