// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import (
	"math/bits"
	"sort"
)

// RFC 1951 alphabet sizes and the canonical-code length cap (3.2.2: "the
// code length is not stored... at most 15 bits").
const (
	numLitLenSymbols = 286 // 0-255 literal, 256 end-of-block, 257-285 length
	numDistSymbols   = 30
	numCLSymbols     = 19
	maxCodeLen       = 15
	endBlockSymbol   = 256
	firstLengthSym   = 257
)

// clOrder is the transmission order of code-length code lengths, RFC 1951
// §3.2.7: "the code length ordering... this is why the code lengths are
// stored in this particular order".
var clOrder = [numCLSymbols]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// lengthBase/lengthExtra are RFC 1951 §3.2.5's length code table, indexed by
// symbol-257 (0..28).
var lengthBase = [29]int{3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258}
var lengthExtra = [29]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0}

// distBase/distExtra are RFC 1951 §3.2.5's distance code table.
var distBase = [30]int{1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577}
var distExtra = [30]int{0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13}

// fixedLitLenLens/fixedDistLens are the RFC 1951 §3.2.6 fixed Huffman trees.
var fixedLitLenLens [numLitLenSymbols]int
var fixedDistLens [numDistSymbols]int
var fixedLitLenCodes [numLitLenSymbols]uint16
var fixedDistCodes [numDistSymbols]uint16

func init() {
	for i := 0; i <= 143; i++ {
		fixedLitLenLens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		fixedLitLenLens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		fixedLitLenLens[i] = 7
	}
	for i := 280; i <= 287 && i < numLitLenSymbols; i++ {
		fixedLitLenLens[i] = 8
	}
	for i := range fixedDistLens {
		fixedDistLens[i] = 5
	}
	// Codes are assigned over all 288 fixed-table symbols: symbols 286-287
	// never occur but still count toward the 8-bit codes that precede the
	// 9-bit range (144-255).
	var lens288 [288]int
	copy(lens288[:], fixedLitLenLens[:])
	lens288[286], lens288[287] = 8, 8
	copy(fixedLitLenCodes[:], assignCodes(lens288[:]))
	copy(fixedDistCodes[:], assignCodes(fixedDistLens[:]))
}

// lengthSymbol maps a match length (minMatch..maxMatch) to its literal/length
// alphabet symbol (257..285).
func lengthSymbol(length int) int {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= lengthBase[i] {
			return firstLengthSym + i
		}
	}
	return firstLengthSym
}

// distanceCode maps a match distance (1..maxDist) to its distance alphabet
// code (0..29).
func distanceCode(dist int) int {
	for i := len(distBase) - 1; i >= 0; i-- {
		if dist >= distBase[i] {
			return i
		}
	}
	return 0
}

// reverseBits reverses the low n bits of v - RFC 1951 §3.1.1 packs Huffman
// codes most-significant-bit first, the one exception to the otherwise
// LSB-first bitstream, so every code must be bit-reversed before being
// handed to PendingBuffer.writeBits.
func reverseBits(v uint16, n uint) uint16 {
	return bits.Reverse16(v) >> (16 - n)
}

// buildCodeLengths computes a length-limited (<=maxCodeLen) canonical
// Huffman code length for every symbol with freqs[i] > 0, via the
// package-merge (Larmore-Hirschberg) algorithm: the standard technique for
// bounding code length without the ad-hoc overflow correction a plain
// optimal-tree construction would otherwise need.
func buildCodeLengths(freqs []int) []int {
	n := len(freqs)
	lengths := make([]int, n)

	type origSym struct {
		freq int
		sym  int
	}
	syms := make([]origSym, 0, n)
	for i, f := range freqs {
		if f > 0 {
			syms = append(syms, origSym{f, i})
		}
	}
	if len(syms) == 0 {
		return lengths
	}
	if len(syms) == 1 {
		lengths[syms[0].sym] = 1
		return lengths
	}

	sort.Slice(syms, func(i, j int) bool { return syms[i].freq < syms[j].freq })
	m := len(syms)

	type pkg struct {
		weight int
		counts []int16 // counts[i] = how many times sorted-symbol i occurs in this package
	}

	leaves := make([]pkg, m)
	for i, s := range syms {
		c := make([]int16, m)
		c[i] = 1
		leaves[i] = pkg{weight: s.freq, counts: c}
	}

	addCounts := func(a, b []int16) []int16 {
		out := make([]int16, m)
		for i := range out {
			out[i] = a[i] + b[i]
		}
		return out
	}

	mergeSorted := func(a, b []pkg) []pkg {
		out := make([]pkg, 0, len(a)+len(b))
		i, j := 0, 0
		for i < len(a) && j < len(b) {
			if a[i].weight <= b[j].weight {
				out = append(out, a[i])
				i++
			} else {
				out = append(out, b[j])
				j++
			}
		}
		out = append(out, a[i:]...)
		out = append(out, b[j:]...)
		return out
	}

	level := append([]pkg(nil), leaves...)
	for d := 2; d <= maxCodeLen; d++ {
		packed := make([]pkg, 0, len(level)/2)
		for i := 0; i+1 < len(level); i += 2 {
			packed = append(packed, pkg{
				weight: level[i].weight + level[i+1].weight,
				counts: addCounts(level[i].counts, level[i+1].counts),
			})
		}
		level = mergeSorted(leaves, packed)
	}

	take := 2*m - 2
	if take > len(level) {
		take = len(level)
	}
	tally := make([]int, m)
	for i := 0; i < take; i++ {
		c := level[i].counts
		for s := range tally {
			tally[s] += int(c[s])
		}
	}
	for i, s := range syms {
		lengths[s.sym] = tally[i]
	}
	return lengths
}

// assignCodes assigns canonical Huffman codes (MSB-first numeric value,
// reversed at write time) given per-symbol code lengths, per RFC 1951
// §3.2.2's algorithm.
func assignCodes(lengths []int) []uint16 {
	var blCount [maxCodeLen + 1]int
	maxLen := 0
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
			if l > maxLen {
				maxLen = l
			}
		}
	}

	var nextCode [maxCodeLen + 1]int
	code := 0
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	codes := make([]uint16, len(lengths))
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		codes[sym] = uint16(nextCode[l])
		nextCode[l]++
	}
	return codes
}

// rleEncode run-length-encodes a sequence of code lengths using symbols
// 0-18 of the code-length alphabet, per RFC 1951 §3.2.7.
func rleEncode(lens []int) (syms []int, extras []int) {
	n := len(lens)
	i := 0
	for i < n {
		curLen := lens[i]
		runStart := i
		for i < n && lens[i] == curLen {
			i++
		}
		count := i - runStart

		if curLen == 0 {
			for count > 0 {
				if count < 3 {
					syms = append(syms, 0)
					extras = append(extras, 0)
					count--
					continue
				}
				rep := count
				if rep > 138 {
					rep = 138
				}
				if rep >= 11 {
					syms = append(syms, 18)
					extras = append(extras, rep-11)
				} else {
					if rep > 10 {
						rep = 10
					}
					syms = append(syms, 17)
					extras = append(extras, rep-3)
				}
				count -= rep
			}
			continue
		}

		syms = append(syms, curLen)
		extras = append(extras, 0)
		count--
		for count > 0 {
			if count < 3 {
				syms = append(syms, curLen)
				extras = append(extras, 0)
				count--
				continue
			}
			rep := count
			if rep > 6 {
				rep = 6
			}
			syms = append(syms, 16)
			extras = append(extras, rep-3)
			count -= rep
		}
	}
	return
}
