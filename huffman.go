// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// maxFlateBlockTokens bounds how many literal/match tokens accumulate in one
// block before the engine must flush, matching the reference implementation's
// block-building memory cap (spec.md §4.8).
const maxFlateBlockTokens = 1 << 14

// token is one literal or one length-distance pair awaiting entropy coding.
type token struct {
	isMatch bool
	lit     byte
	length  int
	dist    int
}

// huffmanCoder is the "external collaborator" spec.md §2/§4.8 describes:
// it tallies literal/match tokens and, on flush, emits a complete RFC 1951
// block (fixed, dynamic, or stored) to a PendingBuffer.
type huffmanCoder struct {
	pending *PendingBuffer

	tokens       []token
	litLenFreq   [numLitLenSymbols]int
	distFreq     [numDistSymbols]int
	extraBitsSum int
}

func newHuffmanCoder(p *PendingBuffer) *huffmanCoder {
	h := &huffmanCoder{pending: p}
	h.reset()
	return h
}

// tallyLit records a literal byte. Returns true once the block token budget
// is reached (spec.md's is_full).
func (h *huffmanCoder) tallyLit(b byte) bool {
	h.tokens = append(h.tokens, token{lit: b})
	h.litLenFreq[b]++
	return h.isFull()
}

// tallyDist records a length-distance match. Returns true once the block
// token budget is reached.
func (h *huffmanCoder) tallyDist(dist, length int) bool {
	h.tokens = append(h.tokens, token{isMatch: true, length: length, dist: dist})

	ls := lengthSymbol(length)
	h.litLenFreq[ls]++
	h.extraBitsSum += lengthExtra[ls-firstLengthSym]

	dc := distanceCode(dist)
	h.distFreq[dc]++
	h.extraBitsSum += distExtra[dc]

	return h.isFull()
}

func (h *huffmanCoder) isFull() bool {
	return len(h.tokens) >= maxFlateBlockTokens
}

// reset clears accumulated tokens and frequency tables between blocks.
func (h *huffmanCoder) reset() {
	h.tokens = h.tokens[:0]
	for i := range h.litLenFreq {
		h.litLenFreq[i] = 0
	}
	for i := range h.distFreq {
		h.distFreq[i] = 0
	}
	h.extraBitsSum = 0
}

// writeHuffCode writes one canonical Huffman code, reversing its bits since
// RFC 1951 packs Huffman codes MSB-first.
func (h *huffmanCoder) writeHuffCode(code uint16, length int) {
	if length == 0 {
		return
	}
	h.pending.writeBits(uint32(reverseBits(code, uint(length))), uint(length))
}

// flushBlock emits the accumulated tokens as one complete RFC 1951 block,
// choosing whichever of stored/fixed/dynamic encoding is estimated
// cheapest, then resets for the next block. window[start:start+length] must
// be the exact raw bytes the tokens were derived from (needed only for the
// stored-block fallback).
func (h *huffmanCoder) flushBlock(window []byte, start, length int, last bool) {
	h.litLenFreq[endBlockSymbol]++

	litLenLens := buildCodeLengths(h.litLenFreq[:])
	distFreqForLengths := h.distFreq
	if allZero(distFreqForLengths[:]) {
		// RFC 1951 §3.2.7: a tree with no real symbols still needs a
		// syntactically valid single-code encoding.
		distFreqForLengths[0] = 1
	}
	distLens := buildCodeLengths(distFreqForLengths[:])

	dynamicBits, hlit, hdist, clLens, clCodes, rleSyms, rleExtras := h.estimateDynamic(litLenLens, distLens)
	fixedBits := h.estimateFixed()
	storedBits := 8*8 + length*8 // generous header estimate + payload

	switch {
	case storedBits <= fixedBits && storedBits <= dynamicBits:
		h.flushStoredBlock(window, start, length, last)
		return
	case fixedBits <= dynamicBits:
		h.writeBlockHeader(last, 1)
		h.emitTokens(fixedLitLenLens[:], fixedLitLenCodes[:], fixedDistLens[:], fixedDistCodes[:])
	default:
		h.writeBlockHeader(last, 2)
		h.writeDynamicHeader(hlit, hdist, clLens, clCodes, rleSyms, rleExtras)
		litCodes := assignCodes(litLenLens)
		distCodes := assignCodes(distLens)
		h.emitTokens(litLenLens, litCodes, distLens, distCodes)
	}

	if last {
		// The final block's trailing bits (including its end-of-block code)
		// would otherwise sit unflushed in the bit buffer forever; nothing
		// after this call will ever pack more bits to complete the byte.
		h.pending.alignByte()
	}

	h.reset()
}

func allZero(freqs []int) bool {
	for _, f := range freqs {
		if f != 0 {
			return false
		}
	}
	return true
}

// writeBlockHeader writes BFINAL then BTYPE (0=stored,1=fixed,2=dynamic).
func (h *huffmanCoder) writeBlockHeader(last bool, btype uint32) {
	final := uint32(0)
	if last {
		final = 1
	}
	h.pending.writeBits(final, 1)
	h.pending.writeBits(btype, 2)
}

func (h *huffmanCoder) emitTokens(litLenLens []int, litLenCodes []uint16, distLens []int, distCodes []uint16) {
	for _, t := range h.tokens {
		if !t.isMatch {
			h.writeHuffCode(litLenCodes[t.lit], litLenLens[t.lit])
			continue
		}
		ls := lengthSymbol(t.length)
		h.writeHuffCode(litLenCodes[ls], litLenLens[ls])
		extraN := lengthExtra[ls-firstLengthSym]
		if extraN > 0 {
			h.pending.writeBits(uint32(t.length-lengthBase[ls-firstLengthSym]), uint(extraN))
		}

		dc := distanceCode(t.dist)
		h.writeHuffCode(distCodes[dc], distLens[dc])
		extraN = distExtra[dc]
		if extraN > 0 {
			h.pending.writeBits(uint32(t.dist-distBase[dc]), uint(extraN))
		}
	}
	h.writeHuffCode(litLenCodes[endBlockSymbol], litLenLens[endBlockSymbol])
}

// estimateFixed returns the bit cost of encoding the current tokens with
// the RFC 1951 §3.2.6 fixed Huffman trees.
func (h *huffmanCoder) estimateFixed() int {
	total := h.extraBitsSum
	for sym, f := range h.litLenFreq {
		total += f * fixedLitLenLens[sym]
	}
	for sym, f := range h.distFreq {
		total += f * fixedDistLens[sym]
	}
	return total
}

// estimateDynamic returns the bit cost of a dynamic block and everything
// needed to actually emit its header (trimmed HLIT/HDIST, code-length
// code lengths/codes, and the run-length-encoded symbol stream).
func (h *huffmanCoder) estimateDynamic(litLenLens, distLens []int) (bits, hlit, hdist int, clLens []int, clCodes []uint16, rleSyms, rleExtras []int) {
	numLitLen := numLitLenSymbols
	for numLitLen > firstLengthSym && litLenLens[numLitLen-1] == 0 {
		numLitLen--
	}
	numDist := numDistSymbols
	for numDist > 1 && distLens[numDist-1] == 0 {
		numDist--
	}

	combined := make([]int, 0, numLitLen+numDist)
	combined = append(combined, litLenLens[:numLitLen]...)
	combined = append(combined, distLens[:numDist]...)

	rleSyms, rleExtras = rleEncode(combined)

	var clFreq [numCLSymbols]int
	for _, s := range rleSyms {
		clFreq[s]++
	}
	clLens = buildCodeLengths(clFreq[:])
	clCodes = assignCodes(clLens)

	permLens := make([]int, numCLSymbols)
	for i, sym := range clOrder {
		permLens[i] = clLens[sym]
	}
	hclen := numCLSymbols
	for hclen > 4 && permLens[hclen-1] == 0 {
		hclen--
	}

	headerBits := 5 + 5 + 4 + 3*hclen
	for i, s := range rleSyms {
		headerBits += clLens[s]
		switch s {
		case 16:
			headerBits += 2
		case 17:
			headerBits += 3
		case 18:
			headerBits += 7
		}
		_ = i
	}

	tokenBits := h.extraBitsSum
	for sym, f := range h.litLenFreq {
		tokenBits += f * litLenLens[sym]
	}
	for sym, f := range h.distFreq {
		tokenBits += f * distLens[sym]
	}

	hlit = numLitLen - firstLengthSym
	hdist = numDist - 1
	bits = headerBits + tokenBits
	return bits, hlit, hdist, permLens[:hclen], clCodes, rleSyms, rleExtras
}

func (h *huffmanCoder) writeDynamicHeader(hlit, hdist int, clLens []int, clCodes []uint16, rleSyms, rleExtras []int) {
	h.pending.writeBits(uint32(hlit), 5)
	h.pending.writeBits(uint32(hdist), 5)
	h.pending.writeBits(uint32(len(clLens)-4), 4)
	for _, l := range clLens {
		h.pending.writeBits(uint32(l), 3)
	}

	// clLens is truncated to HCLEN transmission order; rebuild the
	// full per-symbol length table (indexed by CL symbol, not position)
	// since rleSyms below reference symbols that may fall past HCLEN.
	fullClLens := make([]int, numCLSymbols)
	for i, sym := range clOrder {
		if i < len(clLens) {
			fullClLens[sym] = clLens[i]
		}
	}

	for i, s := range rleSyms {
		h.writeHuffCode(clCodes[s], fullClLens[s])
		switch s {
		case 16:
			h.pending.writeBits(uint32(rleExtras[i]), 2)
		case 17:
			h.pending.writeBits(uint32(rleExtras[i]), 3)
		case 18:
			h.pending.writeBits(uint32(rleExtras[i]), 7)
		}
	}
}

// flushStoredBlock writes an uncompressed RFC 1951 §3.2.4 block: BFINAL+BTYPE,
// byte alignment, LEN, NLEN (ones complement of LEN), then the raw bytes.
func (h *huffmanCoder) flushStoredBlock(window []byte, start, length int, last bool) {
	h.writeBlockHeader(last, 0)
	h.pending.alignByte()

	lenLo := byte(length)
	lenHi := byte(length >> 8)
	h.pending.writeBytes([]byte{lenLo, lenHi, ^lenLo, ^lenHi})
	h.pending.writeBytes(window[start : start+length])

	h.reset()
}
