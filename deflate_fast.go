// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// deflateFast implements the greedy driver (levels 1-3): it takes the first
// match long enough to pass the search, without looking one position ahead.
// Grounded on the teacher's compress1xFast shape (scan, accept-or-literal,
// bulk-advance-on-match), adapted to DEFLATE's Huffman tallying instead of
// LZO opcode emission.
func (e *Engine) deflateFast(flush, finish bool) (bool, error) {
	advanced := false
	for e.lookahead >= minLookahead || flush {
		if e.lookahead == 0 {
			e.flushHuffmanBlock(finish)
			return false, nil
		}
		advanced = true
		if e.strstart > 2*wSize-minLookahead {
			e.slideWindow()
		}

		hashHead := 0
		if e.lookahead >= minMatch {
			hashHead = e.insertString()
		}

		matched := false
		if hashHead != 0 && e.strategy != HuffmanOnly &&
			e.strstart-hashHead <= maxDist && e.findLongestMatch(hashHead) {
			matched = true
		}

		var full bool
		if matched {
			full = e.huff.tallyDist(e.strstart-e.matchStart, e.matchLen)
			e.tokensEmitted++

			matchLen := e.matchLen
			e.lookahead -= matchLen

			if matchLen <= e.maxLazy && e.lookahead >= minMatch {
				matchLen--
				for matchLen > 0 {
					e.strstart++
					e.insertString()
					matchLen--
				}
				e.strstart++
			} else {
				e.strstart += matchLen
				if e.lookahead >= minMatch {
					e.updateHash()
				}
			}
			e.matchLen = minMatch - 1
		} else {
			full = e.huff.tallyLit(e.window[e.strstart])
			e.tokensEmitted++
			e.strstart++
			e.lookahead--
		}

		if full {
			last := finish && e.lookahead == 0
			e.flushHuffmanBlock(last)
			return !last, nil
		}
	}
	return advanced, nil
}
