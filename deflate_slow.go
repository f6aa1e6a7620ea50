// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// deflateSlow implements the lazy driver (levels 4-9): emission of a match
// found at strstart is deferred by one position so a longer match starting
// at strstart+1 can preempt it. Grounded on the teacher's compress9x lazy
// driver (save previous candidate, decide on the next step), adapted to
// DEFLATE's single-pending-literal bookkeeping instead of LZO's run/match
// opcode emission.
func (e *Engine) deflateSlow(flush, finish bool) (bool, error) {
	advanced := false
	for e.lookahead >= minLookahead || flush {
		if e.lookahead == 0 {
			if e.prevAvailable {
				e.huff.tallyLit(e.window[e.strstart-1])
				e.tokensEmitted++
				e.prevAvailable = false
			}
			e.flushHuffmanBlock(finish)
			return false, nil
		}
		advanced = true
		if e.strstart > 2*wSize-minLookahead {
			e.slideWindow()
		}

		e.prevMatch = e.matchStart
		e.prevLen = e.matchLen

		hashHead := 0
		if e.lookahead >= minMatch {
			hashHead = e.insertString()
		}

		if e.strategy != HuffmanOnly && hashHead != 0 &&
			e.strstart-hashHead <= maxDist && e.findLongestMatch(hashHead) {
			if e.matchLen <= 5 &&
				(e.strategy == Filtered ||
					(e.matchLen == minMatch && e.strstart-e.matchStart > tooFar)) {
				e.matchLen = minMatch - 1
			}
		}

		if e.prevLen >= minMatch && e.matchLen <= e.prevLen {
			full := e.huff.tallyDist(e.strstart-1-e.prevMatch, e.prevLen)
			e.tokensEmitted++

			// The match covers prevLen bytes starting at strstart-1; one of
			// those bytes was already accounted for when prevAvailable was
			// set on the prior iteration, so strstart only needs to catch up
			// by prevLen-1 to reach the first byte after the match. That last
			// position is not inserted here: the next iteration inserts it.
			advance := e.prevLen - 1
			for i := 0; i < advance; i++ {
				e.strstart++
				e.lookahead--
				if i < advance-1 && e.lookahead >= minMatch {
					e.insertString()
				}
			}
			e.prevAvailable = false
			e.matchLen = minMatch - 1

			if full {
				last := finish && e.lookahead == 0 && !e.prevAvailable
				e.flushHuffmanBlockSlow(last)
				return !last, nil
			}
			continue
		}

		if e.prevAvailable {
			full := e.huff.tallyLit(e.window[e.strstart-1])
			e.tokensEmitted++
			if full {
				e.prevAvailable = true
				e.strstart++
				e.lookahead--
				e.flushHuffmanBlockSlow(false)
				return true, nil
			}
		}
		e.prevAvailable = true
		e.strstart++
		e.lookahead--
	}

	if e.lookahead == 0 {
		if e.prevAvailable {
			e.huff.tallyLit(e.window[e.strstart-1])
			e.tokensEmitted++
			e.prevAvailable = false
		}
		e.flushHuffmanBlock(finish)
		return false, nil
	}
	return advanced, nil
}

// flushHuffmanBlockSlow flushes window[blockStart:strstart], excluding the
// pending literal at strstart-1 when prevAvailable is true (spec.md §4.6's
// "block length is strstart-block_start minus 1 if prev_available").
func (e *Engine) flushHuffmanBlockSlow(last bool) {
	length := e.strstart - e.blockStart
	if e.prevAvailable {
		length--
	}
	e.huff.flushBlock(e.window, e.blockStart, length, last)
	e.blockStart += length
	e.blocksEmitted++
}
