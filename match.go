// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// findLongestMatch walks the hash chain starting at curMatch looking for the
// longest run matching window[strstart:], bounded by maxChain probes and by
// the maximum backward distance. It mirrors the teacher's chained-hash
// searchBestMatch, adapted to DEFLATE's good/nice-length early exits instead
// of LZO's offset-class bookkeeping.
//
// On return, e.matchStart holds the window index of the best candidate (if
// any) and e.matchLen holds min(bestLen, lookahead). The bool result is
// whether that length reaches minMatch.
func (e *Engine) findLongestMatch(curMatch int) bool {
	chainLength := e.maxChain
	niceLength := e.niceLength
	if niceLength > e.lookahead {
		niceLength = e.lookahead
	}

	limit := e.strstart - maxDist
	if limit < 0 {
		limit = 0
	}

	window := e.window
	strstart := e.strstart
	bestLen := e.matchLen
	if bestLen < 0 {
		bestLen = 0
	}
	scanEnd := strstart + maxMatch
	if scanEnd > len(window) {
		scanEnd = len(window)
	}

	match := curMatch
	for match > limit && match != 0 {
		// Fast reject: the byte one past the current best, and the last byte
		// of the current best, before paying for a full extend.
		if bestLen > 0 {
			if window[match+bestLen] != window[strstart+bestLen] ||
				window[match+bestLen-1] != window[strstart+bestLen-1] {
				match = int(e.prev[match&wMask])
				chainLength--
				if chainLength <= 0 {
					break
				}
				continue
			}
		}
		if window[match] != window[strstart] || window[match+1] != window[strstart+1] {
			match = int(e.prev[match&wMask])
			chainLength--
			if chainLength <= 0 {
				break
			}
			continue
		}

		length := 2
		for strstart+length < scanEnd && window[match+length] == window[strstart+length] {
			length++
		}

		if length > bestLen {
			e.matchStart = match
			bestLen = length
			if bestLen >= niceLength {
				break
			}
			if bestLen > e.goodLength {
				chainLength >>= 2
			}
		}

		match = int(e.prev[match&wMask])
		chainLength--
		if chainLength <= 0 {
			break
		}
	}

	if bestLen > e.lookahead {
		bestLen = e.lookahead
	}
	e.matchLen = bestLen
	return bestLen >= minMatch
}
