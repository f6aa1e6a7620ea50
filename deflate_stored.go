// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// deflateStored implements level 0: it never searches for matches, only
// absorbing lookahead into stored (uncompressed) blocks.
func (e *Engine) deflateStored(flush, finish bool) (bool, error) {
	consumed := e.lookahead > 0

	e.strstart += e.lookahead
	e.lookahead = 0

	storedLength := e.strstart - e.blockStart
	// boundaryForced is the proactive flush zlib's deflate_stored also
	// performs near the edge of the window, independent of caller-requested
	// flush/finish: it must never carry the final-block marker, even when
	// finish is true, so a genuine zero-length final block still follows
	// once lookahead truly drains (block-then-final-marker, not a single
	// block that happens to swallow BFINAL early).
	boundaryForced := e.blockStart < wSize && storedLength >= maxDist
	mustFlush := storedLength >= maxBlockSize || boundaryForced || flush

	if !mustFlush {
		return consumed, nil
	}

	length := storedLength
	last := finish && !boundaryForced
	if length > maxBlockSize {
		length = maxBlockSize
		last = false
	}

	e.huff.flushStoredBlock(e.window, e.blockStart, length, last)
	e.blockStart += length
	e.blocksEmitted++

	// An empty non-final block means there is nothing left to emit until
	// more input arrives, so it reports no progress.
	return !last && length > 0, nil
}
