// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// fillWindow slides the window if strstart has drifted far enough, then
// copies as much of the attached input as fits, updating the Adler-32
// checksum over exactly the bytes copied. Finally primes the rolling hash
// if enough lookahead now exists to search a match.
func (e *Engine) fillWindow() {
	if e.strstart >= wSize+maxDist {
		e.slideWindow()
	}

	for e.lookahead < minLookahead && e.inputOff < e.inputEnd {
		avail := e.inputEnd - e.inputOff
		room := 2*wSize - e.lookahead - e.strstart
		if room < avail {
			avail = room
		}
		if avail <= 0 {
			break
		}

		src := e.inputBuf[e.inputOff : e.inputOff+avail]
		copy(e.window[e.strstart+e.lookahead:], src)
		e.adler.update(src)

		e.inputOff += avail
		e.totalIn += uint64(avail)
		e.lookahead += avail
	}

	if e.lookahead >= minMatch {
		e.updateHash()
	}
}

// slideWindow copies the upper half of the window down by wSize and rebases
// every position-valued field and hash-chain entry accordingly.
func (e *Engine) slideWindow() {
	copy(e.window[0:wSize], e.window[wSize:2*wSize])

	e.matchStart -= wSize
	e.strstart -= wSize
	e.blockStart -= wSize

	for i := range e.head {
		if e.head[i] >= wSize {
			e.head[i] -= wSize
		} else {
			e.head[i] = 0
		}
	}
	for i := range e.prev {
		if e.prev[i] >= wSize {
			e.prev[i] -= wSize
		} else {
			e.prev[i] = 0
		}
	}
}

// updateHash primes ins_h from the two bytes at strstart, ahead of the first
// insertString call.
func (e *Engine) updateHash() {
	e.insH = (int(e.window[e.strstart]) << hashShift) ^ int(e.window[e.strstart+1])
}

// insertString advances the rolling hash by one byte (the byte at
// strstart+minMatch-1), links strstart into that hash's chain, and returns
// the previous chain head (0 means no predecessor).
func (e *Engine) insertString() int {
	hash := ((e.insH << hashShift) ^ int(e.window[e.strstart+minMatch-1])) & hashMask
	head := e.head[hash]
	e.prev[e.strstart&wMask] = head
	e.head[hash] = int32(e.strstart)
	e.insH = hash
	return int(head)
}
