// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// Window, hash and match bounds. Names follow spec.md's DATA MODEL section;
// values are the classic zlib/deflate constants this engine reproduces
// bit-for-bit.
const (
	wSize        = 1 << 15 // W: sliding window size
	wMask        = wSize - 1
	minMatch     = 3
	maxMatch     = 258
	minLookahead = maxMatch + minMatch + 1 // 262
	maxDist      = wSize - minLookahead    // 32506

	hashBits = 15
	hashSize = 1 << hashBits
	hashMask = hashSize - 1
	// hashShift advances the rolling 3-byte hash by one byte per insertString call.
	hashShift = (hashBits + minMatch - 1) / minMatch // 5

	tooFar = 4096

	// maxBlockSize bounds a single emitted stored block. The pending buffer
	// writes through to its io.Writer and has no fixed capacity, so no
	// second bound applies.
	maxBlockSize = 65535
)

// strstart begins at this index, never 0, so that head/prev's zero value can
// unambiguously mean "no predecessor" (spec.md invariant 6).
const windowStart = 1
