// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import (
	"bytes"
	"testing"
)

func TestWindow_UpdateHashAndInsertString(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)

	data := []byte("abcabcabc")
	if err := e.SetInput(data, 0, len(data)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	e.fillWindow()

	if e.lookahead < minMatch {
		t.Fatalf("expected enough lookahead to hash, got %d", e.lookahead)
	}

	head := e.insertString()
	if head != 0 {
		t.Fatalf("expected no predecessor for the first insert, got %d", head)
	}

	e.strstart++
	e.lookahead--
	e.updateHash()
	e.insertString()
	e.strstart++
	e.lookahead--
	e.updateHash()

	// "abc" repeats starting at strstart=1; inserting again at strstart=4
	// (pos of the next "abc") should chain back to position 1.
	e.strstart = windowStart + 3
	e.updateHash()
	head = e.insertString()
	if head != windowStart {
		t.Fatalf("expected hash chain to point back to %d, got %d", windowStart, head)
	}
}

func TestWindow_SlideWindowRebasesPositions(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)

	e.strstart = wSize + 100
	e.matchStart = wSize + 10
	e.blockStart = wSize + 5
	e.head[42] = int32(wSize + 7)
	e.head[43] = 5 // below wSize, must become 0 after slide
	e.prev[1] = int32(wSize + 20)

	copy(e.window[wSize:wSize+4], []byte("abcd"))

	e.slideWindow()

	if e.strstart != 100 {
		t.Fatalf("strstart not rebased: got %d", e.strstart)
	}
	if e.matchStart != 10 {
		t.Fatalf("matchStart not rebased: got %d", e.matchStart)
	}
	if e.blockStart != 5 {
		t.Fatalf("blockStart not rebased: got %d", e.blockStart)
	}
	if e.head[42] != 7 {
		t.Fatalf("head entry not rebased: got %d", e.head[42])
	}
	if e.head[43] != 0 {
		t.Fatalf("head entry below wSize should be invalidated, got %d", e.head[43])
	}
	if e.prev[1] != 20 {
		t.Fatalf("prev entry not rebased: got %d", e.prev[1])
	}
	if !bytes.Equal(e.window[0:4], []byte("abcd")) {
		t.Fatalf("slide did not preserve the upper-half suffix: got %q", e.window[0:4])
	}
}

func TestWindow_FillWindowUpdatesAdlerOverCopiedBytesOnly(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	data := []byte("window fill test data")

	if err := e.SetInput(data, 0, len(data)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	e.fillWindow()

	if e.Adler() != adler32Reference(data) {
		t.Fatalf("Adler mismatch after fillWindow: got %d want %d", e.Adler(), adler32Reference(data))
	}
	if e.lookahead != len(data) {
		t.Fatalf("expected lookahead to equal input length, got %d", e.lookahead)
	}
}
