// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import (
	"bytes"
	"errors"
	"testing"
)

func TestAPIContract_CloseIsIdempotent(t *testing.T) {
	pending := NewPendingBuffer(&bytes.Buffer{})
	engine, err := NewEngine(pending, 6, Default)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	engine.Close()
	engine.Close() // must not panic on double Close
}

func TestAPIContract_BoundaryLevelsAreAccepted(t *testing.T) {
	for _, level := range []int{0, 9} {
		pending := NewPendingBuffer(&bytes.Buffer{})
		engine, err := NewEngine(pending, level, Default)
		if err != nil {
			t.Fatalf("level %d rejected: %v", level, err)
		}
		engine.Close()
	}
}

func TestAPIContract_SentinelErrorsSupportErrorsIs(t *testing.T) {
	pending := NewPendingBuffer(&bytes.Buffer{})
	_, err := NewEngine(pending, 42, Default)
	if err == nil {
		t.Fatal("expected an error for an out-of-range level")
	}
	if !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected errors.Is(err, ErrBadArgument), got %v", err)
	}
	// Wrapping must still satisfy errors.Is, the contract callers rely on.
	wrapped := errors.Join(err, errors.New("context"))
	if !errors.Is(wrapped, ErrBadArgument) {
		t.Fatal("expected wrapped error to still satisfy errors.Is(ErrBadArgument)")
	}
}

func TestAPIContract_NeedsInputReflectsConsumption(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)

	data := bytes.Repeat([]byte("contract check "), 500)
	if err := e.SetInput(data, 0, len(data)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if e.NeedsInput() {
		t.Fatal("NeedsInput must be false immediately after attaching unconsumed input")
	}

	if _, err := e.Deflate(true, true); err != nil {
		t.Fatalf("Deflate failed: %v", err)
	}
	if !e.NeedsInput() {
		t.Fatal("NeedsInput must be true once a finishing Deflate call drains the region")
	}
}

func TestAPIContract_MidStreamStrategyChangeStillRoundTrips(t *testing.T) {
	var out bytes.Buffer
	pending := NewPendingBuffer(&out)
	engine, err := NewEngine(pending, 6, Default)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	defer engine.Close()

	first := bytes.Repeat([]byte("strategy change payload"), 200)
	if err := engine.SetInput(first, 0, len(first)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if _, err := engine.Deflate(true, false); err != nil {
		t.Fatalf("Deflate failed: %v", err)
	}

	engine.SetStrategy(HuffmanOnly)

	second := bytes.Repeat([]byte("more payload after switch"), 200)
	if err := engine.SetInput(second, 0, len(second)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if _, err := engine.Deflate(true, true); err != nil {
		t.Fatalf("final Deflate failed: %v", err)
	}
	if err := pending.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	decoded := inflate(t, out.Bytes())
	want := append(append([]byte{}, first...), second...)
	if !bytes.Equal(decoded, want) {
		t.Fatal("round-trip mismatch across mid-stream strategy change")
	}
}

// TestSlowDriver_PendingLiteralCarriesAcrossFlush exercises spec.md §9's
// second Open Question directly: a flush requested while the Slow driver
// still holds a deferred ("pending available") literal must emit that
// literal exactly once, as the last token of the flushed block, rather than
// dropping it or emitting it again when more input follows.
func TestSlowDriver_PendingLiteralCarriesAcrossFlush(t *testing.T) {
	var out bytes.Buffer
	pending := NewPendingBuffer(&out)
	engine, err := NewEngine(pending, 6, Default)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	defer engine.Close()

	// An odd-length, weakly-repetitive input biases the lazy matcher toward
	// ending a Deflate(true, false) call with prevAvailable still true.
	data := []byte("abcabcabcabdeabcabcabcX")

	if err := engine.SetInput(data, 0, len(data)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if _, err := engine.Deflate(true, false); err != nil {
		t.Fatalf("Deflate (flush, not finish) failed: %v", err)
	}

	tail := []byte("more-bytes-after-the-flush-boundary")
	if err := engine.SetInput(tail, 0, len(tail)); err != nil {
		t.Fatalf("SetInput for tail failed: %v", err)
	}
	if _, err := engine.Deflate(true, true); err != nil {
		t.Fatalf("final Deflate failed: %v", err)
	}
	if err := pending.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	decoded := inflate(t, out.Bytes())
	want := append(append([]byte{}, data...), tail...)
	if !bytes.Equal(decoded, want) {
		t.Fatal("pending literal across a mid-stream flush was dropped or duplicated")
	}
}
