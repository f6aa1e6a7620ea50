// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import (
	"bytes"
	"errors"
	"testing"
)

func newTestEngine(t *testing.T, level int, strategy Strategy) (*Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	pending := NewPendingBuffer(&out)
	engine, err := NewEngine(pending, level, strategy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine, &out
}

func TestEngine_NewEngineRejectsBadLevel(t *testing.T) {
	pending := NewPendingBuffer(&bytes.Buffer{})
	if _, err := NewEngine(pending, -1, Default); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument for level -1, got %v", err)
	}
	if _, err := NewEngine(pending, 10, Default); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument for level 10, got %v", err)
	}
}

func TestEngine_SetInputRejectsBadArguments(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	buf := []byte("hello")

	if err := e.SetInput(buf, -1, 1); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument for negative offset, got %v", err)
	}
	if err := e.SetInput(buf, 0, -1); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument for negative count, got %v", err)
	}
	if err := e.SetInput(buf, 3, 10); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument for out-of-range region, got %v", err)
	}
}

func TestEngine_SetInputRejectsUnconsumedPriorInput(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	buf := []byte("hello world")

	if err := e.SetInput(buf, 0, len(buf)); err != nil {
		t.Fatalf("first SetInput failed: %v", err)
	}
	if err := e.SetInput(buf, 0, len(buf)); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for unconsumed input, got %v", err)
	}
}

func TestEngine_NeedsInput(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	if !e.NeedsInput() {
		t.Fatal("freshly constructed engine should need input")
	}

	buf := []byte("abc")
	if err := e.SetInput(buf, 0, len(buf)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if e.NeedsInput() {
		t.Fatal("engine should not need input right after attaching a region")
	}
}

func TestEngine_SetLevelRejectsOutOfRange(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	if err := e.SetLevel(-1); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument, got %v", err)
	}
	if err := e.SetLevel(10); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("expected ErrBadArgument, got %v", err)
	}
}

func TestEngine_ResetClearsCountersAndState(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	buf := bytes.Repeat([]byte("reset me"), 100)

	if err := e.SetInput(buf, 0, len(buf)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if _, err := e.Deflate(true, true); err != nil {
		t.Fatalf("Deflate failed: %v", err)
	}
	if e.Stats().TokensEmitted == 0 {
		t.Fatal("expected nonzero tokens before reset")
	}

	e.Reset()

	stats := e.Stats()
	if stats.TokensEmitted != 0 || stats.BlocksEmitted != 0 {
		t.Fatalf("expected zeroed stats after Reset, got %+v", stats)
	}
	if e.Adler() != 1 {
		t.Fatalf("expected Adler-32 identity value 1 after Reset, got %d", e.Adler())
	}
	if !e.NeedsInput() {
		t.Fatal("expected NeedsInput true after Reset")
	}
}

func TestEngine_ResetAdlerOnly(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	buf := []byte("checksum me")
	if err := e.SetInput(buf, 0, len(buf)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if _, err := e.Deflate(true, true); err != nil {
		t.Fatalf("Deflate failed: %v", err)
	}

	before := e.Stats()
	e.ResetAdler()
	if e.Adler() != 1 {
		t.Fatalf("expected Adler-32 reset to 1, got %d", e.Adler())
	}
	after := e.Stats()
	if before != after {
		t.Fatalf("ResetAdler must not disturb block/token counters: before=%+v after=%+v", before, after)
	}
}

func TestEngine_DeflateTracksAdlerAcrossInput(t *testing.T) {
	e, _ := newTestEngine(t, 6, Default)
	data := []byte("The quick brown fox jumps over the lazy dog")

	if err := e.SetInput(data, 0, len(data)); err != nil {
		t.Fatalf("SetInput failed: %v", err)
	}
	if _, err := e.Deflate(true, true); err != nil {
		t.Fatalf("Deflate failed: %v", err)
	}

	want := adler32Reference(data)
	if e.Adler() != want {
		t.Fatalf("Adler mismatch: got %d want %d", e.Adler(), want)
	}
}

func adler32Reference(p []byte) uint32 {
	const modAdler = 65521
	a, b := uint32(1), uint32(0)
	for _, c := range p {
		a = (a + uint32(c)) % modAdler
		b = (b + a) % modAdler
	}
	return b<<16 | a
}
