// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// Engine is the low-level DEFLATE block-producing state machine: it consumes
// an uncompressed byte stream via SetInput and emits RFC 1951 blocks to the
// pending buffer supplied at construction. It owns the sliding window, the
// hash chain tables, and the match-search/driver state; the Huffman coder,
// pending buffer, and Adler-32 checksum are composed collaborators.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	scratch *engineScratch
	window  []byte  // 2*wSize; valid bytes are [0, strstart+lookahead)
	head    []int32 // hashSize; head[h] = most recent window index with hash h (0 = empty)
	prev    []int32 // wSize; prev[i&wMask] = previous window index sharing a hash

	insH          int
	strstart      int
	lookahead     int
	blockStart    int
	matchStart    int
	matchLen      int
	prevAvailable bool
	prevMatch     int
	prevLen       int

	strategy Strategy
	level    int
	function compressionFunction

	goodLength int
	maxLazy    int
	niceLength int
	maxChain   int

	inputBuf []byte
	inputOff int
	inputEnd int
	totalIn  uint64

	pending *PendingBuffer
	huff    *huffmanCoder
	adler   *adlerChecksum

	blocksEmitted uint64
	tokensEmitted uint64

	closed bool
}

// Stats reports running counters useful for observability: how many DEFLATE
// blocks and how many literal/match tokens this Engine has emitted since the
// last reset.
type Stats struct {
	BlocksEmitted uint64
	TokensEmitted uint64
	TotalIn       uint64
}

// NewEngine constructs an Engine writing to w, at the given level and
// strategy. It acquires its window/hash scratch space from a shared pool;
// callers should call Close when done to return it.
func NewEngine(w *PendingBuffer, level int, strategy Strategy) (*Engine, error) {
	params, err := levelParamsFor(level)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pending:  w,
		adler:    newAdlerChecksum(),
		strategy: strategy,
		level:    level,
	}
	e.huff = newHuffmanCoder(w)
	e.applyLevelParams(params)

	e.scratch = acquireEngineScratch()
	e.window = e.scratch.window
	e.head = e.scratch.head
	e.prev = e.scratch.prev

	e.blockStart = windowStart
	e.strstart = windowStart
	e.matchLen = minMatch - 1

	return e, nil
}

func (e *Engine) applyLevelParams(p levelParams) {
	e.goodLength = p.goodLength
	e.maxLazy = p.maxLazy
	e.niceLength = p.niceLength
	e.maxChain = p.maxChain
	e.function = p.function
}

// Close hands any bytes still queued in the pending buffer to its writer and
// returns the Engine's scratch arrays to the shared pool. A write error is
// not reported here. The Engine must not be used afterward.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.pending.flush()
	releaseEngineScratch(e.scratch)
	e.scratch = nil
	e.window = nil
	e.head = nil
	e.prev = nil
	e.closed = true
}

// SetInput attaches an input region the engine will copy into its window as
// room becomes available. It is an error to call this while a previously
// attached region is not yet fully consumed.
func (e *Engine) SetInput(buf []byte, offset, count int) error {
	if offset < 0 || count < 0 {
		return ErrBadArgument
	}
	end := offset + count
	if end < offset || end > len(buf) {
		return ErrBadArgument
	}
	if e.inputOff < e.inputEnd {
		return ErrInvalidState
	}

	e.inputBuf = buf
	e.inputOff = offset
	e.inputEnd = end
	return nil
}

// NeedsInput reports whether the previously attached input region has been
// fully consumed.
func (e *Engine) NeedsInput() bool {
	return e.inputOff == e.inputEnd
}

// SetLevel validates level and updates the tunables. If the resulting driver
// changes, it performs the mode transition spec.md §4.1 describes, possibly
// emitting a block as a side effect.
func (e *Engine) SetLevel(level int) error {
	params, err := levelParamsFor(level)
	if err != nil {
		return err
	}

	oldFunction := e.function
	e.level = level
	e.applyLevelParams(params)

	if params.function == oldFunction {
		return nil
	}

	switch oldFunction {
	case cfStored:
		if e.strstart > e.blockStart {
			e.flushStoredBoundary(false)
			e.updateHash()
		}
	case cfFast:
		if e.strstart > e.blockStart {
			e.flushHuffmanBlock(false)
		}
	case cfSlow:
		if e.prevAvailable {
			e.huff.tallyLit(e.window[e.strstart-1])
			e.tokensEmitted++
		}
		if e.strstart > e.blockStart {
			e.flushHuffmanBlock(false)
		}
		e.prevAvailable = false
		e.matchLen = minMatch - 1
	default:
		return ErrInternalInvariant
	}

	e.function = params.function
	return nil
}

// SetStrategy stores s; it takes effect on subsequent match-acceptance
// decisions.
func (e *Engine) SetStrategy(s Strategy) {
	e.strategy = s
}

// Reset clears the Huffman coder and Adler checksum, zeroes the hash tables,
// and returns the window cursor to its initial position. Allocated buffers
// are reused, not reallocated.
func (e *Engine) Reset() {
	e.huff.reset()
	e.adler.reset()
	for i := range e.head {
		e.head[i] = 0
	}
	for i := range e.prev {
		e.prev[i] = 0
	}
	e.blockStart = windowStart
	e.strstart = windowStart
	e.lookahead = 0
	e.totalIn = 0
	e.prevAvailable = false
	e.matchLen = minMatch - 1
	e.insH = 0
	e.inputBuf = nil
	e.inputOff = 0
	e.inputEnd = 0
	e.blocksEmitted = 0
	e.tokensEmitted = 0
}

// ResetAdler resets only the running Adler-32 checksum.
func (e *Engine) ResetAdler() {
	e.adler.reset()
}

// Adler returns the current Adler-32 value of all bytes admitted so far via
// fillWindow.
func (e *Engine) Adler() uint32 {
	return e.adler.value()
}

// Stats returns the running block/token counters.
func (e *Engine) Stats() Stats {
	return Stats{BlocksEmitted: e.blocksEmitted, TokensEmitted: e.tokensEmitted, TotalIn: e.totalIn}
}

// Deflate drives window filling and token production until a driver step
// reports no progress (tokens emitted or window advanced). It returns the
// progress flag of that last step, so a call that ends without an error
// returns false. When finish is true, the final emitted block carries the
// last-block bit once lookahead fully drains.
func (e *Engine) Deflate(flush, finish bool) (bool, error) {
	var progress bool
	for {
		e.fillWindow()
		canFlush := flush && e.inputOff == e.inputEnd

		var madeProgress bool
		var err error
		switch e.function {
		case cfStored:
			madeProgress, err = e.deflateStored(canFlush, finish)
		case cfFast:
			madeProgress, err = e.deflateFast(canFlush, finish)
		case cfSlow:
			madeProgress, err = e.deflateSlow(canFlush, finish)
		default:
			return false, ErrInternalInvariant
		}
		if err != nil {
			return false, err
		}

		progress = madeProgress
		// The pending buffer writes straight through to an io.Writer instead
		// of a bounded caller-drained buffer, so it never applies backpressure
		// here; the loop is driven purely by driver progress (see DESIGN.md).
		if !madeProgress {
			break
		}
	}
	return progress, nil
}

// flushHuffmanBlock flushes the accumulated tokens as one Huffman block
// covering window[blockStart:strstart], advancing blockStart to strstart.
func (e *Engine) flushHuffmanBlock(last bool) {
	length := e.strstart - e.blockStart
	e.huff.flushBlock(e.window, e.blockStart, length, last)
	e.blockStart = e.strstart
	e.blocksEmitted++
}

// flushStoredBoundary flushes window[blockStart:strstart] as a stored block
// (used by the Stored→{Fast,Slow} mode transition in SetLevel).
func (e *Engine) flushStoredBoundary(last bool) {
	length := e.strstart - e.blockStart
	e.huff.flushStoredBlock(e.window, e.blockStart, length, last)
	e.blockStart = e.strstart
	e.blocksEmitted++
}
