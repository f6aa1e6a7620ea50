// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

/*
Package deflate implements the low-level, block-producing half of a DEFLATE
(RFC 1951) compression engine: the LZ77 sliding-window match search plus
canonical Huffman entropy coding, without an inflater. It is built around an
Engine that owns a 64 KiB sliding window, chained hash tables, and one of
three interchangeable production drivers (stored, fast, slow/lazy), selected
by compression level 0-9 exactly as the classic zlib/deflate level table
does.

# One-shot compression

	out, err := deflate.Compress(data)
	out, err := deflate.CompressLevel(data, &deflate.CompressOptions{Level: 9, Strategy: deflate.Default})

# Streaming

For incremental input, construct an Engine directly, attach chunks with
SetInput, and call Deflate between them:

	pending := deflate.NewPendingBuffer(w)
	engine, err := deflate.NewEngine(pending, 6, deflate.Default)
	defer engine.Close()

	for more data available {
		engine.SetInput(chunk, 0, len(chunk))
		engine.Deflate(false, false)
	}
	engine.Deflate(true, true) // flush + finish

The engine never decodes its own output; pair it with any RFC 1951-conformant
inflater (including the standard library's compress/flate) to round-trip.
*/
package deflate
