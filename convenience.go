// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import "bytes"

// Compress deflates src in one shot using DefaultCompressOptions, returning a
// complete RFC 1951 stream.
func Compress(src []byte) ([]byte, error) {
	return CompressLevel(src, DefaultCompressOptions())
}

// CompressLevel deflates src in one shot with the given options. opts may be
// nil, in which case DefaultCompressOptions is used.
func CompressLevel(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	var out bytes.Buffer
	pending := NewPendingBuffer(&out)
	engine, err := NewEngine(pending, opts.Level, opts.Strategy)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	if err := engine.SetInput(src, 0, len(src)); err != nil {
		return nil, err
	}
	if _, err := engine.Deflate(true, true); err != nil {
		return nil, err
	}
	if err := pending.flush(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
