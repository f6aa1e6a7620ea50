// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import "errors"

// Sentinel errors for the engine. Callers should use errors.Is against these,
// not string comparison.
var (
	// ErrBadArgument is returned for a negative offset/count, an
	// offset+count that overflows or exceeds the buffer length, or a level
	// outside [0,9]. A nil buffer is treated as empty: it is accepted with
	// offset and count 0.
	ErrBadArgument = errors.New("deflate: bad argument")
	// ErrInvalidState is returned by SetInput when the previously attached
	// input region has not been fully consumed.
	ErrInvalidState = errors.New("deflate: invalid state")
	// ErrInternalInvariant is returned when the engine reaches a state that
	// should be unreachable (e.g. an unknown compression function). It is
	// fatal: the Engine must be discarded, not reused.
	ErrInternalInvariant = errors.New("deflate: internal invariant violated")
)
