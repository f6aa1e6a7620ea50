// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// Strategy modifies how the match search accepts candidates. It takes effect
// on the next search decision, per spec.md §4.1.
type Strategy int

const (
	// Default applies the ordinary lazy-match acceptance filter.
	Default Strategy = iota
	// Filtered discards short matches (length <= 5) more aggressively, which
	// tends to help data with a lot of small random variations (e.g. PNG
	// filtered scanlines).
	Filtered
	// HuffmanOnly disables LZ77 match searching entirely; only literals are
	// tallied, and entropy coding is the sole source of compression.
	HuffmanOnly
)

// DefaultCompressOptions returns options for level 6 (the customary
// "default" deflate level) with Strategy Default.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 6, Strategy: Default}
}

// CompressOptions configures a one-shot Compress call. Level must be in
// [0,9]; values outside that range are rejected with ErrBadArgument (unlike
// the teacher's own clamping behavior - see DESIGN.md "Other divergences",
// this engine treats level as part of its documented contract, not a loose
// knob).
type CompressOptions struct {
	Level    int
	Strategy Strategy
}
