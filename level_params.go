// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

// compressionFunction selects which driver deflate() dispatches to.
type compressionFunction int

const (
	cfStored compressionFunction = iota
	cfFast
	cfSlow
)

// levelParams holds the per-level tunables driving the match search and the
// lazy-match decision. levelTable holds one row of these five values per
// level 0..9, per spec.md's Level Table.
type levelParams struct {
	goodLength int
	maxLazy    int
	niceLength int
	maxChain   int
	function   compressionFunction
}

// levelTable mirrors zlib/deflate's configuration_table: level 0 is stored
// only, 1-3 use the fast (greedy) driver, 4-9 use the slow (lazy) driver.
var levelTable = [10]levelParams{
	// goodLength, maxLazy, niceLength, maxChain, function
	{0, 0, 0, 0, cfStored},
	{4, 4, 8, 4, cfFast},
	{4, 5, 16, 8, cfFast},
	{4, 6, 32, 32, cfFast},
	{4, 4, 16, 16, cfSlow},
	{8, 16, 32, 32, cfSlow},
	{8, 16, 128, 128, cfSlow},
	{32, 32, 128, 256, cfSlow},
	{32, 128, 258, 1024, cfSlow},
	{32, 258, 258, 4096, cfSlow},
}

// levelParamsFor validates level and returns its tunables.
func levelParamsFor(level int) (levelParams, error) {
	if level < 0 || level > 9 {
		return levelParams{}, ErrBadArgument
	}
	return levelTable[level], nil
}
