// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import "sync"

// engineScratch is the trio of large arrays spec.md §5 says are "allocated
// once at construction and reused across reset": the window and both hash
// tables. Pooling them mirrors the teacher's slidingWindowDictPool.
type engineScratch struct {
	window []byte
	head   []int32
	prev   []int32
}

var engineScratchPool = sync.Pool{
	New: func() any {
		return &engineScratch{
			window: make([]byte, 2*wSize),
			head:   make([]int32, hashSize),
			prev:   make([]int32, wSize),
		}
	},
}

// acquireEngineScratch gets a zeroed scratch set from the pool.
func acquireEngineScratch() *engineScratch {
	s := engineScratchPool.Get().(*engineScratch)
	for i := range s.window {
		s.window[i] = 0
	}
	for i := range s.head {
		s.head[i] = 0
	}
	for i := range s.prev {
		s.prev[i] = 0
	}
	return s
}

// releaseEngineScratch returns a scratch set to the pool.
func releaseEngineScratch(s *engineScratch) {
	if s == nil {
		return
	}
	engineScratchPool.Put(s)
}
