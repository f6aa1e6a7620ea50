// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/deflate

package deflate

import (
	"hash"
	"hash/adler32"
)

// adlerChecksum wraps the standard library's Adler-32 implementation. It is
// the "external collaborator" spec.md §2 describes: the engine only ever
// calls update/reset/value on it.
type adlerChecksum struct {
	h hash.Hash32
}

func newAdlerChecksum() *adlerChecksum {
	return &adlerChecksum{h: adler32.New()}
}

func (a *adlerChecksum) update(p []byte) {
	a.h.Write(p)
}

func (a *adlerChecksum) reset() {
	a.h.Reset()
}

func (a *adlerChecksum) value() uint32 {
	return a.h.Sum32()
}
