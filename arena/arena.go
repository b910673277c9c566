// Package arena implements a fixed-capacity bump allocator (memory arena).
// Blocks are carved sequentially from one region; space is handed back only
// when the most recently allocated block is freed (LIFO). The arena never
// grows and never compacts: when it cannot serve a request it returns nil and
// the caller falls back to another allocator.
package arena

import (
	"unsafe"

	"github.com/pavanmanishd/hstring/internal/assert"
)

// DefaultSize is the default region size for new arenas (64 KiB).
const DefaultSize = 1 << 16

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
// Use SafeArena for concurrent access.
type Arena struct {
	buf   []byte // backing region
	off   int    // cursor: [0, off) is carved, [off, len(buf)) is free
	stats counters
}

type counters struct {
	allocs   int64
	misses   int64
	frees    int64
	reclaims int64
	inPlace  int64
	moves    int64
}

// New creates an Arena with a region of size bytes.
// If size <= 0, DefaultSize is used.
func New(size int) *Arena {
	if size <= 0 {
		size = DefaultSize
	}
	return &Arena{buf: make([]byte, size)}
}

// CanAllocate reports whether n more bytes fit between the cursor and the end
// of the region.
func (a *Arena) CanAllocate(n int) bool {
	return n >= 0 && n <= len(a.buf)-a.off
}

// Allocate carves n bytes at the cursor. It returns nil when the region is
// exhausted; the caller is expected to fall back to another allocator.
// Allocate(0) returns a non-nil empty slice. Contents are unspecified.
func (a *Arena) Allocate(n int) []byte {
	a.panicIfReleased()
	if n < 0 {
		panic("arena: negative allocation size")
	}
	if !a.CanAllocate(n) {
		a.stats.misses++
		return nil
	}
	start := a.off
	a.off += n
	a.stats.allocs++
	// Full slice expression: appending to a block must never spill into the
	// next one.
	return a.buf[start:a.off:a.off]
}

// Reallocate resizes p, which must have been obtained from this arena with
// its current length. A nil p behaves like Allocate(n).
//
// When p is the most recently carved block it is resized in place. Otherwise
// a new block is carved and min(len(p), n) bytes are copied; the old block is
// abandoned. Nil is returned when there is no room, in which case p is left
// untouched.
func (a *Arena) Reallocate(p []byte, n int) []byte {
	if p == nil {
		return a.Allocate(n)
	}
	a.panicIfReleased()
	if n < 0 {
		panic("arena: negative allocation size")
	}
	assert.That(a.Owns(p), "arena: Reallocate of a block not owned by the arena")

	old := len(p)
	end := a.off - old
	if a.offsetOf(p) == end && (n <= old || a.CanAllocate(n-old)) {
		a.off = end + n
		a.stats.inPlace++
		return a.buf[end:a.off:a.off]
	}

	q := a.Allocate(n)
	if q == nil {
		return nil
	}
	copy(q, p)
	a.stats.moves++
	return q
}

// Free returns p to the arena. Only the most recently carved block is
// reclaimed; any other block stays abandoned until Reset or until the blocks
// above it are freed in LIFO order. Free(nil) is a no-op.
func (a *Arena) Free(p []byte) {
	if p == nil {
		return
	}
	a.panicIfReleased()
	assert.That(a.Owns(p), "arena: Free of a block not owned by the arena")

	a.stats.frees++
	if start := a.offsetOf(p); start+len(p) == a.off {
		a.off = start
		a.stats.reclaims++
	}
}

// Owns reports whether p points into the arena's region.
func (a *Arena) Owns(p []byte) bool {
	if p == nil || a.buf == nil {
		return false
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	return ptr >= base && ptr < base+uintptr(len(a.buf))
}

// Reset rewinds the cursor to the start of the region. Every block handed out
// so far becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.off = 0
}

// Release drops the region and makes the arena unusable.
// Any subsequent allocation panics.
func (a *Arena) Release() {
	a.buf = nil
	a.off = 0
}

// offsetOf returns p's start offset within the region.
func (a *Arena) offsetOf(p []byte) int {
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	return int(ptr - base)
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}
