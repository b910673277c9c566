// Package allocator defines the byte-buffer allocation port used by hstring
// and provides a Go-heap allocator plus the arena-first Default allocator.
package allocator

import "errors"

// ErrAllocation is reported when an allocator returns nil.
var ErrAllocation = errors.New("allocation failed")

// Allocator hands out byte buffers. A nil slice means the request could not
// be served.
//
// The size of a live buffer is its length: Reallocate and Free take the
// buffer exactly as it was returned, never a re-sliced view of it.
type Allocator interface {
	// Allocate returns n bytes of unspecified content, or nil on failure.
	// Allocate(0) returns a non-nil empty slice.
	Allocate(n int) []byte
	// Reallocate resizes p to n bytes, keeping the first min(len(p), n)
	// bytes. A nil p behaves like Allocate(n). On failure it returns nil and
	// p stays valid and unchanged.
	Reallocate(p []byte, n int) []byte
	// Free releases p. Free(nil) is a no-op. Freeing twice is undefined.
	Free(p []byte)
}

// Owner is an Allocator that can tell its own buffers apart from foreign ones.
// arena.Arena and arena.SafeArena implement it.
type Owner interface {
	Allocator
	Owns(p []byte) bool
}
