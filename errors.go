package hstring

import "github.com/pavanmanishd/hstring/allocator"

// ErrAllocation is wrapped into every error returned by an operation whose
// allocator could not provide a buffer. Test for it with errors.Is. The String
// is left exactly as it was before the failed call.
var ErrAllocation = allocator.ErrAllocation

const (
	errReleased    = "hstring: use after Release()"
	errNegative    = "hstring: negative length"
	errStealLength = "hstring: Steal length out of range"
)
