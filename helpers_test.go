package hstring

import (
	"bytes"

	"github.com/pavanmanishd/hstring/allocator"
)

// countingAllocator records every call made through the allocator port.
type countingAllocator struct {
	allocator.Allocator
	allocs   int
	reallocs int
	frees    int
}

func newCounting(limit int) *countingAllocator {
	return &countingAllocator{Allocator: allocator.NewHeap(limit)}
}

func (c *countingAllocator) Allocate(n int) []byte {
	c.allocs++
	return c.Allocator.Allocate(n)
}

func (c *countingAllocator) Reallocate(p []byte, n int) []byte {
	c.reallocs++
	return c.Allocator.Reallocate(p, n)
}

func (c *countingAllocator) Free(p []byte) {
	c.frees++
	c.Allocator.Free(p)
}

func (c *countingAllocator) calls() int {
	return c.allocs + c.reallocs + c.frees
}

// pattern returns n bytes that differ at every position modulo 251, with
// embedded zero bytes.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}
