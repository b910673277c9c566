package allocator

import (
	"math/bits"

	"go.uber.org/atomic"
)

// MaxAlloc is the largest buffer Heap hands out. Larger requests fail with nil
// instead of reaching make, which panics past the runtime's address limit.
const MaxAlloc = 1<<47*(bits.UintSize/64) + (1<<31-1)*(1-bits.UintSize/64)

// Heap is a general-purpose allocator backed by the Go heap. Freed buffers are
// left to the garbage collector; Heap only keeps count of live bytes so that
// an optional limit can make it fail like a bounded malloc would.
// Heap is safe for concurrent use.
type Heap struct {
	limit int64
	live  atomic.Int64
}

// NewHeap creates a Heap. If limit > 0, requests that would push the live
// byte count above limit fail with nil.
func NewHeap(limit int) *Heap {
	if limit < 0 {
		limit = 0
	}
	return &Heap{limit: int64(limit)}
}

// Allocate returns a fresh zeroed buffer of n bytes, or nil over the limit.
func (h *Heap) Allocate(n int) []byte {
	if n < 0 {
		panic("allocator: negative allocation size")
	}
	if n > MaxAlloc || !h.reserve(int64(n)) {
		return nil
	}
	return make([]byte, n)
}

// Reallocate copies p into a fresh buffer of n bytes.
func (h *Heap) Reallocate(p []byte, n int) []byte {
	if p == nil {
		return h.Allocate(n)
	}
	if n < 0 {
		panic("allocator: negative allocation size")
	}
	if n > MaxAlloc || !h.reserve(int64(n-len(p))) {
		return nil
	}
	q := make([]byte, n)
	copy(q, p)
	return q
}

// Free forgets p. The memory is reclaimed by the garbage collector.
func (h *Heap) Free(p []byte) {
	if p == nil {
		return
	}
	h.live.Sub(int64(len(p)))
}

// Live returns the number of bytes handed out and not yet freed.
func (h *Heap) Live() int {
	return int(h.live.Load())
}

// Limit returns the configured limit, 0 meaning unlimited.
func (h *Heap) Limit() int {
	return int(h.limit)
}

func (h *Heap) reserve(delta int64) bool {
	if h.limit == 0 || delta <= 0 {
		h.live.Add(delta)
		return true
	}
	for {
		cur := h.live.Load()
		if cur+delta > h.limit {
			return false
		}
		if h.live.CompareAndSwap(cur, cur+delta) {
			return true
		}
	}
}
