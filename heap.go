package hstring

import (
	"math"

	"github.com/pkg/errors"
)

// allocate obtains a buffer for n content bytes plus the terminator.
func (s *String) allocate(n int) ([]byte, error) {
	if n >= math.MaxInt {
		return nil, errors.Wrapf(ErrAllocation, "hstring: capacity %d too large", n)
	}
	b := s.cfg.alloc.Allocate(n + 1)
	if b == nil {
		return nil, errors.Wrapf(ErrAllocation, "hstring: allocate %d bytes", n+1)
	}
	return b, nil
}

// promote moves inline content into a fresh heap buffer of capacity n.
// n must be at least the inline length.
func (s *String) promote(n int) error {
	b, err := s.allocate(n)
	if err != nil {
		return err
	}
	size := s.inlineLen()
	copy(b, s.raw[:size])
	s.buf = b
	s.raw[InlineCap] = HeapFlag
	s.setHeapLen(size)
	return nil
}

// realloc resizes the heap buffer to capacity n. n must be at least the
// current length.
func (s *String) realloc(n int) error {
	if n >= math.MaxInt {
		return errors.Wrapf(ErrAllocation, "hstring: capacity %d too large", n)
	}
	b := s.cfg.alloc.Reallocate(s.buf, n+1)
	if b == nil {
		return errors.Wrapf(ErrAllocation, "hstring: reallocate %d to %d bytes", len(s.buf), n+1)
	}
	s.buf = b
	s.buf[s.size] = 0
	return nil
}

// growFor makes room for n content bytes on the heap, applying the growth
// factor. in is the caller's input: if it points into the current buffer, the
// returned slice is the same bytes at their new location.
func (s *String) growFor(n int, in []byte) ([]byte, error) {
	if s.heapCap() >= n {
		return in, nil
	}
	off := aliasOffset(s.buf, in)
	if err := s.realloc(s.cfg.grow(n)); err != nil {
		return nil, err
	}
	if off >= 0 {
		in = s.buf[off : off+len(in)]
	}
	return in, nil
}
