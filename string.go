package hstring

import (
	"bytes"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/mo"
)

const ptrSize = bits.UintSize / 8

// InlineCap is the number of bytes a String holds without allocating. It is
// the size of the heap header (buffer slice plus size) minus the discriminant
// byte, the bound a union of the two forms would give. The inline array sits
// next to the heap fields rather than overlapping them. 31 on 64-bit
// platforms, 15 on 32-bit ones.
const InlineCap = 4*ptrSize - 1

// HeapFlag is the discriminant value of a String in heap form. Inline strings
// store their unused inline capacity, always <= InlineCap, in the same byte.
const HeapFlag = 0xFF

// releasedFlag marks a String after Release.
const releasedFlag = 0xFE

// String is a byte string that keeps up to InlineCap bytes inside the value
// and moves to an allocator-provided buffer when it outgrows them. Once on the
// heap it stays there.
//
// The content is always followed by a 0 byte. A String must not be copied
// after its first mutation, since copies would share the heap buffer; use
// Clone. The zero value is an empty String using the default allocator.
//
// A String is not safe for concurrent mutation.
type String struct {
	// raw[:InlineCap] holds inline content; raw[InlineCap] is the
	// discriminant. When the inline content is full the discriminant is 0 and
	// doubles as the terminator.
	raw  [InlineCap + 1]byte
	buf  []byte // heap buffer, capacity+1 bytes
	size int    // heap content length
	cfg  *config
}

// New returns an empty inline String. It does not allocate.
func New(opts ...Option) String {
	var s String
	s.init(newConfig(opts))
	return s
}

// NewFrom returns a String holding a copy of b. Payloads of at most InlineCap
// bytes are stored inline without allocating.
func NewFrom(b []byte, opts ...Option) (String, error) {
	s := New(opts...)
	err := s.Assign(b)
	return s, err
}

// NewString is NewFrom for a Go string.
func NewString(str string, opts ...Option) (String, error) {
	s := New(opts...)
	err := s.AssignString(str)
	return s, err
}

// NewWithCapacity returns an empty String able to hold n bytes without
// further allocation. Capacities above InlineCap are allocated exactly, with
// no growth factor.
func NewWithCapacity(n int, opts ...Option) (String, error) {
	s := New(opts...)
	err := s.Reserve(n)
	return s, err
}

func (s *String) init(cfg *config) {
	s.raw[0] = 0
	s.raw[InlineCap] = InlineCap
	s.buf = nil
	s.size = 0
	s.cfg = cfg
}

// prepare initializes a zero String and rejects released ones.
func (s *String) prepare() {
	if s.cfg == nil {
		s.init(defaultConfig)
		return
	}
	if s.raw[InlineCap] == releasedFlag {
		panic(errReleased)
	}
}

// flag returns the discriminant, treating the zero String as empty inline.
func (s *String) flag() byte {
	if s.cfg == nil {
		return InlineCap
	}
	f := s.raw[InlineCap]
	if f == releasedFlag {
		panic(errReleased)
	}
	return f
}

// IsHeap reports whether the content lives in an allocated buffer.
func (s *String) IsHeap() bool {
	return s.flag() == HeapFlag
}

// IsInline reports whether the content lives inside the String value.
func (s *String) IsInline() bool {
	return s.flag() != HeapFlag
}

// Len returns the content length in bytes.
func (s *String) Len() int {
	f := s.flag()
	if f == HeapFlag {
		return s.size
	}
	return InlineCap - int(f)
}

// Cap returns the number of bytes the String can hold without allocating.
func (s *String) Cap() int {
	if s.flag() == HeapFlag {
		return len(s.buf) - 1
	}
	return InlineCap
}

// Empty reports whether the String has no content.
func (s *String) Empty() bool {
	return s.Len() == 0
}

// Bytes returns the content. The slice aliases the String's storage and may
// be written through; it is invalidated by the next mutation.
func (s *String) Bytes() []byte {
	if s.flag() == HeapFlag {
		return s.buf[:s.size:s.size]
	}
	n := s.Len()
	return s.raw[:n:n]
}

// Terminated returns the content followed by its 0 terminator, for handing to
// code that expects C-style strings.
func (s *String) Terminated() []byte {
	if s.flag() == HeapFlag {
		return s.buf[: s.size+1 : s.size+1]
	}
	n := s.Len() + 1
	return s.raw[:n:n]
}

// String returns a copy of the content as a Go string.
func (s *String) String() string {
	return string(s.Bytes())
}

// At returns the byte at index i. It panics if i is out of range.
func (s *String) At(i int) byte {
	return s.Bytes()[i]
}

// Get returns the byte at index i, or None if i is out of range.
func (s *String) Get(i int) mo.Option[byte] {
	b := s.Bytes()
	if i < 0 || i >= len(b) {
		return mo.None[byte]()
	}
	return mo.Some(b[i])
}

// Front returns the first byte. It panics on an empty String.
func (s *String) Front() byte {
	return s.At(0)
}

// Back returns the last byte. It panics on an empty String.
func (s *String) Back() byte {
	return s.At(s.Len() - 1)
}

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Compare compares s and o lexicographically, returning -1, 0 or +1.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Hash returns the 64-bit xxHash of the content.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// Clone returns an independent copy of s using the same allocator and growth
// factor. Short content is stored inline even if s is on the heap.
func (s *String) Clone() (String, error) {
	cfg := s.cfg
	if cfg == nil {
		cfg = defaultConfig
	}
	var c String
	c.init(cfg)
	err := c.Assign(s.Bytes())
	return c, err
}

func (s *String) isHeap() bool {
	return s.raw[InlineCap] == HeapFlag
}

func (s *String) inlineLen() int {
	return InlineCap - int(s.raw[InlineCap])
}

func (s *String) heapCap() int {
	return len(s.buf) - 1
}

func (s *String) setInlineLen(n int) {
	s.raw[n] = 0
	s.raw[InlineCap] = byte(InlineCap - n)
}

func (s *String) setHeapLen(n int) {
	s.buf[n] = 0
	s.size = n
}
