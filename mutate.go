package hstring

// Assign replaces the content with a copy of b. Content that fits inline is
// copied in place; a heap String stays on the heap and reuses its buffer when
// it is large enough. b may alias the String's own content.
func (s *String) Assign(b []byte) error {
	s.prepare()
	n := len(b)
	if s.isHeap() {
		b, err := s.growFor(n, b)
		if err != nil {
			return err
		}
		copy(s.buf, b)
		s.setHeapLen(n)
		return nil
	}
	if n > InlineCap {
		buf, err := s.allocate(s.cfg.grow(n))
		if err != nil {
			return err
		}
		copy(buf, b)
		s.buf = buf
		s.raw[InlineCap] = HeapFlag
		s.setHeapLen(n)
		return nil
	}
	copy(s.raw[:n], b)
	s.setInlineLen(n)
	return nil
}

// AssignString is Assign for a Go string.
func (s *String) AssignString(str string) error {
	s.prepare()
	n := len(str)
	if s.isHeap() {
		if _, err := s.growFor(n, nil); err != nil {
			return err
		}
		copy(s.buf, str)
		s.setHeapLen(n)
		return nil
	}
	if n > InlineCap {
		buf, err := s.allocate(s.cfg.grow(n))
		if err != nil {
			return err
		}
		copy(buf, str)
		s.buf = buf
		s.raw[InlineCap] = HeapFlag
		s.setHeapLen(n)
		return nil
	}
	copy(s.raw[:n], str)
	s.setInlineLen(n)
	return nil
}

// AssignFrom replaces the content with a copy of o's content.
func (s *String) AssignFrom(o *String) error {
	return s.Assign(o.Bytes())
}

// Append adds a copy of b to the end of the content. An inline String with
// too little room left is promoted to the heap with the growth factor applied;
// a heap String grows the same way. b may alias the String's own content.
func (s *String) Append(b []byte) error {
	s.prepare()
	n := len(b)
	if s.isHeap() {
		size := s.size
		b, err := s.growFor(size+n, b)
		if err != nil {
			return err
		}
		copy(s.buf[size:], b)
		s.setHeapLen(size + n)
		return nil
	}

	size := s.inlineLen()
	if int(s.raw[InlineCap]) >= n {
		copy(s.raw[size:], b)
		s.setInlineLen(size + n)
		return nil
	}
	buf, err := s.allocate(s.cfg.grow(size + n))
	if err != nil {
		return err
	}
	copy(buf, s.raw[:size])
	copy(buf[size:], b)
	s.buf = buf
	s.raw[InlineCap] = HeapFlag
	s.setHeapLen(size + n)
	return nil
}

// AppendString is Append for a Go string.
func (s *String) AppendString(str string) error {
	s.prepare()
	n := len(str)
	if s.isHeap() {
		size := s.size
		if _, err := s.growFor(size+n, nil); err != nil {
			return err
		}
		copy(s.buf[size:], str)
		s.setHeapLen(size + n)
		return nil
	}

	size := s.inlineLen()
	if int(s.raw[InlineCap]) >= n {
		copy(s.raw[size:], str)
		s.setInlineLen(size + n)
		return nil
	}
	buf, err := s.allocate(s.cfg.grow(size + n))
	if err != nil {
		return err
	}
	copy(buf, s.raw[:size])
	copy(buf[size:], str)
	s.buf = buf
	s.raw[InlineCap] = HeapFlag
	s.setHeapLen(size + n)
	return nil
}

// AppendFrom adds a copy of o's content. o may be s itself.
func (s *String) AppendFrom(o *String) error {
	return s.Append(o.Bytes())
}

// AppendByte adds a single byte.
func (s *String) AppendByte(c byte) error {
	s.prepare()
	if !s.isHeap() && s.raw[InlineCap] > 0 {
		size := s.inlineLen()
		s.raw[size] = c
		s.setInlineLen(size + 1)
		return nil
	}
	return s.Append([]byte{c})
}

// Write implements io.Writer by appending p.
func (s *String) Write(p []byte) (int, error) {
	if err := s.Append(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString implements io.StringWriter by appending str.
func (s *String) WriteString(str string) (int, error) {
	if err := s.AppendString(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// WriteByte implements io.ByteWriter by appending c.
func (s *String) WriteByte(c byte) error {
	return s.AppendByte(c)
}

// Reserve makes sure the String can hold n bytes without allocating. The
// content is unchanged. Capacity is allocated exactly, without the growth
// factor: an inline String asked for more than InlineCap is promoted to a
// buffer of capacity n, a heap String is reallocated to n only if smaller.
func (s *String) Reserve(n int) error {
	s.prepare()
	if n < 0 {
		panic(errNegative)
	}
	if s.isHeap() {
		if s.heapCap() < n {
			return s.realloc(n)
		}
		return nil
	}
	if n <= InlineCap {
		return nil
	}
	return s.promote(n)
}

// Resize sets the length to n. Shrinking only moves the terminator and never
// frees memory. Growing reserves exactly n bytes and exposes n-Len() bytes of
// unspecified content. A heap String stays on the heap.
func (s *String) Resize(n int) error {
	s.prepare()
	if n < 0 {
		panic(errNegative)
	}
	if s.isHeap() {
		if s.heapCap() < n {
			if err := s.realloc(n); err != nil {
				return err
			}
		}
		s.setHeapLen(n)
		return nil
	}
	if n <= InlineCap {
		s.setInlineLen(n)
		return nil
	}
	if err := s.promote(n); err != nil {
		return err
	}
	s.setHeapLen(n)
	return nil
}

// ResizeFill is Resize, with any new bytes set to c.
func (s *String) ResizeFill(n int, c byte) error {
	old := s.Len()
	if err := s.Resize(n); err != nil {
		return err
	}
	if n > old {
		fill(s.Bytes()[old:n], c)
	}
	return nil
}

// ShrinkToFit reallocates a heap String's buffer down to its length. It is a
// no-op for inline Strings, which are never demoted.
func (s *String) ShrinkToFit() error {
	s.prepare()
	if !s.isHeap() || s.heapCap() == s.size {
		return nil
	}
	return s.realloc(s.size)
}

// Steal makes s take ownership of buf, a buffer obtained from the String's
// allocator (or one it can Free). The capacity becomes len(buf)-1 and the
// content buf[:length]; buf[length] is overwritten with the terminator.
// A heap buffer previously owned by s is freed first. Steal panics unless
// 0 <= length < len(buf).
func (s *String) Steal(buf []byte, length int) {
	s.prepare()
	if length < 0 || length >= len(buf) {
		panic(errStealLength)
	}
	if s.isHeap() {
		s.cfg.alloc.Free(s.buf)
	}
	s.buf = buf
	s.raw[InlineCap] = HeapFlag
	s.setHeapLen(length)
}

// Release frees a heap buffer and makes s unusable: every later call other
// than Release and Reset panics. Releasing twice is a no-op.
func (s *String) Release() {
	if s.cfg == nil {
		s.cfg = defaultConfig
	} else if s.raw[InlineCap] == releasedFlag {
		return
	}
	if s.isHeap() {
		s.cfg.alloc.Free(s.buf)
	}
	s.buf = nil
	s.size = 0
	s.raw[InlineCap] = releasedFlag
}

// Reset frees any heap buffer and makes s an empty inline String with the
// same configuration. It also revives a released String.
func (s *String) Reset() {
	if s.cfg == nil {
		s.init(defaultConfig)
		return
	}
	if s.isHeap() {
		s.cfg.alloc.Free(s.buf)
	}
	s.init(s.cfg)
}
