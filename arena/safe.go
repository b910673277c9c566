package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Each call is serialized; sequences of calls are not atomic.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe creates a new thread-safe arena with a region of size bytes.
// If size <= 0, DefaultSize is used.
func NewSafe(size int) *SafeArena {
	return &SafeArena{a: New(size)}
}

// CanAllocate thread-safely reports whether n more bytes fit.
func (s *SafeArena) CanAllocate(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.CanAllocate(n)
}

// Allocate thread-safely carves n bytes, or returns nil when exhausted.
func (s *SafeArena) Allocate(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Reallocate thread-safely resizes p. See Arena.Reallocate.
func (s *SafeArena) Reallocate(p []byte, n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reallocate(p, n)
}

// Free thread-safely returns p to the arena.
func (s *SafeArena) Free(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(p)
}

// Owns thread-safely reports whether p points into the arena's region.
func (s *SafeArena) Owns(p []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Owns(p)
}

// Reset thread-safely rewinds the cursor.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the region and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
