// Package hstring implements a byte string with small-string optimization.
//
// # Overview
//
// A String keeps up to InlineCap bytes (31 on 64-bit platforms) inside the
// value itself. Longer content is moved to a buffer obtained from a pluggable
// allocator.Allocator. The move ("promotion") is one-way: a String that has
// been on the heap stays there until Reset.
//
// One byte of the value acts as the discriminant. It holds HeapFlag for heap
// Strings and the number of unused inline bytes for inline Strings, so a full
// inline String has a discriminant of 0 which also serves as its terminator.
// Content in either form is always followed by a 0 byte.
//
// # Basic Usage
//
//	s := hstring.New()
//	defer s.Release()
//
//	_ = s.AssignString("Hello World!") // inline, no allocation
//	_ = s.AppendString(" and a tail long enough to leave the value")
//	fmt.Println(s.IsHeap(), s.Len())   // true 54
//
// # Allocators
//
// Without options a String allocates from a shared Go-heap allocator; there is
// no package-wide arena. To serve promotions from a bump arena, pass an
// allocator.Default:
//
//	a := arena.New(0)
//	alloc := allocator.NewDefault(a, allocator.NewHeap(0))
//	s := hstring.New(hstring.WithAllocator(alloc))
//
// An arena is not safe for concurrent use; give each goroutine its own, or
// use arena.SafeArena.
//
// # Growth
//
// Append and Assign multiply the capacity they need by the growth factor
// (DefaultGrowthFactor unless WithGrowthFactor says otherwise). Reserve,
// Resize, ShrinkToFit and NewWithCapacity allocate exactly what they are
// asked for.
//
// # Errors
//
// Every operation that may allocate returns an error wrapping ErrAllocation
// when the allocator fails, and leaves the String as it was. Contract
// violations such as use after Release panic.
package hstring
