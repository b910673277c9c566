package hstring_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/pavanmanishd/hstring"
	"github.com/pavanmanishd/hstring/allocator"
	"github.com/pavanmanishd/hstring/arena"
)

var sink int

// BenchmarkShortStrings builds strings that fit inline.
func BenchmarkShortStrings(b *testing.B) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog")

	b.Run("String", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for _, w := range words {
				s := hstring.New()
				_ = s.AssignString(w)
				_ = s.AppendByte(' ')
				sink += s.Len()
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for _, w := range words {
				s := make([]byte, 0, len(w)+1)
				s = append(s, w...)
				s = append(s, ' ')
				sink += len(s)
			}
		}
	})
}

// BenchmarkAppend grows one string from empty to a few kilobytes.
func BenchmarkAppend(b *testing.B) {
	chunk := strings.Repeat("x", 48)

	b.Run("Heap", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := hstring.New()
			for j := 0; j < 64; j++ {
				_ = s.AppendString(chunk)
			}
			sink += s.Len()
			s.Release()
		}
	})

	// Reset per iteration, like a per-request arena.
	b.Run("Arena", func(b *testing.B) {
		a := arena.New(64 * 1024)
		alloc := allocator.NewDefault(a, allocator.NewHeap(0))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := hstring.New(hstring.WithAllocator(alloc))
			for j := 0; j < 64; j++ {
				_ = s.AppendString(chunk)
			}
			sink += s.Len()
			s.Release()
			a.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []byte
			for j := 0; j < 64; j++ {
				s = append(s, chunk...)
			}
			sink += len(s)
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})
}

// BenchmarkManyStrings keeps many medium strings alive at once.
func BenchmarkManyStrings(b *testing.B) {
	line := strings.Repeat("y", 100)

	b.Run("Arena", func(b *testing.B) {
		a := arena.New(1 << 20)
		alloc := allocator.NewDefault(a, allocator.NewHeap(0))
		strs := make([]hstring.String, 100)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := range strs {
				strs[j] = hstring.New(hstring.WithAllocator(alloc))
				_ = strs[j].AssignString(line)
			}
			a.Reset()
		}
	})

	b.Run("Heap", func(b *testing.B) {
		strs := make([]hstring.String, 100)
		for i := 0; i < b.N; i++ {
			for j := range strs {
				strs[j] = hstring.New()
				_ = strs[j].AssignString(line)
			}
		}
	})
}
