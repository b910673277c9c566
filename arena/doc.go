// Package arena implements a fixed-capacity bump allocator for byte buffers.
//
// # Overview
//
// An Arena owns a single region and a cursor. Allocate hands out the bytes at
// the cursor and advances it; Free moves the cursor back only when the freed
// block is the last one handed out. This makes the common "grow the newest
// buffer, then drop it" pattern free of copies:
//
//   - Reallocating the newest block grows or shrinks it in place
//   - Freeing blocks in reverse order reclaims all of their space
//   - Freeing out of order abandons the block until Reset
//
// When the region is exhausted Allocate and Reallocate return nil rather than
// growing. Callers pair the arena with a fallback, see allocator.Default.
//
// # Basic Usage
//
//	a := arena.New(0) // Use default size
//	defer a.Release() // Drop the region when done
//
//	buf := a.Allocate(100)
//	buf = a.Reallocate(buf, 200) // in place: buf is the newest block
//	a.Free(buf)                  // cursor back to 0
//
// # Thread Safety
//
// Arena is not thread-safe. SafeArena serializes every call with a mutex:
//
//	s := arena.NewSafe(0)
//	defer s.Release()
//
// # Metrics
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	a.Report("strings") // publish to the hstring_arena_stats gauge
package arena
