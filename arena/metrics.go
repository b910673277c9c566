package arena

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stats = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "hstring_arena_stats",
	Help: "Stats about usage of bump arenas",
}, []string{"metric", "name"})

// SizeInUse returns the number of bytes between the start of the region and
// the cursor. Abandoned blocks below the cursor are counted.
func (a *Arena) SizeInUse() int {
	return a.off
}

// Capacity returns the size of the region in bytes, 0 after Release.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Available returns the number of bytes left above the cursor.
func (a *Arena) Available() int {
	return len(a.buf) - a.off
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Available:   a.Available(),
		Utilization: a.Utilization(),
		Allocs:      a.stats.allocs,
		Misses:      a.stats.misses,
		Frees:       a.stats.frees,
		Reclaims:    a.stats.reclaims,
		InPlace:     a.stats.inPlace,
		Moves:       a.stats.moves,
	}
}

// Report publishes the current metrics under the given name.
func (a *Arena) Report(name string) {
	a.Metrics().report(name)
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes below the cursor
	Capacity    int     // Region size in bytes
	Available   int     // Bytes above the cursor
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
	Allocs      int64   // Blocks carved, including moves
	Misses      int64   // Allocations refused for lack of room
	Frees       int64   // Free calls
	Reclaims    int64   // Frees that moved the cursor back
	InPlace     int64   // Reallocations served without copying
	Moves       int64   // Reallocations that carved a new block and copied
}

func (m ArenaMetrics) report(name string) {
	stats.WithLabelValues("size_in_use", name).Set(float64(m.SizeInUse))
	stats.WithLabelValues("capacity", name).Set(float64(m.Capacity))
	stats.WithLabelValues("utilization", name).Set(m.Utilization)
	stats.WithLabelValues("allocs", name).Set(float64(m.Allocs))
	stats.WithLabelValues("misses", name).Set(float64(m.Misses))
	stats.WithLabelValues("frees", name).Set(float64(m.Frees))
	stats.WithLabelValues("reclaims", name).Set(float64(m.Reclaims))
	stats.WithLabelValues("in_place", name).Set(float64(m.InPlace))
	stats.WithLabelValues("moves", name).Set(float64(m.Moves))
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of bytes below the cursor.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the region size.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Available thread-safely returns the number of bytes above the cursor.
func (s *SafeArena) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Available()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Report thread-safely publishes the current metrics under the given name.
func (s *SafeArena) Report(name string) {
	s.Metrics().report(name)
}
