package allocator

import (
	"github.com/detailyang/fastrand-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/pavanmanishd/hstring/arena"
)

var opsStats = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hstring_allocator_ops",
	Help: "Sampled count of Default allocator operations by the allocator that served them",
}, []string{"op", "source"})

// Only one in samplerate operations touches the prometheus counters; each
// sample is weighted by samplerate. Needs to be a power of 2.
const samplerate = 1024

func record(op, source string) {
	if fastrand.FastRand()&(samplerate-1) == 0 {
		opsStats.WithLabelValues(op, source).Add(float64(samplerate))
	}
}

// Default serves requests from a primary Owner, normally a bump arena, and
// falls back to a general-purpose allocator when the primary is exhausted.
// Buffers are freed to whichever allocator owns them.
//
// Default is as safe for concurrent use as its primary and fallback are; the
// counters themselves are atomic.
type Default struct {
	primary  Owner
	fallback Allocator

	hits       atomic.Int64
	fallbacks  atomic.Int64
	migrations atomic.Int64
	failures   atomic.Int64
}

// NewDefault wires primary in front of fallback. A nil primary gets a fresh
// arena of arena.DefaultSize bytes; a nil fallback gets an unlimited Heap.
func NewDefault(primary Owner, fallback Allocator) *Default {
	if primary == nil {
		primary = arena.New(arena.DefaultSize)
	}
	if fallback == nil {
		fallback = NewHeap(0)
	}
	return &Default{primary: primary, fallback: fallback}
}

// Allocate tries the primary first and the fallback second.
func (d *Default) Allocate(n int) []byte {
	if p := d.primary.Allocate(n); p != nil {
		d.hits.Inc()
		record("allocate", "primary")
		return p
	}
	p := d.fallback.Allocate(n)
	if p == nil {
		d.fail("allocate", n)
		return nil
	}
	d.fallbacks.Inc()
	record("allocate", "fallback")
	zap.L().Debug("primary allocator exhausted, served from fallback", zap.Int("size", n))
	return p
}

// Reallocate resizes p with the allocator that owns it. A primary buffer that
// cannot be resized in the primary is copied into a fallback buffer and freed
// from the primary. On failure p is left valid and nil is returned.
func (d *Default) Reallocate(p []byte, n int) []byte {
	if p == nil {
		return d.Allocate(n)
	}
	if !d.primary.Owns(p) {
		q := d.fallback.Reallocate(p, n)
		if q == nil {
			d.fail("reallocate", n)
			return nil
		}
		record("reallocate", "fallback")
		return q
	}

	if q := d.primary.Reallocate(p, n); q != nil {
		d.hits.Inc()
		record("reallocate", "primary")
		return q
	}
	q := d.fallback.Allocate(n)
	if q == nil {
		d.fail("reallocate", n)
		return nil
	}
	copy(q, p)
	d.primary.Free(p)
	d.migrations.Inc()
	record("migrate", "fallback")
	zap.L().Debug("moved buffer out of primary allocator",
		zap.Int("from", len(p)), zap.Int("to", n))
	return q
}

// Free hands p back to the allocator that owns it.
func (d *Default) Free(p []byte) {
	if p == nil {
		return
	}
	if d.primary.Owns(p) {
		d.primary.Free(p)
		record("free", "primary")
		return
	}
	d.fallback.Free(p)
	record("free", "fallback")
}

// Owns reports whether p was served by the primary allocator.
func (d *Default) Owns(p []byte) bool {
	return d.primary.Owns(p)
}

// Primary returns the allocator tried first.
func (d *Default) Primary() Owner {
	return d.primary
}

// Fallback returns the allocator used when the primary is exhausted.
func (d *Default) Fallback() Allocator {
	return d.fallback
}

// Stats returns a snapshot of the operation counters.
func (d *Default) Stats() Stats {
	return Stats{
		PrimaryHits: d.hits.Load(),
		Fallbacks:   d.fallbacks.Load(),
		Migrations:  d.migrations.Load(),
		Failures:    d.failures.Load(),
	}
}

// Stats counts how a Default allocator served its requests.
type Stats struct {
	PrimaryHits int64 // Allocations and reallocations served by the primary
	Fallbacks   int64 // Allocations served by the fallback
	Migrations  int64 // Primary buffers moved into the fallback on growth
	Failures    int64 // Requests neither allocator could serve
}

func (d *Default) fail(op string, n int) {
	d.failures.Inc()
	record(op, "failed")
	zap.L().Debug("allocation failed", zap.String("op", op), zap.Int("size", n))
}
