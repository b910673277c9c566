package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pavanmanishd/hstring/arena"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)
	return logs
}

func TestNewDefaultDefaults(t *testing.T) {
	d := NewDefault(nil, nil)
	a, ok := d.Primary().(*arena.Arena)
	require.True(t, ok)
	assert.Equal(t, arena.DefaultSize, a.Capacity())
	h, ok := d.Fallback().(*Heap)
	require.True(t, ok)
	assert.Equal(t, 0, h.Limit())
}

// The arena walkthrough: LIFO reuse, then exhaustion handled by the fallback.
func TestDefaultArenaScenario(t *testing.T) {
	logs := observeLogs(t)
	a := arena.New(1024)
	d := NewDefault(a, NewHeap(0))

	p0 := d.Allocate(100)
	require.NotNil(t, p0)
	assert.True(t, a.Owns(p0))
	d.Free(p0)
	assert.Equal(t, 0, a.SizeInUse())

	p1 := d.Allocate(100)
	assert.Same(t, &p0[0], &p1[0])

	p2 := d.Allocate(1000)
	require.Len(t, p2, 1000)
	assert.False(t, a.Owns(p2))
	assert.False(t, d.Owns(p2))
	assert.Equal(t, 100, a.SizeInUse())

	assert.Equal(t, Stats{PrimaryHits: 2, Fallbacks: 1}, d.Stats())
	assert.Equal(t, 1, logs.FilterMessage("primary allocator exhausted, served from fallback").Len())
}

func TestDefaultReallocate(t *testing.T) {
	t.Run("in place inside the arena", func(t *testing.T) {
		a := arena.New(256)
		d := NewDefault(a, NewHeap(0))
		p := d.Allocate(16)
		copy(p, "sixteen bytes!!!")
		q := d.Reallocate(p, 128)
		require.Len(t, q, 128)
		assert.Same(t, &p[0], &q[0])
		assert.Equal(t, "sixteen bytes!!!", string(q[:16]))
	})

	t.Run("migrates out of the arena", func(t *testing.T) {
		logs := observeLogs(t)
		a := arena.New(64)
		h := NewHeap(0)
		d := NewDefault(a, h)
		p := d.Allocate(32)
		copy(p, "migrate me")
		q := d.Reallocate(p, 200)
		require.Len(t, q, 200)
		assert.False(t, a.Owns(q))
		assert.Equal(t, "migrate me", string(q[:10]))
		assert.Equal(t, 0, a.SizeInUse(), "the old arena block is freed")
		assert.Equal(t, 200, h.Live())
		assert.EqualValues(t, 1, d.Stats().Migrations)
		assert.Equal(t, 1, logs.FilterMessage("moved buffer out of primary allocator").Len())
	})

	t.Run("foreign buffers stay in the fallback", func(t *testing.T) {
		a := arena.New(64)
		h := NewHeap(0)
		d := NewDefault(a, h)
		p := d.Allocate(100) // too big for the arena
		require.False(t, a.Owns(p))
		q := d.Reallocate(p, 10)
		require.Len(t, q, 10)
		assert.False(t, a.Owns(q))
		assert.Equal(t, 0, a.SizeInUse())
		assert.Equal(t, 10, h.Live())
	})

	t.Run("nil behaves like Allocate", func(t *testing.T) {
		d := NewDefault(arena.New(64), nil)
		p := d.Reallocate(nil, 8)
		require.Len(t, p, 8)
		assert.True(t, d.Owns(p))
	})
}

func TestDefaultFailures(t *testing.T) {
	logs := observeLogs(t)
	a := arena.New(64)
	h := NewHeap(100)
	d := NewDefault(a, h)

	assert.Nil(t, d.Allocate(101))

	// Arena block that can neither grow in place nor migrate stays intact.
	p := d.Allocate(48)
	copy(p, "still here")
	assert.Nil(t, d.Reallocate(p, 101))
	assert.True(t, a.Owns(p))
	assert.Equal(t, "still here", string(p[:10]))
	assert.Equal(t, 48, a.SizeInUse())

	// Fallback buffer that cannot grow stays intact as well.
	f := d.Allocate(90)
	require.False(t, a.Owns(f))
	assert.Nil(t, d.Reallocate(f, 101))
	assert.Equal(t, 90, h.Live())

	assert.EqualValues(t, 3, d.Stats().Failures)
	assert.Equal(t, 3, logs.FilterMessage("allocation failed").Len())
}

func TestDefaultFree(t *testing.T) {
	a := arena.New(64)
	h := NewHeap(0)
	d := NewDefault(a, h)

	inArena := d.Allocate(16)
	inHeap := d.Allocate(128)
	require.Equal(t, 128, h.Live())

	d.Free(inHeap)
	assert.Equal(t, 0, h.Live())
	d.Free(inArena)
	assert.Equal(t, 0, a.SizeInUse())
	d.Free(nil)
}

func TestDefaultWithSafeArena(t *testing.T) {
	s := arena.NewSafe(128)
	d := NewDefault(s, nil)
	p := d.Allocate(64)
	assert.True(t, s.Owns(p))
	p = d.Reallocate(p, 128)
	assert.True(t, s.Owns(p))
	d.Free(p)
	assert.Equal(t, 0, s.SizeInUse())
}
