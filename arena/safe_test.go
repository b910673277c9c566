package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewSafe(t *testing.T) {
	s := NewSafe(1024)
	require.NotNil(t, s)
	require.NotNil(t, s.a)
	assert.Equal(t, 1024, s.Capacity())
}

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafe(1024)

	assert.True(t, s.CanAllocate(1024))
	p := s.Allocate(100)
	require.Len(t, p, 100)
	assert.True(t, s.Owns(p))
	assert.Equal(t, 100, s.SizeInUse())

	p = s.Reallocate(p, 200)
	require.Len(t, p, 200)
	assert.Equal(t, 200, s.SizeInUse())
	assert.Equal(t, 824, s.Available())

	s.Free(p)
	assert.Equal(t, 0, s.SizeInUse())
	assert.Zero(t, s.Utilization())

	s.Allocate(10)
	s.Reset()
	assert.Equal(t, 0, s.Metrics().SizeInUse)

	s.Release()
	assert.Panics(t, func() { s.Allocate(100) })
}

func TestSafeArenaConcurrentAccess(t *testing.T) {
	const (
		workers = 16
		rounds  = 200
		size    = 8
	)
	s := NewSafe(workers * rounds * size)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				p := s.Allocate(size)
				if p == nil {
					return assert.AnError
				}
				for j := range p {
					p[j] = byte(w)
				}
				for j := range p {
					if p[j] != byte(w) {
						return assert.AnError
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, workers*rounds*size, s.SizeInUse())
	assert.Nil(t, s.Allocate(1))
}
