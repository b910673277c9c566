package hstring

import (
	"math"

	"github.com/pavanmanishd/hstring/allocator"
)

// DefaultGrowthFactor multiplies the required capacity whenever an append or
// assign has to allocate, so that repeated small appends reallocate only
// O(log n) times.
const DefaultGrowthFactor = 2

// sharedHeap backs every String created without WithAllocator. It is safe
// for concurrent use, unlike an arena.
var sharedHeap = allocator.NewHeap(0)

var defaultConfig = &config{alloc: sharedHeap, growth: DefaultGrowthFactor}

type config struct {
	alloc  allocator.Allocator
	growth int
}

// Option configures a String at construction time.
type Option func(*config)

// WithAllocator makes the String obtain its heap buffers from a. Buffers
// later passed to Steal must come from the same allocator.
func WithAllocator(a allocator.Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithGrowthFactor sets the multiplier applied on amortized growth.
// Values below 1 select DefaultGrowthFactor.
func WithGrowthFactor(g int) Option {
	return func(c *config) {
		if g < 1 {
			g = DefaultGrowthFactor
		}
		c.growth = g
	}
}

func newConfig(opts []Option) *config {
	if len(opts) == 0 {
		return defaultConfig
	}
	c := *defaultConfig
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// grow applies the growth factor to a required capacity.
func (c *config) grow(n int) int {
	if n > (math.MaxInt-1)/c.growth {
		return n
	}
	return n * c.growth
}
