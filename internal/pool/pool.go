// Package pool provides generic object pooling for parse-time scratch
// state, keeping repeated invocations off the allocator.
package pool

import "sync"

// Pool is a type-safe wrapper around sync.Pool with an optional reset
// hook applied before each reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool backed by the given factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewWithReset creates a pool whose objects are reset before reuse.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool, creating one when empty.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools string slices, trimming length but keeping
// capacity across uses.
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a string slice pool with the given default
// capacity.
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewWithReset(
			func() *[]string {
				s := make([]string, 0, defaultCap)
				return &s
			},
			func(s *[]string) {
				*s = (*s)[:0]
			},
		),
	}
}

// IntSlicePool pools int slices the same way.
type IntSlicePool struct {
	*Pool[[]int]
}

// NewIntSlicePool creates an int slice pool with the given default
// capacity.
func NewIntSlicePool(defaultCap int) *IntSlicePool {
	return &IntSlicePool{
		Pool: NewWithReset(
			func() *[]int {
				s := make([]int, 0, defaultCap)
				return &s
			},
			func(s *[]int) {
				*s = (*s)[:0]
			},
		),
	}
}
