// Package compentry holds the completion candidates handed to a line
// editor's index-based entry producer.
//
// The editor asks for entry 0, 1, 2, ... until it is told there are no
// more. Each entry it receives becomes its own: it frees it. The cache
// only frees handles it never gave out.
package compentry

import (
	"fmt"
	"strings"
)

// Allocator duplicates text into memory owned by the consumer.
// Dup is the single point where ownership of a new handle is created.
type Allocator[H comparable] interface {
	Dup(text string) H
	Free(h H)
}

// State is the position of a cache in the completion request cycle.
type State int

const (
	Idle State = iota
	Populated
	Draining
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Populated:
		return "populated"
	case Draining:
		return "draining"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type slot[H comparable] struct {
	text  string
	h     H
	taken bool
}

// Cache is a growable array of owned candidate handles.
// It is not safe for concurrent use; see Producer.
type Cache[H comparable] struct {
	alloc   Allocator[H]
	entries []slot[H]
	n       int
	state   State
}

// New returns an empty cache backed by alloc.
func New[H comparable](alloc Allocator[H]) *Cache[H] {
	return &Cache[H]{alloc: alloc}
}

// Set replaces the cache contents with candidates.
// Handles from the previous request that were never taken are freed.
// Set panics if a candidate contains a NUL byte.
func (c *Cache[H]) Set(candidates []string) {
	c.Reset()
	if len(candidates) > len(c.entries) {
		c.entries = make([]slot[H], len(candidates))
	}
	for i, text := range candidates {
		if strings.IndexByte(text, 0) >= 0 {
			c.n = i
			panic(fmt.Sprintf("compentry: candidate %d contains a NUL byte", i))
		}
		c.entries[i] = slot[H]{text: text, h: c.alloc.Dup(text)}
	}
	c.n = len(candidates)
	c.state = Populated
}

// Get returns the handle at index and transfers its ownership to the
// caller. An index past the end signals exhaustion: the cache is reset
// and Get reports false.
func (c *Cache[H]) Get(index int) (H, bool) {
	if index < 0 || index >= c.n {
		c.Reset()
		var zero H
		return zero, false
	}
	s := &c.entries[index]
	c.state = Draining
	if s.taken {
		// the first handle already belongs to the consumer
		return c.alloc.Dup(s.text), true
	}
	h := s.h
	var zero H
	s.h = zero
	s.taken = true
	return h, true
}

// Reset frees untaken handles and empties the cache. Capacity is kept.
func (c *Cache[H]) Reset() {
	var zero H
	for i := 0; i < c.n; i++ {
		s := &c.entries[i]
		if !s.taken && s.h != zero {
			c.alloc.Free(s.h)
		}
		c.entries[i] = slot[H]{}
	}
	c.n = 0
	c.state = Idle
}

// Len is the number of valid entries.
func (c *Cache[H]) Len() int { return c.n }

// Cap is the number of allocated slots.
func (c *Cache[H]) Cap() int { return len(c.entries) }

// State reports where the cache is in the request cycle.
func (c *Cache[H]) State() State { return c.state }
