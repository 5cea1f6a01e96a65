package compentry

import "errors"

// ErrRequestInFlight is returned by Begin while another request is open.
var ErrRequestInFlight = errors.New("compentry: completion request already in flight")

// Source returns the candidates for the word being completed.
type Source func(text string) []string

// Producer drives a Cache through one completion request at a time.
//
// Callbacks from a C line editor carry no user data, so the binding
// keeps one Producer for the whole process. Only one request may be
// open; Begin enforces that instead of trusting the caller.
type Producer[H comparable] struct {
	cache  *Cache[H]
	source Source
	open   bool
}

// NewProducer returns a producer allocating through alloc.
func NewProducer[H comparable](alloc Allocator[H]) *Producer[H] {
	return &Producer[H]{cache: New(alloc)}
}

// Begin opens a request served by source.
func (p *Producer[H]) Begin(source Source) error {
	if p.open {
		return ErrRequestInFlight
	}
	p.open = true
	p.source = source
	return nil
}

// Entry implements the entry producer protocol: state 0 fills the cache
// from the request's source, and every call returns the entry at state.
func (p *Producer[H]) Entry(text string, state int) (H, bool) {
	if !p.open {
		var zero H
		return zero, false
	}
	if state == 0 {
		var candidates []string
		if p.source != nil {
			candidates = p.source(text)
		}
		p.cache.Set(candidates)
	}
	return p.cache.Get(state)
}

// End closes the current request.
func (p *Producer[H]) End() {
	p.cache.Reset()
	p.source = nil
	p.open = false
}

// InFlight reports whether a request is open.
func (p *Producer[H]) InFlight() bool { return p.open }

// Cache exposes the underlying cache.
func (p *Producer[H]) Cache() *Cache[H] { return p.cache }

// Collect runs a complete request, handing each entry to fn in order.
func (p *Producer[H]) Collect(text string, source Source, fn func(H)) error {
	if err := p.Begin(source); err != nil {
		return err
	}
	defer p.End()
	for state := 0; ; state++ {
		h, ok := p.Entry(text, state)
		if !ok {
			return nil
		}
		fn(h)
	}
}
