// Package provider shares one checklist engine between independent
// observers. All mutations are serialized through a single writer lock and
// subscribers are notified only after a mutation has fully completed, so no
// observer ever sees a half-applied cascade.
package provider

import (
	"sync"

	"remodel-checklist/internal/checklist/engine"
)

// Provider is the shared handle around one engine instance. Consumers hold
// a reference to the same Provider rather than copies of the engine.
type Provider struct {
	mu     sync.Mutex
	eng    *engine.Engine
	nextID int
	subs   map[int]func()
}

// New wraps an engine in a shared handle. A nil engine is a wiring mistake
// and panics immediately.
func New(e *engine.Engine) *Provider {
	if e == nil {
		panic("checklist provider: engine must not be nil")
	}
	return &Provider{
		eng:  e,
		subs: make(map[int]func()),
	}
}

// Update runs a mutation against the engine under the writer lock, then
// notifies all subscribers.
func (p *Provider) Update(fn func(e *engine.Engine)) {
	p.mu.Lock()
	fn(p.eng)
	subs := make([]func(), 0, len(p.subs))
	for _, s := range p.subs {
		subs = append(subs, s)
	}
	p.mu.Unlock()

	for _, notify := range subs {
		notify()
	}
}

// View runs a read against the engine under the lock. The engine must not
// escape fn.
func (p *Provider) View(fn func(e *engine.Engine)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.eng)
}

// Subscribe registers an observer called after every mutation. The returned
// function removes the subscription.
func (p *Provider) Subscribe(fn func()) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}
