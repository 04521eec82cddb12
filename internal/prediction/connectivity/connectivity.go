// Package connectivity abstracts the host environment's notion of being
// online. The prediction client only depends on the Signal capability, so
// deployments can plug in whatever the platform provides and tests can
// substitute a deterministic double.
package connectivity

import "sync"

// Signal reports whether the host is offline and notifies subscribers on
// online/offline transitions.
type Signal interface {
	IsOffline() bool
	// OnChange registers fn for transitions and returns an unsubscribe func.
	OnChange(fn func(online bool)) (unsubscribe func())
}

// AlwaysOnline is the null signal for environments with no connectivity
// source. It never reports offline and never fires.
type AlwaysOnline struct{}

func (AlwaysOnline) IsOffline() bool { return false }

func (AlwaysOnline) OnChange(func(online bool)) (unsubscribe func()) { return func() {} }

// broadcaster is the shared subscriber bookkeeping for concrete signals.
type broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(online bool)
}

func (b *broadcaster) subscribe(fn func(online bool)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func(online bool))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *broadcaster) notify(online bool) {
	b.mu.Lock()
	fns := make([]func(bool), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}
