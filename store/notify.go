package store

import "sync"

// notifier fans out change notifications per key. Shared by all backends.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func()
}

func (n *notifier) Subscribe(key string, fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[string]map[int]func())
	}
	if n.subs[key] == nil {
		n.subs[key] = make(map[int]func())
	}

	id := n.next
	n.next++
	n.subs[key][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[key], id)
	}
}

func (n *notifier) notify(key string) {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs[key]))
	for _, fn := range n.subs[key] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
