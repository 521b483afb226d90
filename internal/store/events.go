package store

import (
	"sync"

	"mytodo/internal/model"
)

// EventKind enumerates collection change notifications.
type EventKind int

const (
	EventLoaded EventKind = iota
	EventInserted
	EventReplaced
	EventRemoved
	// EventLeftInbox fires when a replace moved a todo from unassigned to a
	// project, so the Inbox view can drop it.
	EventLeftInbox
)

type Event struct {
	Kind EventKind
	Todo model.Todo
}

// Hub is a minimal publish/subscribe container for collection events. It
// replaces the ambient window-level broadcasts the old client used: every
// listener registers explicitly and gets an unsubscribe function back.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Event)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for all future events and returns a cancel
// function. Cancel is idempotent.
func (h *Hub) Subscribe(fn func(Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	h.subs[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Publish delivers the event to every subscriber synchronously, in
// unspecified order.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}
