package store

import (
	"sync"

	"mytodo/internal/model"
)

// Collection is the client-held copy of the todo list. Mutations apply
// immediately, ahead of gateway confirmation, so the UI reacts at local
// speed; the authoritative record replaces the optimistic one when the
// response lands. The collection also tracks which ids were created locally
// and not yet seen in a full refetch, which the Inbox predicate uses to keep
// just-created todos visible.
type Collection struct {
	mu     sync.RWMutex
	todos  []model.Todo
	recent map[int]struct{}
}

func NewCollection() *Collection {
	return &Collection{recent: make(map[int]struct{})}
}

// Load replaces the whole collection with a server-returned list and clears
// the recently-created set: after a full refetch every record is reconciled.
func (c *Collection) Load(todos []model.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.todos = append(c.todos[:0:0], todos...)
	c.recent = make(map[int]struct{})
}

// Todos returns a copy of the current list in order.
func (c *Collection) Todos() []model.Todo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Todo(nil), c.todos...)
}

// Len returns the number of records held.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.todos)
}

// Insert prepends a record so new todos show first. Inserting an id that is
// already present is a no-op, which makes the optimistic insert and the
// confirmed insert safe to apply in either order.
func (c *Collection) Insert(t model.Todo) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.todos {
		if existing.ID == t.ID {
			return false
		}
	}
	c.todos = append([]model.Todo{t}, c.todos...)
	c.recent[t.ID] = struct{}{}
	return true
}

// Replace swaps the record with the same id wholesale. Unknown ids are a
// no-op; a stale response for a record that was deleted meanwhile must not
// resurrect it.
func (c *Collection) Replace(t model.Todo) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.todos {
		if existing.ID == t.ID {
			c.todos[i] = t
			return true
		}
	}
	return false
}

// Remove drops the record with the given id, if present.
func (c *Collection) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.todos {
		if existing.ID == id {
			c.todos = append(c.todos[:i], c.todos[i+1:]...)
			delete(c.recent, id)
			return true
		}
	}
	return false
}

// Get returns the record with the given id.
func (c *Collection) Get(id int) (model.Todo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// RecentlyCreated reports whether the id was inserted locally since the last
// full Load.
func (c *Collection) RecentlyCreated(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.recent[id]
	return ok
}

// Snapshot returns a copy of the list for use in a failure Result, so a
// caller that wants deterministic rollback can restore the pre-mutation
// state with Load.
func (c *Collection) Snapshot() []model.Todo {
	return c.Todos()
}
