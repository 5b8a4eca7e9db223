// Package reactive provides the small observer primitives the
// orchestrators are built on: a value cell that notifies subscribers
// synchronously, a teardown scope, and a debouncer.
package reactive

import "sync"

// Cell holds a mutable value and notifies subscribers on every Set.
// Notification is synchronous: Set returns after all live subscribers
// have run, so updates triggered by one user action observe each other
// in issue order.
type Cell[T any] struct {
	mu     sync.Mutex
	value  T
	subs   map[int]*subscription[T]
	nextID int
}

type subscription[T any] struct {
	scope *Scope
	fn    func(T)
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[int]*subscription[T]),
	}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	c.value = value
	active := make([]*subscription[T], 0, len(c.subs))
	for _, sub := range c.subs {
		active = append(active, sub)
	}
	c.mu.Unlock()

	for _, sub := range active {
		// A closed scope blocks late notifications.
		if sub.scope != nil && sub.scope.Closed() {
			continue
		}
		sub.fn(value)
	}
}

// Subscribe registers fn and returns an unsubscribe func. The
// subscription is tied to scope: once the scope closes, fn is never
// invoked again, and the subscription is removed on scope teardown.
// fn is immediately invoked with the current value, so derived state
// starts consistent.
func (c *Cell[T]) Subscribe(scope *Scope, fn func(T)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = &subscription[T]{scope: scope, fn: fn}
	current := c.value
	c.mu.Unlock()

	unsubscribe := func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
	if scope != nil {
		scope.OnClose(unsubscribe)
		if scope.Closed() {
			return unsubscribe
		}
	}
	fn(current)
	return unsubscribe
}
