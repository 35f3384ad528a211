// Package events holds the small signaling primitives the player is
// built on: ordered synchronous slots and settled completion channels.
package events

// Slot is a minimal publish/subscribe primitive. Listeners are invoked
// synchronously, in the order they subscribed. The zero value is an
// empty slot ready for use.
//
// Slot is not safe for concurrent use. The player drives all slots from
// its own goroutine.
type Slot[T any] struct {
	listeners []func(T)
}

// Subscribe registers fn to be called on every subsequent Emit.
func (s *Slot[T]) Subscribe(fn func(T)) {
	s.listeners = append(s.listeners, fn)
}

// Emit calls every registered listener with v, in subscription order.
func (s *Slot[T]) Emit(v T) {
	for _, fn := range s.listeners {
		fn(v)
	}
}

// Len reports the number of registered listeners.
func (s *Slot[T]) Len() int {
	return len(s.listeners)
}
