// Package window provides a bounded FIFO of the most recently pushed items.
package window

import "github.com/bft-labs/frameblend/internal/domain"

// Window is a fixed-capacity FIFO backed by a ring buffer. Pushing into a
// full window evicts the oldest item. A Window holds whatever values it is
// given; for frames these are views, so no pixel data is copied.
//
// A Window is not safe for concurrent use.
type Window[T any] struct {
	buf  []T
	head int // index of the oldest item
	n    int
}

// New creates an empty window. It fails with domain.ErrInvalidCapacity when
// capacity is less than one.
func New[T any](capacity int) (*Window[T], error) {
	if capacity < 1 {
		return nil, domain.ErrInvalidCapacity
	}
	return &Window[T]{buf: make([]T, capacity)}, nil
}

// Push appends v, evicting the oldest item first when the window is full.
func (w *Window[T]) Push(v T) {
	if w.n == len(w.buf) {
		w.buf[w.head] = v
		w.head = (w.head + 1) % len(w.buf)
		return
	}
	w.buf[(w.head+w.n)%len(w.buf)] = v
	w.n++
}

// Snapshot returns the current contents, oldest first, in a new slice.
// The window is not modified, and later pushes do not affect the result.
func (w *Window[T]) Snapshot() []T {
	out := make([]T, w.n)
	// Oldest run is buf[head:], the wrapped remainder is buf[:head].
	k := copy(out, w.buf[w.head:min(w.head+w.n, len(w.buf))])
	copy(out[k:], w.buf[:w.n-k])
	return out
}

// Len returns the number of items currently held.
func (w *Window[T]) Len() int {
	return w.n
}

// Cap returns the window capacity.
func (w *Window[T]) Cap() int {
	return len(w.buf)
}
