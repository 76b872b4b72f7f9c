package slot

import (
	"iter"
	"sync"
)

// Locked serializes access to a container with a read/write mutex. Reads
// share the lock, Add and Remove take it exclusively.
type Locked[T Identifiable] struct {
	m     *sync.RWMutex
	inner Container[T]
}

// NewLocked wraps inner. inner must not be used directly afterwards.
func NewLocked[T Identifiable](inner Container[T]) *Locked[T] {
	return &Locked[T]{
		m:     new(sync.RWMutex),
		inner: inner,
	}
}

// ID returns the wrapped container's identity. It never changes, so no lock is taken.
func (r *Locked[T]) ID() ContainerID {
	return r.inner.ID()
}

// Len returns the wrapped container's length under the read lock.
func (r *Locked[T]) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.inner.Len()
}

// Has checks id under the read lock.
func (r *Locked[T]) Has(id int) bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.inner.Has(id)
}

// HasElement checks e under the read lock.
func (r *Locked[T]) HasElement(e T) bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.inner.HasElement(e)
}

// Get looks up id under the read lock.
func (r *Locked[T]) Get(id int) (T, bool) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.inner.Get(id)
}

// Add stores e under the write lock.
func (r *Locked[T]) Add(e T) int {
	r.m.Lock()
	defer r.m.Unlock()
	return r.inner.Add(e)
}

// Remove releases id under the write lock.
func (r *Locked[T]) Remove(id int) error {
	r.m.Lock()
	defer r.m.Unlock()
	return r.inner.Remove(id)
}

// RemoveElement releases e under the write lock.
func (r *Locked[T]) RemoveElement(e T) error {
	r.m.Lock()
	defer r.m.Unlock()
	return r.inner.RemoveElement(e)
}

// Values looks up ids under a single read lock.
func (r *Locked[T]) Values(ids []int) []T {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.inner.Values(ids)
}

// All iterates over a snapshot taken under the read lock when All is called,
// so the loop body may call back into the container.
func (r *Locked[T]) All() iter.Seq2[int, T] {
	r.m.RLock()
	var (
		ids   []int
		elems []T
	)
	for id, e := range r.inner.All() {
		ids = append(ids, id)
		elems = append(elems, e)
	}
	r.m.RUnlock()

	return func(yield func(int, T) bool) {
		for i, id := range ids {
			if !yield(id, elems[i]) {
				return
			}
		}
	}
}

// Stats snapshots occupancy under the read lock.
func (r *Locked[T]) Stats() Stats {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.inner.Stats()
}

// Update runs fn with exclusive access to the wrapped container.
func (r *Locked[T]) Update(fn func(c Container[T]) error) error {
	r.m.Lock()
	defer r.m.Unlock()
	return fn(r.inner)
}
