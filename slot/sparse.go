package slot

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const defaultSparseCapacity = 64

// Sparse stores elements in a hash map keyed by id. Removal deletes the map
// entry, so there is nothing to trim. Freed ids are reused last-freed-first.
type Sparse[T Identifiable] struct {
	id      ContainerID
	slots   *intmap.Map[int, T]
	freeIDs []int
}

// NewSparse creates an empty sparse container.
func NewSparse[T Identifiable]() *Sparse[T] {
	return NewSparseWithCapacity[T](defaultSparseCapacity)
}

// NewSparseWithCapacity creates an empty sparse container sized for capacity
// elements.
func NewSparseWithCapacity[T Identifiable](capacity int) *Sparse[T] {
	return &Sparse[T]{
		id:    nextContainerID(),
		slots: intmap.New[int, T](capacity),
	}
}

// ID returns the identity this container passes to its elements.
func (c *Sparse[T]) ID() ContainerID {
	return c.id
}

// Len returns the number of stored elements.
func (c *Sparse[T]) Len() int {
	return c.slots.Len()
}

// Has reports whether id has a map entry.
func (c *Sparse[T]) Has(id int) bool {
	_, ok := c.slots.Get(id)
	return ok
}

// HasElement checks the id e holds for this container.
func (c *Sparse[T]) HasElement(e T) bool {
	return c.Has(e.SlotID(c.id))
}

// Get returns the element stored under id.
func (c *Sparse[T]) Get(id int) (T, bool) {
	return c.slots.Get(id)
}

// Add stores e and returns its id. With an empty free pool the occupied ids
// are exactly 0..Len()-1, so Len() is the next unused id.
func (c *Sparse[T]) Add(e T) int {
	var id int
	if len(c.freeIDs) > 0 {
		id = c.freeIDs[len(c.freeIDs)-1]
		c.freeIDs = c.freeIDs[:len(c.freeIDs)-1]
	} else {
		id = c.slots.Len()
	}

	e.SetSlotID(id, c.id)
	c.slots.Put(id, e)
	return id
}

// Remove deletes the entry for id and frees the id.
func (c *Sparse[T]) Remove(id int) error {
	if !c.Has(id) {
		return notFound(c.id, id)
	}
	c.slots.Del(id)
	c.freeIDs = append(c.freeIDs, id)
	return nil
}

// RemoveElement removes e by the id it holds for this container.
func (c *Sparse[T]) RemoveElement(e T) error {
	return c.Remove(e.SlotID(c.id))
}

// Values returns the element for each id, the zero T where absent.
func (c *Sparse[T]) Values(ids []int) []T {
	return values[T](c, ids)
}

// All iterates over occupied ids in no particular order.
func (c *Sparse[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c.slots.ForEach(func(id int, e T) bool {
			return yield(id, e)
		})
	}
}

// Stats reports the map size; there are never vacant or stale slots.
func (c *Sparse[T]) Stats() Stats {
	return Stats{
		Len:    c.slots.Len(),
		Extent: c.slots.Len(),
		Free:   len(c.freeIDs),
	}
}
