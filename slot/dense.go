package slot

import "iter"

// Dense stores elements in a contiguous slice indexed by id. Removed slots are
// marked empty and their ids reused last-freed-first. Empty slots at the tail
// are trimmed away on removal.
type Dense[T Identifiable] struct {
	id      ContainerID
	slots   []T
	filled  []bool
	freeIDs []int
	count   int
}

// NewDense creates an empty dense container.
func NewDense[T Identifiable]() *Dense[T] {
	return NewDenseWithCapacity[T](0)
}

// NewDenseWithCapacity creates an empty dense container with room for
// capacity elements before the backing slice grows.
func NewDenseWithCapacity[T Identifiable](capacity int) *Dense[T] {
	return &Dense[T]{
		id:     nextContainerID(),
		slots:  make([]T, 0, capacity),
		filled: make([]bool, 0, capacity),
	}
}

// ID returns the identity this container passes to its elements.
func (c *Dense[T]) ID() ContainerID {
	return c.id
}

// Len returns the number of occupied slots.
func (c *Dense[T]) Len() int {
	return c.count
}

// Extent returns the number of physical slots, occupied or not.
func (c *Dense[T]) Extent() int {
	return len(c.slots)
}

// Has reports whether id is within bounds and not vacated.
func (c *Dense[T]) Has(id int) bool {
	if id < 0 || id >= len(c.slots) {
		return false
	}
	return c.filled[id]
}

// HasElement checks the id e holds for this container.
func (c *Dense[T]) HasElement(e T) bool {
	return c.Has(e.SlotID(c.id))
}

// Get returns the element at id. Out of range and vacated ids report false.
func (c *Dense[T]) Get(id int) (T, bool) {
	if !c.Has(id) {
		var zero T
		return zero, false
	}
	return c.slots[id], true
}

// Add stores e and returns its id. The most recently freed id is reused when
// its slot is still addressable; a free id left behind by a tail trim makes
// Add append instead.
func (c *Dense[T]) Add(e T) int {
	c.count++

	if len(c.freeIDs) > 0 {
		id := c.freeIDs[len(c.freeIDs)-1]
		c.freeIDs = c.freeIDs[:len(c.freeIDs)-1]

		if c.reusable(id) {
			c.slots[id] = e
			c.filled[id] = true
			e.SetSlotID(id, c.id)
			return id
		}
	}

	return c.append(e)
}

// reusable reports whether a free id still names an empty slot inside the
// current bounds. Ids beyond a trimmed tail, and ids whose slot was appended
// to again after the trim, are stale.
func (c *Dense[T]) reusable(id int) bool {
	return id < len(c.slots) && !c.filled[id]
}

// append stores e in a new slot at the end of the slice.
func (c *Dense[T]) append(e T) int {
	id := len(c.slots)
	c.slots = append(c.slots, e)
	c.filled = append(c.filled, true)
	e.SetSlotID(id, c.id)
	return id
}

// Remove vacates id and trims the tail if id was the last slot.
func (c *Dense[T]) Remove(id int) error {
	if !c.Has(id) {
		return notFound(c.id, id)
	}

	var zero T
	c.slots[id] = zero
	c.filled[id] = false
	c.count--

	if id == len(c.slots)-1 {
		c.trim()
	}

	c.freeIDs = append(c.freeIDs, id)
	return nil
}

// trim drops empty slots from the tail. Free ids pointing past the new end
// are left in the pool; Add skips them.
func (c *Dense[T]) trim() {
	end := len(c.slots)
	for end > 0 && !c.filled[end-1] {
		end--
	}
	c.slots = c.slots[:end]
	c.filled = c.filled[:end]
}

// RemoveElement removes e by the id it holds for this container.
func (c *Dense[T]) RemoveElement(e T) error {
	return c.Remove(e.SlotID(c.id))
}

// Values returns the element for each id, the zero T where absent.
func (c *Dense[T]) Values(ids []int) []T {
	return values[T](c, ids)
}

// All iterates over occupied slots in ascending id order.
func (c *Dense[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id := 0; id < len(c.slots); id++ {
			if !c.filled[id] {
				continue
			}
			if !yield(id, c.slots[id]) {
				return
			}
		}
	}
}

// PruneFreeIDs drops stale entries from the free pool and returns how many
// were dropped. Add treats stale entries as a signal to append, so pruning
// changes which id the next Add returns. It is never called implicitly.
func (c *Dense[T]) PruneFreeIDs() int {
	kept := c.freeIDs[:0]
	for _, id := range c.freeIDs {
		if c.reusable(id) {
			kept = append(kept, id)
		}
	}
	dropped := len(c.freeIDs) - len(kept)
	c.freeIDs = kept
	return dropped
}

// Stats counts occupied, physical and free slots.
func (c *Dense[T]) Stats() Stats {
	stale := 0
	for _, id := range c.freeIDs {
		if !c.reusable(id) {
			stale++
		}
	}
	return Stats{
		Len:       c.count,
		Extent:    len(c.slots),
		Free:      len(c.freeIDs),
		StaleFree: stale,
	}
}
