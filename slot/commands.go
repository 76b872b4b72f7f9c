package slot

import "errors"

// Commands buffers structural changes so they can be applied to a container
// later, for example after an iteration over All has finished.
type Commands[T Identifiable] struct {
	adds           []T
	removes        []int
	removeElements []T
}

// NewCommands creates an empty command buffer.
func NewCommands[T Identifiable]() *Commands[T] {
	return &Commands[T]{}
}

// Add queues an element insertion.
func (c *Commands[T]) Add(e T) {
	c.adds = append(c.adds, e)
}

// Remove queues a removal by id.
func (c *Commands[T]) Remove(id int) {
	c.removes = append(c.removes, id)
}

// RemoveElement queues a removal by element. The element's id is resolved
// at flush time against the target container.
func (c *Commands[T]) RemoveElement(e T) {
	c.removeElements = append(c.removeElements, e)
}

// Pending returns the number of queued operations.
func (c *Commands[T]) Pending() int {
	return len(c.adds) + len(c.removes) + len(c.removeElements)
}

// Flush applies removals by id, then removals by element, then insertions,
// each in the order they were queued. It returns the ids assigned to the
// queued elements and every removal error joined together. The buffer is
// reset whether or not an error occurred.
func (c *Commands[T]) Flush(target Container[T]) ([]int, error) {
	var errs []error

	for _, id := range c.removes {
		if err := target.Remove(id); err != nil {
			errs = append(errs, err)
		}
	}

	for _, e := range c.removeElements {
		if err := target.RemoveElement(e); err != nil {
			errs = append(errs, err)
		}
	}

	ids := make([]int, 0, len(c.adds))
	for _, e := range c.adds {
		ids = append(ids, target.Add(e))
	}

	clear(c.adds)
	clear(c.removeElements)
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.removeElements = c.removeElements[:0]

	return ids, errors.Join(errs...)
}
