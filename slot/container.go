// Package slot provides containers that hand out stable integer ids to the
// elements they store and reuse the ids freed by removal.
//
// Containers are not safe for concurrent use. Wrap one in Locked, or keep it
// behind a single owner, when more than one goroutine mutates it.
package slot

import "iter"

// Container is the contract shared by the Dense and Sparse storage strategies.
type Container[T Identifiable] interface {
	// ID returns the identity this container passes to its elements.
	ID() ContainerID
	// Len returns the number of occupied ids.
	Len() int
	// Has reports whether id names an occupied slot.
	Has(id int) bool
	// HasElement reports whether the id e holds for this container names an
	// occupied slot.
	HasElement(e T) bool
	// Get returns the element stored under id.
	Get(id int) (T, bool)
	// Add stores e, records the assigned id into e and returns it.
	Add(e T) int
	// Remove releases id. It returns ErrElementNotFound if id is not occupied.
	Remove(id int) error
	// RemoveElement releases the id e holds for this container.
	RemoveElement(e T) error
	// Values looks up every id in order. Absent ids yield the zero T.
	Values(ids []int) []T
	// All iterates over occupied ids and their elements.
	All() iter.Seq2[int, T]
	// Stats returns an occupancy snapshot.
	Stats() Stats
}

var (
	_ Container[*IdentitySet] = (*Dense[*IdentitySet])(nil)
	_ Container[*IdentitySet] = (*Sparse[*IdentitySet])(nil)
	_ Container[*IdentitySet] = (*Locked[*IdentitySet])(nil)
)

func values[T Identifiable](c Container[T], ids []int) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		e, _ := c.Get(id)
		out = append(out, e)
	}
	return out
}
