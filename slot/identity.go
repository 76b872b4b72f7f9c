package slot

import "sync/atomic"

// ContainerID identifies a single container instance. It is what an element
// uses to tell apart the ids handed out by different containers.
type ContainerID uint64

// NoID is reported by an element for a container that never assigned it an id.
const NoID = -1

var lastContainerID atomic.Uint64

// nextContainerID returns a process-unique, non-zero ContainerID
func nextContainerID() ContainerID {
	return ContainerID(lastContainerID.Add(1))
}

// Identifiable is implemented by every element that can be stored in a
// container. The element owns the mapping from container to id; the
// container only records the id it assigned through SetSlotID.
type Identifiable interface {
	// SlotID returns the id last assigned by owner. The result is only
	// meaningful after a successful Add on that owner.
	SlotID(owner ContainerID) int
	// SetSlotID records the id assigned by owner. Containers call it once
	// per successful Add.
	SetSlotID(id int, owner ContainerID)
}

type membership struct {
	owner ContainerID
	id    int
}

// IdentitySet is an embeddable Identifiable implementation. Elements rarely
// live in more than a handful of containers, so memberships are kept in a
// small slice rather than a map.
type IdentitySet struct {
	members []membership
}

// SlotID returns the id assigned by owner, or NoID.
func (s *IdentitySet) SlotID(owner ContainerID) int {
	for _, m := range s.members {
		if m.owner == owner {
			return m.id
		}
	}
	return NoID
}

// SetSlotID records the id assigned by owner, replacing any earlier one.
func (s *IdentitySet) SetSlotID(id int, owner ContainerID) {
	for i := range s.members {
		if s.members[i].owner == owner {
			s.members[i].id = id
			return
		}
	}
	s.members = append(s.members, membership{owner: owner, id: id})
}

// Owners returns the containers that have assigned an id to this element,
// in the order they first did so.
func (s *IdentitySet) Owners() []ContainerID {
	owners := make([]ContainerID, 0, len(s.members))
	for _, m := range s.members {
		owners = append(owners, m.owner)
	}
	return owners
}
