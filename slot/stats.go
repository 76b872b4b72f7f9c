package slot

// Stats is a snapshot of a container's occupancy.
type Stats struct {
	// Len is the number of occupied ids.
	Len int
	// Extent is the number of physical slots backing the container. It equals
	// Len for Sparse.
	Extent int
	// Free is the number of ids waiting in the free pool.
	Free int
	// StaleFree counts free ids that Add would skip in favour of appending.
	StaleFree int
}

// Vacant returns the number of physical slots that hold no element.
func (s Stats) Vacant() int {
	return s.Extent - s.Len
}
