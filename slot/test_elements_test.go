package slot_test

import "github.com/plus3/slots/slot"

// Common test element types
type Node struct {
	slot.IdentitySet
	Name string
}

func newNode(name string) *Node {
	return &Node{Name: name}
}

type factory struct {
	name string
	new  func() slot.Container[*Node]
}

var strategies = []factory{
	{name: "dense", new: func() slot.Container[*Node] { return slot.NewDense[*Node]() }},
	{name: "sparse", new: func() slot.Container[*Node] { return slot.NewSparse[*Node]() }},
	{name: "locked", new: func() slot.Container[*Node] { return slot.NewLocked[*Node](slot.NewDense[*Node]()) }},
}

func occupied(c slot.Container[*Node], upTo int) int {
	n := 0
	for id := 0; id < upTo; id++ {
		if c.Has(id) {
			n++
		}
	}
	return n
}
