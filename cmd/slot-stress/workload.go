package main

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/plus3/slots/slot"
)

type Item struct {
	slot.IdentitySet
	Seq int
}

func newContainer(strategy string) slot.Container[*Item] {
	switch strategy {
	case "sparse":
		return slot.NewSparse[*Item]()
	case "locked":
		return slot.NewLocked[*Item](slot.NewDense[*Item]())
	default:
		return slot.NewDense[*Item]()
	}
}

// Workload drives random adds and removes against a container and keeps its
// own record of what should be stored, to check the container against.
type Workload struct {
	container slot.Container[*Item]
	rng       *rand.Rand
	addRatio  float64

	live  []*Item
	seq   int
	maxID int

	Adds    int64
	Removes int64
}

func NewWorkload(container slot.Container[*Item], rng *rand.Rand, addRatio float64) *Workload {
	return &Workload{
		container: container,
		rng:       rng,
		addRatio:  addRatio,
	}
}

func (w *Workload) Populate(n int) {
	for i := 0; i < n; i++ {
		w.add()
	}
}

// Step performs a single add or remove.
func (w *Workload) Step() error {
	if len(w.live) == 0 || w.rng.Float64() < w.addRatio {
		w.add()
		return nil
	}
	return w.remove()
}

func (w *Workload) add() {
	item := &Item{Seq: w.seq}
	w.seq++

	id := w.container.Add(item)
	if id+1 > w.maxID {
		w.maxID = id + 1
	}
	w.live = append(w.live, item)
	w.Adds++
}

func (w *Workload) remove() error {
	i := w.rng.Intn(len(w.live))
	item := w.live[i]

	if err := w.container.RemoveElement(item); err != nil {
		return errors.Wrapf(err, "remove item %d", item.Seq)
	}

	last := len(w.live) - 1
	w.live[i] = w.live[last]
	w.live[last] = nil
	w.live = w.live[:last]
	w.Removes++
	return nil
}

// Check verifies that the container agrees with the workload's own record.
func (w *Workload) Check() error {
	if got, want := w.container.Len(), len(w.live); got != want {
		return errors.Errorf("len: container reports %d, expected %d", got, want)
	}

	occupied := 0
	for id := 0; id < w.maxID; id++ {
		if w.container.Has(id) {
			occupied++
		}
	}
	if occupied != len(w.live) {
		return errors.Errorf("occupied ids: found %d, expected %d", occupied, len(w.live))
	}

	for _, item := range w.live {
		id := item.SlotID(w.container.ID())
		got, ok := w.container.Get(id)
		if !ok || got != item {
			return errors.Errorf("item %d: id %d does not resolve back to it", item.Seq, id)
		}
	}
	return nil
}

func (w *Workload) Live() int {
	return len(w.live)
}
