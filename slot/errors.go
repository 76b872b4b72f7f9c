package slot

import "github.com/pkg/errors"

// ErrElementNotFound is returned by Remove and RemoveElement when the id does
// not name an occupied slot. Lookups report absence with a bool instead.
var ErrElementNotFound = errors.New("element not found")

func notFound(owner ContainerID, id int) error {
	return errors.WithMessagef(ErrElementNotFound, "container %d: id %d", owner, id)
}
