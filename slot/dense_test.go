package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slots/slot"
)

func fillDense(t *testing.T, n int) *slot.Dense[*Node] {
	t.Helper()
	c := slot.NewDense[*Node]()
	for i := 0; i < n; i++ {
		require.Equal(t, i, c.Add(newNode("n")))
	}
	return c
}

func TestDenseRemoveWithoutTrim(t *testing.T) {
	c := fillDense(t, 3)

	require.NoError(t, c.Remove(1))
	assert.False(t, c.Has(1))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Extent())
}

func TestDenseTrimTail(t *testing.T) {
	c := fillDense(t, 3)

	require.NoError(t, c.Remove(2))
	assert.Equal(t, 2, c.Extent())

	require.NoError(t, c.Remove(1))
	assert.Equal(t, 1, c.Extent())
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, 1, c.Add(newNode("reused")))
	assert.Equal(t, 2, c.Extent())
}

func TestDenseTrimCascades(t *testing.T) {
	c := fillDense(t, 5)

	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Remove(2))
	require.NoError(t, c.Remove(3))
	assert.Equal(t, 5, c.Extent())

	require.NoError(t, c.Remove(4))
	assert.Equal(t, 1, c.Extent())
	assert.True(t, c.Has(0))
}

func TestDenseTrimToEmpty(t *testing.T) {
	c := fillDense(t, 3)

	require.NoError(t, c.Remove(0))
	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Remove(2))

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Extent())
	assert.Equal(t, 0, c.Add(newNode("first again")))
}

func TestDenseScenario(t *testing.T) {
	c := slot.NewDense[*Node]()
	a, b, cc, d := newNode("A"), newNode("B"), newNode("C"), newNode("D")

	assert.Equal(t, 0, c.Add(a))
	assert.Equal(t, 1, c.Add(b))
	assert.Equal(t, 2, c.Add(cc))

	require.NoError(t, c.Remove(1))
	assert.False(t, c.Has(1))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Extent())

	require.NoError(t, c.Remove(2))
	assert.Equal(t, 1, c.Extent())

	assert.Equal(t, 1, c.Add(d))
	assert.Equal(t, 1, d.SlotID(c.ID()))
	got, ok := c.Get(1)
	assert.True(t, ok)
	assert.Same(t, d, got)
	assert.Equal(t, 2, c.Len())
}

// Free ids left behind by a trim fall back to appending.
func TestDenseStaleFreeIdFallback(t *testing.T) {
	c := fillDense(t, 4)

	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Remove(3))
	require.NoError(t, c.Remove(2))
	// Pool is [1 3 2], storage trimmed down to id 0.
	require.Equal(t, 1, c.Extent())
	assert.Equal(t, 3, c.Stats().StaleFree)

	// Pops 2, out of bounds: append.
	assert.Equal(t, 1, c.Add(newNode("x")))
	// Pops 3, out of bounds: append.
	assert.Equal(t, 2, c.Add(newNode("y")))
	// Pops 1, back in bounds but occupied by x: append.
	assert.Equal(t, 3, c.Add(newNode("z")))
	// Pool is empty now.
	assert.Equal(t, 4, c.Add(newNode("w")))

	assert.Equal(t, 5, c.Len())
	for id, n := range c.All() {
		assert.Equal(t, id, n.SlotID(c.ID()))
	}
}

func TestDenseStaleFreeIdDoesNotCorrupt(t *testing.T) {
	c := fillDense(t, 2)
	zero, _ := c.Get(0)

	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Remove(0))
	require.Equal(t, 0, c.Extent())

	a := newNode("a")
	// Pops 0, out of bounds after the trim to empty: append at 0.
	assert.Equal(t, 0, c.Add(a))
	b := newNode("b")
	// Pops 1, out of bounds: append at 1.
	assert.Equal(t, 1, c.Add(b))

	got, _ := c.Get(0)
	assert.Same(t, a, got)
	assert.NotSame(t, zero, got)
	got, _ = c.Get(1)
	assert.Same(t, b, got)
}

func TestDensePruneFreeIDs(t *testing.T) {
	c := fillDense(t, 6)

	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Remove(4))
	require.NoError(t, c.Remove(5))
	// Pool is [1 4 5]; 4 and 5 are past the trimmed tail.
	require.Equal(t, 4, c.Extent())

	assert.Equal(t, 2, c.PruneFreeIDs())
	assert.Equal(t, 0, c.PruneFreeIDs())

	stats := c.Stats()
	assert.Equal(t, 1, stats.Free)
	assert.Equal(t, 0, stats.StaleFree)

	assert.Equal(t, 1, c.Add(newNode("reused")))
	assert.Equal(t, 4, c.Add(newNode("appended")))
}

func TestDenseStats(t *testing.T) {
	c := fillDense(t, 4)
	require.NoError(t, c.Remove(1))

	assert.Equal(t, slot.Stats{Len: 3, Extent: 4, Free: 1}, c.Stats())
	assert.Equal(t, 1, c.Stats().Vacant())
}

func TestDenseWithCapacity(t *testing.T) {
	c := slot.NewDenseWithCapacity[*Node](16)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Extent())
	assert.Equal(t, 0, c.Add(newNode("a")))
}

func TestDenseAllOrdered(t *testing.T) {
	c := fillDense(t, 6)
	require.NoError(t, c.Remove(0))
	require.NoError(t, c.Remove(3))

	var ids []int
	for id := range c.All() {
		ids = append(ids, id)
	}
	assert.Equal(t, []int{1, 2, 4, 5}, ids)
}
