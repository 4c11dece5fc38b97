package cell_test

import (
	"testing"

	"github.com/on-the-ground/react_ive_go/cell"

	"github.com/stretchr/testify/assert"
)

func TestReadonly_HoldsConstructionValue(t *testing.T) {
	c := cell.Of(42)
	assert.Equal(t, 42, c.Value())
}

func TestWritable_SetReplacesValue(t *testing.T) {
	c := cell.WritableOf("before")
	assert.Equal(t, "before", c.Value())

	c.Set("after")
	assert.Equal(t, "after", c.Value())
}

func TestDerived_ComputesOnEveryRead(t *testing.T) {
	n := 0
	c := cell.DerivedOf(func() int {
		n++
		return n
	})

	assert.Equal(t, 1, c.Value())
	assert.Equal(t, 2, c.Value())
}

func TestDerived_NilComputePanics(t *testing.T) {
	assert.Panics(t, func() {
		cell.DerivedOf[int](nil)
	})
}

func TestCellInterface_CoversAllVariants(t *testing.T) {
	cells := []cell.Cell[int]{
		cell.Of(1),
		cell.WritableOf(1),
		cell.DerivedOf(func() int { return 1 }),
	}
	for _, c := range cells {
		assert.Equal(t, 1, c.Value())
	}
}
