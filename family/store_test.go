package family

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeOf(keyFn func(int) string, params ...int) *entryStore[int, string] {
	s := newEntryStore[int, string](ComparableEqualityOf[int](), keyFn)
	for _, p := range params {
		s.insert(&entry[int, string]{
			param:     p,
			cell:      strconv.Itoa(p),
			createdAt: time.Unix(int64(p), 0),
		})
	}
	return s
}

func TestEntryStore_LookupScansInInsertionOrder(t *testing.T) {
	s := storeOf(nil, 1, 2, 3)

	e, ok := s.lookup(2)
	require.True(t, ok)
	assert.Equal(t, "2", e.cell)

	_, ok = s.lookup(99)
	assert.False(t, ok)
}

func TestEntryStore_RemovePreservesOrder(t *testing.T) {
	s := storeOf(nil, 1, 2, 3, 4)

	_, ok := s.remove(2)
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 4}, s.params())

	_, ok = s.remove(2)
	assert.False(t, ok)
	assert.Equal(t, 3, s.len())
}

func TestEntryStore_RemoveIfReturnsRemovedInOrder(t *testing.T) {
	s := storeOf(nil, 1, 2, 3, 4, 5)

	removed := s.removeIf(func(e *entry[int, string]) bool {
		return e.param%2 == 1
	})

	got := make([]int, 0, len(removed))
	for _, e := range removed {
		got = append(got, e.param)
	}
	assert.Equal(t, []int{1, 3, 5}, got)
	assert.Equal(t, []int{2, 4}, s.params())
}

func TestEntryStore_BucketsTrackMutations(t *testing.T) {
	keyFn := func(p int) string {
		// collide on parity to force multi-entry buckets
		return strconv.Itoa(p % 2)
	}
	s := storeOf(keyFn, 1, 2, 3, 4)

	e, ok := s.lookup(3)
	require.True(t, ok)
	assert.Equal(t, "3", e.cell)

	_, ok = s.remove(3)
	require.True(t, ok)
	_, ok = s.lookup(3)
	assert.False(t, ok)

	// the colliding sibling is still reachable through the bucket
	e, ok = s.lookup(1)
	require.True(t, ok)
	assert.Equal(t, "1", e.cell)

	removed := s.removeIf(func(e *entry[int, string]) bool {
		return e.param == 1
	})
	require.Len(t, removed, 1)
	assert.Empty(t, s.buckets[s.hashOf(1)])
	assert.Equal(t, []int{2, 4}, s.params())
}
