package revset_test

import (
	"testing"

	"github.com/katalvlaran/findminhs/revset"
	"github.com/stretchr/testify/require"
)

func TestSet_LiveAfterConstruction(t *testing.T) {
	s := revset.New([]uint32{0, 1, 2, 3})
	require.Equal(t, 4, s.Len())
	require.ElementsMatch(t, []uint32{0, 1, 2, 3}, s.Live())
}

func TestSet_DeleteRestoreIsReversible(t *testing.T) {
	s := revset.New([]uint32{0, 1, 2, 3, 4})

	s.Delete(2)
	s.Delete(0)
	s.Delete(4)
	require.ElementsMatch(t, []uint32{1, 3}, s.Live())
	require.True(t, s.IsDeleted(0))
	require.True(t, s.IsDeleted(2))
	require.True(t, s.IsDeleted(4))
	require.False(t, s.IsDeleted(1))

	// Restores must mirror deletes in reverse order.
	s.Restore(4)
	s.Restore(0)
	s.Restore(2)
	require.ElementsMatch(t, []uint32{0, 1, 2, 3, 4}, s.Live())
	require.Equal(t, 5, s.Len())
	for _, id := range []uint32{0, 1, 2, 3, 4} {
		require.False(t, s.IsDeleted(id))
	}
}

func TestSet_NestedDeleteRestore(t *testing.T) {
	s := revset.New([]uint32{0, 1, 2})

	s.Delete(1)
	s.Delete(0)
	s.Restore(0)
	s.Delete(2)
	s.Restore(2)
	s.Restore(1)

	require.ElementsMatch(t, []uint32{0, 1, 2}, s.Live())
}
