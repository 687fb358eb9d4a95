package enum_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/enumkit/pkg/enum"
)

func TestLookup(t *testing.T) {
	view, ok := enum.Lookup("ticket_state")
	require.True(t, ok)
	assert.Equal(t, "ticket_state", view.Name())
	assert.Equal(t, 4, view.Len())

	_, ok = enum.Lookup("no_such_set")
	assert.False(t, ok)
}

func TestSets_SortedByName(t *testing.T) {
	views := enum.Sets()
	require.NotEmpty(t, views)

	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name()
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "ticket_state")
	assert.Contains(t, names, "file_permission")
}

// TestSetView_TypeErasedReads drives a set through the directory interface
// the way a generic consumer would.
func TestSetView_TypeErasedReads(t *testing.T) {
	view, ok := enum.Lookup("ticket_state")
	require.True(t, ok)

	ids := view.Identities()
	require.Len(t, ids, 4)
	assert.Equal(t, "Open", ids[0].Text)

	sorted := view.SortedIdentities()
	assert.Equal(t, "In Review", sorted[0].Text)

	visible := view.VisibleIdentities()
	require.Len(t, visible, 3)

	def, ok := view.DefaultIdentity()
	require.True(t, ok)
	assert.Equal(t, "Open", def.Text)

	hit, ok := view.ParseIdentity("in review", enum.MatchFold)
	require.True(t, ok)
	assert.Equal(t, int32(2), hit.Value)

	_, ok = view.ParseIdentity("bogus", enum.MatchExact)
	assert.False(t, ok)
}
