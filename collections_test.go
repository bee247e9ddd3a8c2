package thicket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOfMaps(t *testing.T) {
	v := mustParse(t, "- a: 1\n  b: 2\n- a: 3\n  b: 4\n")
	items, ok := v.List()
	require.True(t, ok)
	require.Len(t, items, 2)

	m0, ok := items[0].Map()
	require.True(t, ok)
	a0, _ := m0.Get(String("a"))
	i0, _ := a0.Int()
	assert.EqualValues(t, 1, i0)

	m1, ok := items[1].Map()
	require.True(t, ok)
	b1, _ := m1.Get(String("b"))
	i1, _ := b1.Int()
	assert.EqualValues(t, 4, i1)
}

func TestMapOfLists(t *testing.T) {
	v := mustParse(t, "nums:\n    - 1\n    - 2\n    - 3\n")
	m, ok := v.Map()
	require.True(t, ok)
	nums, ok := m.Get(String("nums"))
	require.True(t, ok)
	items, ok := nums.List()
	require.True(t, ok)
	require.Len(t, items, 3)
}

func TestMapDuplicateKeyLastWriteWins(t *testing.T) {
	m := NewMap()
	m.Set(String("k"), Int(1))
	m.Set(String("k"), Int(2))
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(String("k"))
	require.True(t, ok)
	i, _ := v.Int()
	assert.EqualValues(t, 2, i)
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	v := mustParse(t, "z: 1\na: 2\nm: 3\n")
	m, ok := v.Map()
	require.True(t, ok)
	entries := m.Entries()
	require.Len(t, entries, 3)

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i], _ = e.Key.String_()
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestDashFollowedByDigitIsNumberNotListItem(t *testing.T) {
	_, err := ParseString("-1\n")
	// "-1" is a negative number, not a list item; this must parse fine.
	require.NoError(t, err)
}

func TestBadListItemDashWithoutSeparator(t *testing.T) {
	_, err := ParseString("- 1\n-x\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Bad list item")
}

func TestEmptyBlockAfterColonIsError(t *testing.T) {
	_, err := ParseString("key:\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Empty block")
}

func TestMapKeyCannotBeColon(t *testing.T) {
	_, err := ParseString("a: 1\n: 2\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Map key expected and it cannot start with colon")
}

func TestMapKeyCannotBeList(t *testing.T) {
	_, err := ParseString("a: 1\n- 2\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Map key expected and it cannot be a list")
}
