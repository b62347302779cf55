package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompoundSetGetDelete(t *testing.T) {
	c := NewCompound()
	c.Set("a", NewInt(1))
	c.Set("b", NewInt(2))
	require.Equal(t, 2, c.Len())
	require.EqualValues(t, 1, c.GetChild("a").GetInt64())

	c.Delete("a")
	require.Nil(t, c.GetChild("a"))
	require.Equal(t, 1, c.Len())
}

func TestCompoundSetReplaceMovesToEnd(t *testing.T) {
	c := NewCompound()
	c.Set("a", NewInt(1))
	c.Set("b", NewInt(2))
	c.Set("a", NewInt(3)) // replace: old released, new appended at end

	var names []string
	it := c.EntryIterator()
	for {
		name, _, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, name)
	}
	require.Equal(t, []string{"b", "a"}, names)
	require.EqualValues(t, 3, c.GetChild("a").GetInt64())
}

func TestCompoundSetReleasesOldValue(t *testing.T) {
	c := NewCompound()
	old := NewInt(1)
	c.Set("a", old)
	require.EqualValues(t, 1, old.refCount())

	c.Set("a", NewInt(2))
	require.True(t, old.freed)
}

func TestCompoundNoDuplicateNames(t *testing.T) {
	c := NewCompound(E("x", NewInt(1)), E("x", NewInt(2)))
	require.Equal(t, 1, c.Len())
	require.EqualValues(t, 2, c.GetChild("x").GetInt64())
}

func TestFindChain(t *testing.T) {
	inner := NewCompound(E("byte", NewByte(0)))
	root := NewCompound(E("outer", inner))

	found := root.FindChain("outer", "byte")
	require.NotNil(t, found)
	require.EqualValues(t, 0, found.GetInt64())

	require.Nil(t, root.FindChain("missing"))
	require.Nil(t, root.FindChain("outer", "byte", "toodeep"))
}

func TestFindDepthFirstAcrossListsAndCompounds(t *testing.T) {
	list := NewList(NewInt(1), NewInt(2), NewInt(3))
	b := NewCompound(E("b", list))
	root := NewCompound(E("a", b))

	found := Find(root, "b")
	require.NotNil(t, found)
	require.Equal(t, List, found.Kind())
	require.Equal(t, 3, found.Len())
	require.EqualValues(t, 2, found.Get(1).GetInt64())

	require.Nil(t, Find(root, "nope"))
}

func TestCompoundReleaseFreesChildren(t *testing.T) {
	c := NewCompound()
	child := NewInt(1)
	c.Set("a", child)
	c.Retain()
	c.Release()
	require.True(t, child.freed)
}
