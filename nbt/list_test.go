package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListElementKindFixedOnFirstInsert(t *testing.T) {
	l := NewList()
	require.Equal(t, End, l.ElementKind())

	a := NewInt(1)
	l.Insert(0, a)
	require.Equal(t, Int, l.ElementKind())

	mismatched := NewString("nope")
	l.Insert(l.Len(), mismatched)
	require.Equal(t, 1, l.Len(), "mismatched kind insert should be a no-op")
}

func TestListInsertClampsOutOfRange(t *testing.T) {
	l := NewList()
	l.SetElementKind(Int)
	l.Insert(50, NewInt(1)) // beyond length, clamps to append
	l.Insert(50, NewInt(2))
	require.Equal(t, 2, l.Len())
	require.EqualValues(t, 1, l.Get(0).GetInt64())
	require.EqualValues(t, 2, l.Get(1).GetInt64())
}

func TestListInsertAtFrontAndMiddle(t *testing.T) {
	l := NewList()
	l.SetElementKind(Int)
	l.Insert(0, NewInt(1))
	l.Insert(0, NewInt(2)) // front
	l.Insert(1, NewInt(3)) // middle

	var got []int64
	it := l.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v.GetInt64())
	}
	require.Equal(t, []int64{2, 3, 1}, got)
}

func TestListDeleteReleases(t *testing.T) {
	l := NewList()
	l.SetElementKind(Int)
	child := NewInt(7)
	l.Insert(0, child)
	require.EqualValues(t, 1, child.refCount())

	l.DeleteAt(0)
	require.Equal(t, 0, l.Len())
	require.True(t, child.freed)
}

func TestListReverse(t *testing.T) {
	l := NewList()
	l.SetElementKind(Int)
	for i := int32(1); i <= 3; i++ {
		l.Insert(l.Len(), NewInt(i))
	}
	l.Reverse()
	require.EqualValues(t, 3, l.Get(0).GetInt64())
	require.EqualValues(t, 2, l.Get(1).GetInt64())
	require.EqualValues(t, 1, l.Get(2).GetInt64())
}

func TestSetElementKindFailsOnNonEmptyMismatch(t *testing.T) {
	l := NewList()
	l.SetElementKind(Int)
	l.Insert(0, NewInt(1))
	l.SetElementKind(String) // non-fatal no-op
	require.Equal(t, Int, l.ElementKind())
}
