package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntAccessorsTruncate(t *testing.T) {
	b := NewByte(0)
	b.SetInt64(0x1FF) // truncates to int8
	require.EqualValues(t, -1, b.GetInt64())

	sh := NewShort(0)
	sh.SetInt64(0x1FFFF)
	require.EqualValues(t, -1, sh.GetInt64()) // 0x1FFFF wraps to int16 -1

	i := NewInt(0)
	i.SetInt64(0x1_0000_0001)
	require.EqualValues(t, 1, i.GetInt64()) // 0x1_0000_0001 wraps to int32 1

	l := NewLong(0)
	l.SetInt64(123456789)
	require.EqualValues(t, 123456789, l.GetInt64())
}

func TestFloatAccessors(t *testing.T) {
	f := NewFloat(0)
	f.SetFloat64(3.5)
	require.InDelta(t, 3.5, f.GetFloat64(), 0.0001)

	d := NewDouble(0)
	d.SetFloat64(3.14159265358979)
	require.InDelta(t, 3.14159265358979, d.GetFloat64(), 1e-12)
}

func TestWrongKindAccessorIsNoOp(t *testing.T) {
	i := NewInt(5)
	require.Zero(t, i.GetFloat64())
	i.SetFloat64(9.0)
	require.EqualValues(t, 5, i.GetInt64())
}

func TestByteArraySetGet(t *testing.T) {
	a := NewByteArray([]byte{1, 2, 3})
	require.Equal(t, []byte{1, 2, 3}, a.ByteArrayData())
	a.SetByteArray([]byte{9, 9})
	require.Equal(t, []byte{9, 9}, a.ByteArrayData())
	require.Equal(t, 2, a.Len())
}

func TestStringSetGet(t *testing.T) {
	s := NewString("hello")
	require.Equal(t, "hello", s.StringValue())
	s.SetString("")
	require.Equal(t, "", s.StringValue())
}

func TestReferenceCounting(t *testing.T) {
	child := NewInt(1)
	require.EqualValues(t, 0, child.refCount())

	list := NewList()
	list.SetElementKind(Int)
	list.Insert(0, child)
	require.EqualValues(t, 1, child.refCount())

	child.Retain()
	require.EqualValues(t, 2, child.refCount())

	child.Release()
	require.EqualValues(t, 1, child.refCount())

	list.Release()
	require.True(t, child.freed)
}

func TestReleaseAlreadyFreedIsNoOp(t *testing.T) {
	c := NewInt(1)
	c.Retain()
	c.Release()
	require.True(t, c.freed)
	require.NotPanics(t, func() { c.Release() })
}

func TestKindStringFormat(t *testing.T) {
	require.Contains(t, Compound.String(), "TAG_Compound")
	require.Contains(t, Kind(200).String(), "Unknown")
}
