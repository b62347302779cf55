package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripMinimalDocument(t *testing.T) {
	doc := NewDocument("")
	raw := Write(doc)

	decoded, err := Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "", decoded.RootName())
	require.Equal(t, 0, decoded.Root().Len())
}

func TestRoundTripGamemodeEdit(t *testing.T) {
	doc := NewDocument("")
	data := NewCompound(
		E("GameType", NewInt(0)),
		E("Difficulty", NewByte(2)),
		E("LevelName", NewString("New World")),
	)
	doc.Root().Set("Data", data)

	raw := Write(doc)
	decoded, err := Parse(raw)
	require.NoError(t, err)

	got := decoded.FindChain("Data", "GameType")
	require.NotNil(t, got)
	require.EqualValues(t, 0, got.GetInt64())

	got.SetInt64(1) // edit gamemode
	require.EqualValues(t, 1, decoded.FindChain("Data", "GameType").GetInt64())

	reencoded := Write(decoded)
	redecoded, err := Parse(reencoded)
	require.NoError(t, err)
	require.EqualValues(t, 1, redecoded.FindChain("Data", "GameType").GetInt64())
	require.Equal(t, "New World", redecoded.FindChain("Data", "LevelName").StringValue())
}

func TestRoundTripDeepSearch(t *testing.T) {
	inventory := NewList(
		NewCompound(E("id", NewString("stick")), E("Count", NewByte(1))),
		NewCompound(E("id", NewString("torch")), E("Count", NewByte(16))),
	)
	player := NewCompound(E("Inventory", inventory))
	data := NewCompound(E("Player", player))

	doc := NewDocument("root")
	doc.Root().Set("Data", data)

	raw := Write(doc)
	decoded, err := Parse(raw)
	require.NoError(t, err)

	found := decoded.Find("Inventory")
	require.NotNil(t, found)
	require.Equal(t, List, found.Kind())
	require.Equal(t, 2, found.Len())
	require.Equal(t, "torch", found.Get(1).GetChild("id").StringValue())
}

func TestRoundTripAllScalarKinds(t *testing.T) {
	doc := NewDocument("root")
	doc.Root().Set("byte", NewByte(-5))
	doc.Root().Set("short", NewShort(-1000))
	doc.Root().Set("int", NewInt(123456))
	doc.Root().Set("long", NewLong(-9000000000))
	doc.Root().Set("float", NewFloat(1.5))
	doc.Root().Set("double", NewDouble(3.14159265358979))
	doc.Root().Set("bytes", NewByteArray([]byte{1, 2, 3, 4}))
	doc.Root().Set("str", NewString("hello world"))

	raw := Write(doc)
	decoded, err := Parse(raw)
	require.NoError(t, err)

	require.EqualValues(t, -5, decoded.Root().GetChild("byte").GetInt64())
	require.EqualValues(t, -1000, decoded.Root().GetChild("short").GetInt64())
	require.EqualValues(t, 123456, decoded.Root().GetChild("int").GetInt64())
	require.EqualValues(t, -9000000000, decoded.Root().GetChild("long").GetInt64())
	require.InDelta(t, 1.5, decoded.Root().GetChild("float").GetFloat64(), 0.0001)
	require.InDelta(t, 3.14159265358979, decoded.Root().GetChild("double").GetFloat64(), 1e-12)
	require.Equal(t, []byte{1, 2, 3, 4}, decoded.Root().GetChild("bytes").ByteArrayData())
	require.Equal(t, "hello world", decoded.Root().GetChild("str").StringValue())
}

func TestParseRejectsNonCompoundRoot(t *testing.T) {
	buf := []byte{byte(Byte), 0, 0, 5} // kind=Byte, name-len=0, payload
	_, err := Parse(buf)
	require.Error(t, err)
}

func TestParseTruncatedStreamIsError(t *testing.T) {
	doc := NewDocument("root")
	doc.Root().Set("int", NewInt(1))
	raw := Write(doc)

	_, err := Parse(raw[:len(raw)-2])
	require.Error(t, err)
}

func TestParseUnknownKindByte(t *testing.T) {
	// TAG_Compound header, then an entry with an invalid kind byte (11).
	buf := []byte{byte(Compound), 0, 0, 11}
	_, err := Parse(buf)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestWriteNeverGzipFrames(t *testing.T) {
	doc := NewDocument("root")
	raw := Write(doc)
	require.False(t, len(raw) >= 2 && raw[0] == 0x1F && raw[1] == 0x8B)
}
