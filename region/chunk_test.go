package region

import (
	"path/filepath"
	"testing"

	"github.com/OCharnyshevich/anvilnbt/nbt"
	"github.com/stretchr/testify/require"
)

func TestWriteChunkDocumentReadChunkDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mca")
	r, err := Open(path, true)
	require.NoError(t, err)
	defer r.Close()

	doc := nbt.NewDocument("")
	doc.Root().Set("xPos", nbt.NewInt(12))
	doc.Root().Set("zPos", nbt.NewInt(34))

	require.NoError(t, r.WriteChunkDocument(12, 14, doc, CompressionZlib))
	require.NoError(t, r.Flush())

	got, err := r.ReadChunkDocument(12, 14)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.EqualValues(t, 12, got.Root().GetChild("xPos").GetInt64())
	require.EqualValues(t, 34, got.Root().GetChild("zPos").GetInt64())
}

func TestReadChunkDocumentEmptySlotReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mca")
	r, err := Open(path, true)
	require.NoError(t, err)
	defer r.Close()

	doc, err := r.ReadChunkDocument(9, 9)
	require.NoError(t, err)
	require.Nil(t, doc)
}
