package nbt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintScalarsAndContainers(t *testing.T) {
	root := NewCompound(
		E("int", NewInt(42)),
		E("name", NewString("steve")),
		E("tags", NewList(NewInt(1), NewInt(2))),
	)

	var sb strings.Builder
	require.NoError(t, Print(root, &sb))

	out := sb.String()
	require.Contains(t, out, `"int": 42`)
	require.Contains(t, out, `"name": "steve"`)
	require.Contains(t, out, `"tags": [1, 2]`)
}

func TestPrintByteArray(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Print(NewByteArray([]byte{1, 2, 3}), &sb))
	require.Equal(t, "[1, 2, 3]", sb.String())
}
