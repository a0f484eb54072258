package hmt_test

import (
	"testing"

	"github.com/gordian-engine/hmt"
	"github.com/stretchr/testify/require"
)

func TestString_utf8Content(t *testing.T) {
	t.Parallel()

	content, err := hmt.String("héllo").MerkleContent()
	require.NoError(t, err)
	require.Equal(t, []byte("h\xc3\xa9llo"), content)
}

func TestBytes_rawContent(t *testing.T) {
	t.Parallel()

	raw := []byte{0x00, 0xff, 0x10}

	content, err := hmt.Bytes(raw).MerkleContent()
	require.NoError(t, err)
	require.Equal(t, raw, content)
}

func TestStringAndBytes_sameEncodingSameDigest(t *testing.T) {
	t.Parallel()

	fromString, err := hmt.Hash([]hmt.String{"a", "b"}, fnv32Hasher{})
	require.NoError(t, err)

	fromBytes, err := hmt.Hash([]hmt.Bytes{[]byte("a"), []byte("b")}, fnv32Hasher{})
	require.NoError(t, err)

	require.Equal(t, fromString, fromBytes)
}
