package hmt

// Hashable is the capability an item must provide
// to be placed in a Merkle tree:
// a canonical byte encoding of the item's logical value.
//
// The encoding must be stable —
// the same logical value must yield the same bytes on every call —
// because those bytes are the direct input to the leaf digest.
type Hashable interface {
	// MerkleContent returns the item's canonical bytes.
	// An encoding failure aborts the in-progress digest computation
	// and surfaces unchanged from [Tree.Digest].
	MerkleContent() ([]byte, error)
}

// String is a Hashable for textual items.
// Its canonical encoding is the string's UTF-8 bytes.
type String string

func (s String) MerkleContent() ([]byte, error) { return []byte(s), nil }

// Bytes is a Hashable for items that already are
// a canonical byte sequence; the encoding is the slice as-is.
// The slice must not be mutated once the item is in a tree.
type Bytes []byte

func (b Bytes) MerkleContent() ([]byte, error) { return b, nil }
