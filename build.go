package hmt

import (
	"fmt"

	"github.com/gordian-engine/hmt/hmthash"
)

// Build constructs a balanced Merkle tree over items, in order.
//
// Zero items produce [Empty], one item produces a [Leaf],
// and more than one item produces a [Node]
// whose left subtree covers the first ceil(n/2) items
// and whose right subtree covers the rest,
// recursively.
// Both halves of a two-or-more item split are non-empty,
// so a node built here never has an [Empty] child.
//
// Item order is significant:
// reordering items changes the tree and its root digest.
//
// Build performs no hashing itself;
// digests are computed on the first [Tree.Digest] call.
// Build panics if h is nil.
func Build[T Hashable](items []T, h hmthash.Hasher) Tree {
	if h == nil {
		panic(fmt.Errorf("BUG: Build requires a non-nil hasher"))
	}

	return build(items, h)
}

func build[T Hashable](items []T, h hmthash.Hasher) Tree {
	switch len(items) {
	case 0:
		return Empty{}
	case 1:
		return NewLeaf(items[0], h)
	default:
		mid := (len(items) + 1) / 2
		return NewNode(h, build(items[:mid], h), build(items[mid:], h))
	}
}

// Hash builds the tree for items and returns its root digest,
// without retaining the tree.
//
// For zero items the root digest is a zero-length byte slice,
// not an output of the hasher.
func Hash[T Hashable](items []T, h hmthash.Hasher) ([]byte, error) {
	return Build(items, h).Digest()
}
