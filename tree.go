package hmt

import (
	"fmt"
	"sync"

	"github.com/gordian-engine/hmt/hmthash"
)

// Tree is one node of a balanced binary Merkle tree.
//
// There are exactly three shapes of tree:
// [Empty], [Leaf], and [Node].
// The set is closed; packages outside hmt cannot add shapes,
// but they can inspect a tree with a type switch over the three.
//
// Trees are immutable once constructed
// and digests are memoized per node,
// so all methods are safe for concurrent use
// as long as the supplied hasher is.
type Tree interface {
	// Digest returns the Merkle digest of this subtree.
	//
	// The digest is computed on first call and memoized,
	// so the underlying hasher runs at most once per node.
	// The caller must not modify the returned slice.
	//
	// Any error from the hasher or from an item's
	// [Hashable.MerkleContent] is returned unchanged,
	// and no partial digest is ever returned alongside it.
	Digest() ([]byte, error)

	// IsEmpty reports whether this tree is the [Empty] shape.
	IsEmpty() bool

	// LeafCount returns the number of leaves in this subtree.
	LeafCount() int

	// Height returns the length of the longest path
	// from this node down to a leaf or empty marker.
	// A tree built from n items has height ceil(log2(n)) for n >= 1.
	Height() int

	// isTree seals the shape set to this package.
	isTree()
}

// emptyDigest is the digest of every Empty tree:
// a zero-length sentinel, never an output of the hasher.
var emptyDigest = []byte{}

// Empty is the tree shape holding no data.
// It stands for a missing subtree,
// and in trees produced by [Build] it only ever appears
// as the whole tree for a zero-item input.
type Empty struct{}

// Digest returns a zero-length byte slice.
// The empty digest is a sentinel by convention;
// it is never fed to the hasher.
func (Empty) Digest() ([]byte, error) { return emptyDigest, nil }

func (Empty) IsEmpty() bool { return true }

func (Empty) LeafCount() int { return 0 }

func (Empty) Height() int { return 0 }

func (Empty) isTree() {}

// Leaf is the tree shape holding exactly one item.
type Leaf struct {
	item   Hashable
	hasher hmthash.Hasher

	once sync.Once
	dig  []byte
	err  error
}

// NewLeaf returns a leaf holding item,
// whose digest is the hash of the item's canonical bytes.
//
// NewLeaf panics if item or h is nil.
func NewLeaf(item Hashable, h hmthash.Hasher) *Leaf {
	if item == nil {
		panic(fmt.Errorf("BUG: NewLeaf requires a non-nil item"))
	}
	if h == nil {
		panic(fmt.Errorf("BUG: NewLeaf requires a non-nil hasher"))
	}

	return &Leaf{item: item, hasher: h}
}

// Item returns the item the leaf was constructed with.
func (l *Leaf) Item() Hashable { return l.item }

func (l *Leaf) Digest() ([]byte, error) {
	l.once.Do(func() {
		content, err := l.item.MerkleContent()
		if err != nil {
			l.err = err
			return
		}

		l.dig, l.err = l.hasher.Sum(content)
	})

	return l.dig, l.err
}

func (*Leaf) IsEmpty() bool { return false }

func (*Leaf) LeafCount() int { return 1 }

func (*Leaf) Height() int { return 0 }

func (*Leaf) isTree() {}

// Node is the tree shape holding exactly two child trees.
type Node struct {
	left, right Tree
	hasher      hmthash.Hasher

	once sync.Once
	dig  []byte
	err  error
}

// NewNode returns a node with the two given children.
// Use [Empty] for a missing side, not nil.
//
// NewNode panics if h or either child is nil.
func NewNode(h hmthash.Hasher, left, right Tree) *Node {
	if h == nil {
		panic(fmt.Errorf("BUG: NewNode requires a non-nil hasher"))
	}
	if left == nil || right == nil {
		panic(fmt.Errorf(
			"BUG: NewNode requires two non-nil children (use Empty for a missing side)",
		))
	}

	return &Node{left: left, right: right, hasher: h}
}

// Left returns the node's left child.
func (n *Node) Left() Tree { return n.left }

// Right returns the node's right child.
func (n *Node) Right() Tree { return n.right }

func (n *Node) Digest() ([]byte, error) {
	n.once.Do(func() {
		n.dig, n.err = n.digest()
	})

	return n.dig, n.err
}

func (n *Node) digest() ([]byte, error) {
	// A lone non-empty child's digest passes through unchanged;
	// the empty digest is a sentinel and must not reach the hasher.
	// Build never produces a node with an empty child,
	// but hand-built shapes can have one.
	if n.left.IsEmpty() {
		return n.right.Digest()
	}
	if n.right.IsEmpty() {
		return n.left.Digest()
	}

	ld, err := n.left.Digest()
	if err != nil {
		return nil, err
	}

	rd, err := n.right.Digest()
	if err != nil {
		return nil, err
	}

	// Raw concatenation, left then right:
	// no separator, no length prefix, no depth tag.
	cat := make([]byte, 0, len(ld)+len(rd))
	cat = append(cat, ld...)
	cat = append(cat, rd...)

	return n.hasher.Sum(cat)
}

func (*Node) IsEmpty() bool { return false }

func (n *Node) LeafCount() int {
	return n.left.LeafCount() + n.right.LeafCount()
}

func (n *Node) Height() int {
	return 1 + max(n.left.Height(), n.right.Height())
}

func (*Node) isTree() {}
