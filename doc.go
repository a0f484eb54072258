// Package hmt builds balanced binary Merkle hash trees
// over ordered lists of items.
//
// HMT stands for "halved Merkle tree":
// the tree shape comes from recursively halving the ordered item list,
// with the left half taking the extra item when the count is odd.
// The same ordered list always produces the same shape and,
// with the same hasher, the same root digest.
// Reordering the list changes the root digest.
//
// The digest primitive is supplied by the caller as an
// [github.com/gordian-engine/hmt/hmthash.Hasher].
// Subpackages of hmthash provide standard backends;
// hmtsha512 is the recommended default.
// Items supply their own canonical byte encoding
// through the [Hashable] interface.
//
// When a [Node] has an [Empty] child,
// the digest of the other child passes through unchanged
// rather than being rehashed.
// Trees produced by [Build] never contain such nodes,
// but hand-built shapes can.
// The pass-through rule does not bind a digest to its depth,
// so it is weaker against structural substitution
// than schemes that hash both sides unconditionally.
package hmt
