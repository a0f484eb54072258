// Package hmthash defines the digest primitive
// consumed by the hmt Merkle tree.
//
// Subpackages provide standard backends:
// hmtsha512 (the recommended default), hmtsha256,
// hmtblake2b, and hmtblake3.
// The hmthashtest subpackage holds a compliance suite
// for third-party implementations.
package hmthash

// Hasher is the user-supplied cryptographic digest function
// applied at every level of a Merkle tree:
// to each leaf's canonical bytes,
// and to the concatenation of sibling digests at each node.
//
// Sum must be deterministic and its output a fixed length.
// Implementations must be safe to call concurrently;
// typically that means a fresh digest state per Sum call
// rather than a shared one.
type Hasher interface {
	// Sum returns the digest of in.
	// The error return accommodates fallible backends;
	// implementations over standard cryptographic hashes
	// always return a nil error.
	Sum(in []byte) ([]byte, error)

	// Size returns the digest length in bytes.
	Size() int
}
