package hmt

// concurrentForkDepth bounds how far down the tree
// ConcurrentDigest keeps forking goroutines.
// Past this depth subtrees are digested sequentially,
// which keeps the goroutine count at most 2^concurrentForkDepth
// regardless of input size.
const concurrentForkDepth = 4

// ConcurrentDigest computes t's root digest,
// evaluating sibling subtrees on separate goroutines
// near the top of the tree.
//
// The result is byte-identical to calling [Tree.Digest] directly;
// per-node memoization makes the two interchangeable,
// and a subsequent Digest call returns the already-computed value.
// The hasher must be safe for concurrent use,
// which for standard cryptographic hashes means
// constructing a fresh digest state per invocation.
func ConcurrentDigest(t Tree) ([]byte, error) {
	warm(t, concurrentForkDepth)
	return t.Digest()
}

// warm populates the digest memos of t's subtrees in parallel.
// Errors are left in the per-node memos,
// where the final Digest pass surfaces them.
func warm(t Tree, depth int) {
	n, ok := t.(*Node)
	if !ok || depth == 0 {
		_, _ = t.Digest()
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		warm(n.left, depth-1)
	}()

	warm(n.right, depth-1)
	<-done
}
