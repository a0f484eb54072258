package hmt_test

import (
	"hash/fnv"
)

// All the stub-hasher tests in this package use fnv32Hasher,
// which keeps expected digests computable by hand
// while still being sensitive to input order.
//
// See the hmthash backend packages for real cryptographic hashers.

type fnv32Hasher struct{}

func (fnv32Hasher) Sum(in []byte) ([]byte, error) {
	h := fnv.New32()
	_, _ = h.Write(in)
	return h.Sum(nil), nil
}

func (fnv32Hasher) Size() int { return 4 }

func fnv32Hash(s string) []byte {
	h := fnv.New32()
	_, _ = h.Write([]byte(s))
	return h.Sum(nil)
}

// countingHasher counts Sum invocations,
// for asserting per-node digest memoization.
// Only for use with sequential digests.
type countingHasher struct {
	calls *int
}

func (c countingHasher) Sum(in []byte) ([]byte, error) {
	*c.calls++
	return fnv32Hasher{}.Sum(in)
}

func (countingHasher) Size() int { return 4 }

// failingHasher returns its error from every Sum call.
type failingHasher struct {
	err error
}

func (f failingHasher) Sum([]byte) ([]byte, error) { return nil, f.err }

func (failingHasher) Size() int { return 0 }

// failingItem is a Hashable whose canonical encoding fails.
type failingItem struct {
	err error
}

func (f failingItem) MerkleContent() ([]byte, error) { return nil, f.err }
