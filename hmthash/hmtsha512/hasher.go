package hmtsha512

import (
	"crypto/sha512"
)

const HashSize = sha512.Size

// Hasher is an [hmthash.Hasher] backed by SHA-512,
// the recommended default digest for hmt trees.
// It is stateless and safe for concurrent use.
type Hasher struct{}

func (Hasher) Sum(in []byte) ([]byte, error) {
	sum := sha512.Sum512(in)
	return sum[:], nil
}

func (Hasher) Size() int { return HashSize }
