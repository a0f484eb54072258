package hmtblake2b

import (
	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size

// Hasher is an [hmthash.Hasher] backed by unkeyed BLAKE2b-512.
// It is stateless and safe for concurrent use.
type Hasher struct{}

func (Hasher) Sum(in []byte) ([]byte, error) {
	sum := blake2b.Sum512(in)
	return sum[:], nil
}

func (Hasher) Size() int { return HashSize }
