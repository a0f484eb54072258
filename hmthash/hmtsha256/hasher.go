package hmtsha256

import (
	"crypto/sha256"
)

const HashSize = sha256.Size

// Hasher is an [hmthash.Hasher] backed by SHA-256.
// It is stateless and safe for concurrent use.
type Hasher struct{}

func (Hasher) Sum(in []byte) ([]byte, error) {
	sum := sha256.Sum256(in)
	return sum[:], nil
}

func (Hasher) Size() int { return HashSize }
