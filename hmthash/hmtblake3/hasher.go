package hmtblake3

import (
	"lukechampine.com/blake3"
)

const HashSize = 32

// Hasher is an [hmthash.Hasher] backed by BLAKE3
// at its canonical 256-bit output length.
// It is stateless and safe for concurrent use.
type Hasher struct{}

func (Hasher) Sum(in []byte) ([]byte, error) {
	sum := blake3.Sum256(in)
	return sum[:], nil
}

func (Hasher) Size() int { return HashSize }
