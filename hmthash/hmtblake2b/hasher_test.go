package hmtblake2b_test

import (
	"testing"

	"github.com/gordian-engine/hmt/hmthash"
	"github.com/gordian-engine/hmt/hmthash/hmtblake2b"
	"github.com/gordian-engine/hmt/hmthash/hmthashtest"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	hmthashtest.TestHasherCompliance(t, func() hmthash.Hasher {
		return hmtblake2b.Hasher{}
	})
}
