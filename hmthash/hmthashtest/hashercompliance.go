package hmthashtest

import (
	"sync"
	"testing"

	"github.com/gordian-engine/hmt/hmthash"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a fresh hasher under compliance test.
type HasherFactory func() hmthash.Hasher

// TestHasherCompliance asserts the properties the hmt tree
// requires of any [hmthash.Hasher]:
// determinism, fixed output length, input sensitivity,
// and safety under concurrent Sum calls.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		d01, err := h.Sum([]byte("deterministic_data"))
		require.NoError(t, err)

		d02, err := h.Sum([]byte("deterministic_data"))
		require.NoError(t, err)

		require.Equal(t, d01, d02)
	})

	t.Run("output length matches Size", func(t *testing.T) {
		t.Parallel()

		h := f()

		for _, in := range [][]byte{nil, []byte("x"), make([]byte, 4096)} {
			d, err := h.Sum(in)
			require.NoError(t, err)
			require.Len(t, d, h.Size())
		}
	})

	t.Run("distinct inputs produce distinct digests", func(t *testing.T) {
		t.Parallel()

		h := f()

		d01, err := h.Sum([]byte("input_1"))
		require.NoError(t, err)

		d02, err := h.Sum([]byte("input_2"))
		require.NoError(t, err)

		require.NotEqual(t, d01, d02)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		h := f()

		want, err := h.Sum([]byte("concurrent_data"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		got := make([][]byte, 8)
		errs := make([]error, 8)

		for i := range got {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got[i], errs[i] = h.Sum([]byte("concurrent_data"))
			}()
		}
		wg.Wait()

		for i := range got {
			require.NoError(t, errs[i])
			require.Equal(t, want, got[i])
		}
	})
}
