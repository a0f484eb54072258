// Package hmtviz renders hmt Merkle trees as ASCII,
// for debugging and documentation.
package hmtviz

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/gordian-engine/hmt"
)

// Render returns an ASCII rendering of t, one tree node per line.
//
// Internal nodes show a truncated digest and their leaf count;
// leaves show a truncated digest.
// Rendering digests every node,
// so any hasher or encoding error aborts the rendering.
func Render(t hmt.Tree) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "merkle tree: %d leaves, height %d\n", t.LeafCount(), t.Height())

	if err := render(t, "", true, &sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Fprint writes the rendering of t to w.
func Fprint(w io.Writer, t hmt.Tree) error {
	s, err := Render(t)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)
	return err
}

func render(t hmt.Tree, prefix string, last bool, sb *strings.Builder) error {
	connector := "├── "
	if last {
		connector = "└── "
	}
	sb.WriteString(prefix + connector)

	if t.IsEmpty() {
		sb.WriteString("empty\n")
		return nil
	}

	switch v := t.(type) {
	case *hmt.Leaf:
		dig, err := v.Digest()
		if err != nil {
			return err
		}

		fmt.Fprintf(sb, "leaf %s\n", shortHex(dig))
		return nil

	case *hmt.Node:
		dig, err := v.Digest()
		if err != nil {
			return err
		}

		fmt.Fprintf(sb, "node %s (%d leaves)\n", shortHex(dig), v.LeafCount())

		childPrefix := prefix
		if last {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}

		if err := render(v.Left(), childPrefix, false, sb); err != nil {
			return err
		}
		return render(v.Right(), childPrefix, true, sb)

	default:
		// The shape set is sealed within hmt.
		panic(fmt.Errorf("BUG: unknown tree shape %T", t))
	}
}

// shortHex shows at most the first 8 digest bytes for readability.
func shortHex(dig []byte) string {
	if len(dig) > 8 {
		dig = dig[:8]
	}
	return hex.EncodeToString(dig)
}
