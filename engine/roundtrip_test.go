package engine

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// TestRoundTripStabilityIsIdempotentAfterFirstPass exercises spec.md §8
// invariant 3: parse ∘ serialize ∘ parse is equivalent to parse on all
// accepted source. Serialize does not promise byte-identical whitespace
// (spec.md's own "round-trips ≈ with whitespace losses"), so the
// assertion is on the second round onward: once a tree has been through
// one serialize pass, parsing that text back and serializing again must
// reproduce exactly the same text every time. On failure, the table
// renders a diff via diffmatchpatch (grounded on
// vmware-labs-yaml-jsonpath/example_test.go's use of the same library
// for comparing two rendered text forms).
func TestRoundTripStabilityIsIdempotentAfterFirstPass(t *testing.T) {
	sources := []string{
		"1 + 2 * 3",
		"a = b + c; return a",
		"if (x == 1) { y = 2; } else { y = 3; }",
		"func add(a, b) { return a + b; }",
		"foo(1, 2, 3)",
		"arr[0]",
		"a.b.c",
		"!!true",
		"x ? y : z",
		"var a = (1 + 2) * 3",
		"fn[x, y][x + y]",
	}

	e := New()
	for _, src := range sources {
		src := src
		t.Run(src, func(t *testing.T) {
			firstTree, err := e.Parse(src)
			require.NoError(t, err)
			firstPass := e.Serialize(firstTree)

			secondTree, err := e.Parse(firstPass)
			require.NoError(t, err)
			secondPass := e.Serialize(secondTree)

			if secondPass != firstPass {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(firstPass, secondPass, false)
				t.Fatalf("round trip unstable after first pass:\n%s", dmp.DiffPrettyText(diffs))
			}
		})
	}
}
