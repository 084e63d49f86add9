package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEachVisitsChildrenOnly(t *testing.T) {
	n := New("+", New("*", "a", "b"), "c")
	var seen []string
	n.Each(func(c Node) { seen = append(seen, c.Data) })
	assert.Equal(t, []string{"*", "c"}, seen)
}

func TestMapShallowReplacement(t *testing.T) {
	n := New("+", "a", "b")
	out := n.Map(func(c Node) Node { return Leaf(c.Data + "!") })
	assert.Equal(t, "a!", out.Children[0].Data)
	assert.Equal(t, "b!", out.Children[1].Data)
	assert.Equal(t, "a", n.Children[0].Data, "Map must not mutate the receiver")
}

func TestReachVisitsEveryDescendant(t *testing.T) {
	n := New("+", New("*", "a", "b"), "c")
	var seen []string
	n.Reach(func(c Node) { seen = append(seen, c.Data) })
	assert.Equal(t, []string{"+", "*", "a", "b", "c"}, seen)
}

func TestRMapCutoffStopsDescent(t *testing.T) {
	// An expander that would recurse forever if the cutoff were violated:
	// replacing "x" with a node that itself contains "x".
	n := New("+", "x", "y")
	out := n.RMap(func(c Node) (Node, bool) {
		if c.Data == "x" {
			return New("+", "x", "x"), true
		}
		return c, false
	})
	// The replacement subtree must survive untouched: both of its "x"
	// leaves remain "x", not re-expanded.
	assert.Equal(t, "+", out.Children[0].Data)
	assert.Equal(t, "x", out.Children[0].Children[0].Data)
	assert.Equal(t, "x", out.Children[0].Children[1].Data)
}

func TestRMapDescendsWhenNoReplacement(t *testing.T) {
	n := New("+", New("*", "a", "b"), "c")
	out := n.RMap(func(c Node) (Node, bool) {
		if c.Data == "a" {
			return Leaf("A"), true
		}
		return c, false
	})
	assert.Equal(t, "A", out.Children[0].Children[0].Data)
}

func TestSubstituteCyclesReplacements(t *testing.T) {
	n := New(",", Leaf("_"), Leaf("_"), Leaf("_"), Leaf("_"))
	out := n.Substitute("_", Leaf("a"), Leaf("b"), Leaf("c"))
	assert.Equal(t, "a", out.Children[0].Data)
	assert.Equal(t, "b", out.Children[1].Data)
	assert.Equal(t, "c", out.Children[2].Data)
	assert.Equal(t, "a", out.Children[3].Data)
	// original must be untouched
	assert.Equal(t, "_", n.Children[0].Data)
}

func TestSubstituteUniformReplacement(t *testing.T) {
	n := New(",", Leaf("_"), Leaf("_"))
	out := n.Substitute("_", Leaf("z"))
	assert.Equal(t, "z", out.Children[0].Data)
	assert.Equal(t, "z", out.Children[1].Data)
}

func TestFlattenLeftAssociative(t *testing.T) {
	// a, b, c parses as (a, b), c for a left-associative "," chain.
	chain := New(",", New(",", "a", "b"), "c")
	flat := chain.Flatten()
	assert.Equal(t, ",", flat.Data)
	assert.Len(t, flat.Children, 3)
	assert.Equal(t, []string{"a", "b", "c"}, dataOf(flat.Children))
}

func TestFlattenRightAssociative(t *testing.T) {
	// a = b = c parses as a = (b = c) for right-associative "=".
	chain := New("=", "a", New("=", "b", "c"))
	flat := chain.Flatten()
	assert.Equal(t, "=", flat.Data)
	assert.Equal(t, []string{"a", "b", "c"}, dataOf(flat.Children))
}

func TestFlattenNonBinaryUnchanged(t *testing.T) {
	n := New("if", "cond", "body")
	assert.Equal(t, n, n.Flatten())
}

func dataOf(ns []Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Data
	}
	return out
}
