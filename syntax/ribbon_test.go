package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chain(items ...string) []*Ribbon {
	ribbons := make([]*Ribbon, len(items))
	for i, s := range items {
		ribbons[i] = NewRibbon(s)
	}
	for i := 0; i < len(ribbons)-1; i++ {
		ribbons[i].AppendSibling(ribbons[i+1])
	}
	return ribbons
}

func TestAppendSiblingLinksChain(t *testing.T) {
	r := chain("a", "b", "c")
	assert.Same(t, r[1], r[0].Next)
	assert.Same(t, r[0], r[1].Prev)
	assert.Same(t, r[2], r[1].Next)
	assert.Same(t, r[1], r[2].Prev)
}

func TestUnlinkSplicesOutMiddleNode(t *testing.T) {
	r := chain("a", "b", "c")
	r[1].Unlink()
	assert.Same(t, r[2], r[0].Next)
	assert.Same(t, r[0], r[2].Prev)
	assert.Nil(t, r[1].Prev)
	assert.Nil(t, r[1].Next)
}

func TestFoldLeftConsumesLeftSibling(t *testing.T) {
	r := chain("a", "+", "b")
	plus := r[1]
	folded := plus.FoldLeft()
	assert.Same(t, r[0], folded)
	assert.Len(t, plus.Children, 1)
	assert.Same(t, r[0], plus.Children[0])
	assert.Nil(t, r[0].Prev)
	assert.Nil(t, r[0].Next)
}

func TestFoldRightConsumesRightSibling(t *testing.T) {
	r := chain("a", "+", "b")
	plus := r[1]
	folded := plus.FoldRight()
	assert.Same(t, r[2], folded)
	assert.Len(t, plus.Children, 1)
	assert.Same(t, r[2], plus.Children[0])
}

func TestFoldRightThenFoldLeftOrdersTernaryChildren(t *testing.T) {
	// cond ? then : elseExpr — folding right then left appends in that
	// call order, producing [then, cond]; the parser also folds elseExpr
	// and is responsible for rotating the children back into source order.
	r := chain("cond", "?", "then", ":", "elseExpr")
	q := r[1]
	q.FoldRight() // consumes "then"
	q.FoldLeft()  // consumes "cond"
	assert.Equal(t, "then", q.Children[0].Data)
	assert.Equal(t, "cond", q.Children[1].Data)
}

func TestFoldLeftOnHeadReturnsNil(t *testing.T) {
	r := chain("a", "b")
	assert.Nil(t, r[0].FoldLeft())
}

func TestWrapTakesOverRibbonPosition(t *testing.T) {
	r := chain("f", "(")
	callee, paren := r[0], r[1]
	outer := NewRibbon("()")
	callee.Wrap(outer)
	assert.Same(t, outer, paren.Prev)
	assert.Len(t, outer.Children, 1)
	assert.Same(t, callee, outer.Children[0])
	assert.Same(t, outer, callee.Parent)
}

func TestRootAscendsToTop(t *testing.T) {
	top := NewRibbon("block")
	mid := NewRibbon("stmt")
	leaf := NewRibbon("x")
	top.PushChild(mid)
	mid.PushChild(leaf)
	assert.Same(t, top, leaf.Root())
	assert.Same(t, top, top.Root())
}

func TestFreezeDiscardsRibbonLinksRecursively(t *testing.T) {
	top := NewRibbon("+")
	a, b := NewRibbon("a"), NewRibbon("b")
	top.PushChild(a)
	top.PushChild(b)
	a.AppendSibling(b) // stray sibling link that Freeze must not carry over

	n := top.Freeze()
	assert.Equal(t, "+", n.Data)
	assert.Equal(t, []string{"a", "b"}, dataOf(n.Children))
}
