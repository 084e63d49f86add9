package parser

import (
	"testing"

	"github.com/atomforge/atomforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) syntax.Node {
	t.Helper()
	n, err := Parse(src)
	require.NoError(t, err)
	return n
}

func TestParseBinaryPrecedence(t *testing.T) {
	n := parse(t, "a + b * c")
	assert.Equal(t, "a + b * c", syntax.Serialize(n))
	assert.Equal(t, "+", n.Data)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "a", n.Children[0].Data)
	assert.Equal(t, "*", n.Children[1].Data)
}

func TestParseLeftAssociativeChain(t *testing.T) {
	n := parse(t, "a - b - c")
	assert.Equal(t, "a - b - c", syntax.Serialize(n))
	assert.Equal(t, "-", n.Data)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "-", n.Children[0].Data, "leftmost minus should nest as the left child")
	assert.Equal(t, "c", n.Children[1].Data)
}

func TestParseRightAssociativeAssignmentChain(t *testing.T) {
	n := parse(t, "a = b = c")
	assert.Equal(t, "a = b = c", syntax.Serialize(n))
	assert.Equal(t, "=", n.Data)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "a", n.Children[0].Data)
	assert.Equal(t, "=", n.Children[1].Data, "rightmost equals should nest as the right child")
}

func TestParsePrefixUnary(t *testing.T) {
	n := parse(t, "-x")
	assert.Equal(t, "-x", syntax.Serialize(n))
	assert.Equal(t, "u-", n.Data)
}

func TestParsePostfixUnary(t *testing.T) {
	n := parse(t, "x++")
	assert.Equal(t, "x++", syntax.Serialize(n))
	assert.Equal(t, "++", n.Data)
}

func TestParseTypeofGetsUPrefix(t *testing.T) {
	n := parse(t, "typeof x")
	assert.Equal(t, "typeof x", syntax.Serialize(n))
	assert.Equal(t, "utypeof", n.Data)
}

func TestParseTernary(t *testing.T) {
	n := parse(t, "a ? b : c")
	assert.Equal(t, "a ? b : c", syntax.Serialize(n))
	require.Len(t, n.Children, 3)
	assert.Equal(t, "a", n.Children[0].Data)
	assert.Equal(t, "b", n.Children[1].Data)
	assert.Equal(t, "c", n.Children[2].Data)
}

func TestParseInvocationNoArgs(t *testing.T) {
	n := parse(t, "f()")
	assert.Equal(t, "f()", syntax.Serialize(n))
	assert.True(t, n.IsInvocation())
	require.Len(t, n.Children, 1)
	assert.Equal(t, "f", n.Children[0].Data)
}

func TestParseInvocationWithArg(t *testing.T) {
	n := parse(t, "f(x)")
	assert.Equal(t, "f(x)", syntax.Serialize(n))
	assert.True(t, n.IsInvocation())
	require.Len(t, n.Children, 2)
	assert.Equal(t, "f", n.Children[0].Data)
	assert.Equal(t, "x", n.Children[1].Data)
}

func TestParseInvocationWithMultipleArgsFlattens(t *testing.T) {
	n := parse(t, "f(x, y)")
	assert.Equal(t, "f(x , y)", syntax.Serialize(n))
	assert.True(t, n.IsInvocation())
	require.Len(t, n.Children, 2)
	assert.Equal(t, ",", n.Children[1].Data)
}

func TestParseDereference(t *testing.T) {
	n := parse(t, "a[0]")
	assert.Equal(t, "a[0]", syntax.Serialize(n))
	assert.True(t, n.IsDereference())
}

func TestParseMemberAccessThenInvocation(t *testing.T) {
	n := parse(t, "a.b(c)")
	assert.Equal(t, "a . b(c)", syntax.Serialize(n))
	assert.True(t, n.IsInvocation())
	assert.Equal(t, ".", n.Children[0].Data)
}

func TestParseDoesNotReclassifyHeaderParen(t *testing.T) {
	n := parse(t, "if (x) y")
	assert.Equal(t, "if (x) y", syntax.Serialize(n))
	assert.Equal(t, "if", n.Data)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "(", n.Children[0].Data, "the condition paren must stay a grouping node, not an invocation")
}

func TestParseIfElse(t *testing.T) {
	// No explicit ";" in the source: "if"'s next right sibling after
	// absorbing its body is "else" itself, so continuation absorption
	// fires. The serializer re-inserts the ";" that the grammar requires
	// between a non-block body and a following continuation clause.
	n := parse(t, "if (cond) stmt else alt")
	assert.Equal(t, "if (cond) stmt; else alt", syntax.Serialize(n))
	assert.Equal(t, "if", n.Data)
	require.Len(t, n.Children, 3)
	assert.Equal(t, "else", n.Children[2].Data)
}

func TestParseIfElseBrokenByExplicitSemicolon(t *testing.T) {
	// An explicit ";" between the body and "else" means "if"'s next right
	// sibling is ";", not "else" — continuation absorption does not fire,
	// and "if"/"else" end up as two statements joined by the real ";".
	n := parse(t, "if (cond) stmt; else alt")
	assert.Equal(t, ";", n.Data)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "if", n.Children[0].Data)
	require.Len(t, n.Children[0].Children, 2, "without continuation absorption, if owns only its condition and body")
	assert.Equal(t, "else", n.Children[1].Data)
}

func TestParseIfWithBlockBody(t *testing.T) {
	n := parse(t, "if (cond) { a; b }")
	assert.Equal(t, "if (cond) {a ; b}", syntax.Serialize(n))
	require.Len(t, n.Children, 2)
	assert.Equal(t, "{", n.Children[1].Data)
}

func TestParseFunctionDeclaration(t *testing.T) {
	n := parse(t, "function f(x) { return x }")
	assert.Equal(t, "function f (x) {return x}", syntax.Serialize(n))
	assert.Equal(t, "function", n.Data)
	require.Len(t, n.Children, 3)
	assert.Equal(t, "f", n.Children[0].Data)
	assert.Equal(t, "(", n.Children[1].Data)
	assert.Equal(t, "{", n.Children[2].Data)
}

func TestParseReturnStopsAtSemicolon(t *testing.T) {
	// "return" sees its right sibling is ";" and absorbs nothing; the bare
	// ";" then folds left, consuming "return" as its sole operand.
	n := parse(t, "return;")
	assert.Equal(t, ";", n.Data)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "return", n.Children[0].Data)
	assert.Empty(t, n.Children[0].Children)
}

func TestParseInferredSemicolonBetweenStatements(t *testing.T) {
	n := parse(t, "if (c) x y()")
	assert.Equal(t, "i;", n.Data)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "if", n.Children[0].Data)
	assert.True(t, n.Children[1].IsInvocation())
}

func TestParseExplicitSemicolonSequence(t *testing.T) {
	n := parse(t, "a; b; c")
	assert.Equal(t, "a ; b ; c", syntax.Serialize(n.Flatten()))
}

func TestParseObjectLiteralKeywordKeyNotFolded(t *testing.T) {
	// "else" immediately followed by ":" must stay a bare leaf rather than
	// being folded as an optional-right-fold keyword.
	n := parse(t, "x = { else : 1 }")
	assert.Equal(t, "=", n.Data)
}
