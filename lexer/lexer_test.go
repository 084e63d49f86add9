package lexer

import (
	"testing"

	"github.com/atomforge/atomforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ribbonData walks a lexed top-level ribbon and returns each node's Data
// in source order, for assertions that don't care about fold_index.
func ribbonData(head *syntax.Ribbon) []string {
	var out []string
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Data)
	}
	return out
}

func TestLexSimpleBinaryExpression(t *testing.T) {
	res, err := Lex("x + 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "+", "1"}, ribbonData(res.Head))
}

func TestLexPrefixUnaryGetsUPrefix(t *testing.T) {
	res, err := Lex("-x")
	require.NoError(t, err)
	assert.Equal(t, []string{"u-", "x"}, ribbonData(res.Head))
}

func TestLexPostfixIncrementKeepsPlainForm(t *testing.T) {
	res, err := Lex("x++")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "++"}, ribbonData(res.Head))
}

func TestLexTypeofGetsUPrefix(t *testing.T) {
	res, err := Lex("typeof x")
	require.NoError(t, err)
	assert.Equal(t, []string{"utypeof", "x"}, ribbonData(res.Head))
}

func TestLexDivisionAfterIdentifier(t *testing.T) {
	res, err := Lex("a / b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "/", "b"}, ribbonData(res.Head))
}

func TestLexRegexAfterHeaderParen(t *testing.T) {
	res, err := Lex("if (condition) /foo/.test(x)")
	require.NoError(t, err)
	var regexNodes []string
	for n := res.Head; n != nil; n = n.Next {
		if n.Data == "if" {
			// "(" group is n.Next
			paren := n.Next
			// inside the paren group is "condition"
			require.Len(t, paren.Children, 1)
			assert.Equal(t, "condition", paren.Children[0].Data)
			// after the closing paren's header flip, the next top-level
			// sibling chain holds the regex literal
			for m := paren.Next; m != nil; m = m.Next {
				regexNodes = append(regexNodes, m.Data)
			}
		}
	}
	require.NotEmpty(t, regexNodes)
	assert.True(t, syntax.Leaf(regexNodes[0]).IsRegex(), "expected %q to lex as a regex literal", regexNodes[0])
}

func TestLexNumberForms(t *testing.T) {
	for _, c := range []struct{ src, want string }{
		{"42", "42"},
		{"3.14", "3.14"},
		{"0x2A", "0x2A"},
		{"1e9", "1e9"},
		{"1.4e-9", "1.4e-9"},
	} {
		res, err := Lex(c.src)
		require.NoError(t, err)
		require.Len(t, ribbonData(res.Head), 1)
		assert.Equal(t, c.want, res.Head.Data)
	}
}

func TestLexStringLiteralRetainsDelimiters(t *testing.T) {
	res, err := Lex(`"hello\nworld"`)
	require.NoError(t, err)
	require.Len(t, ribbonData(res.Head), 1)
	assert.Equal(t, `"hello\nworld"`, res.Head.Data)
}

func TestLexCommentsProduceNoTokens(t *testing.T) {
	res, err := Lex("x // trailing comment\n+ /* block */ y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "+", "y"}, ribbonData(res.Head))
}

func TestLexGroupingNestsChildren(t *testing.T) {
	res, err := Lex("(a + b)")
	require.NoError(t, err)
	require.Len(t, ribbonData(res.Head), 1)
	paren := res.Head
	assert.Equal(t, "(", paren.Data)
	assert.Equal(t, []string{"a", "+", "b"}, ribbonData(paren.Children[0]))
}

func TestLexInvocationCandidatesRecorded(t *testing.T) {
	res, err := Lex("f(x)")
	require.NoError(t, err)
	require.Len(t, res.InvocationCandidates, 1)
	assert.Equal(t, "(", res.InvocationCandidates[0].Data)
}

func TestLexFoldIndexRegistersOperators(t *testing.T) {
	res, err := Lex("a + b * c")
	require.NoError(t, err)
	mulGroup := res.FoldIndex[3] // "*","/","%"
	addGroup := res.FoldIndex[4] // "+","-"
	require.Len(t, mulGroup, 1)
	require.Len(t, addGroup, 1)
	assert.Equal(t, "*", mulGroup[0].Data)
	assert.Equal(t, "+", addGroup[0].Data)
}

func TestLexDecimalStartingWithDot(t *testing.T) {
	res, err := Lex(".5")
	require.NoError(t, err)
	require.Len(t, ribbonData(res.Head), 1)
	assert.Equal(t, ".5", res.Head.Data)
}

func TestLexMemberAccessDotIsOperatorNotNumber(t *testing.T) {
	res, err := Lex("x.y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", ".", "y"}, ribbonData(res.Head))
}
