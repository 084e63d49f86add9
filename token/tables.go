// Package token holds the static, hashed classification tables shared by
// the lexer and parser: which strings are operators, how they group into
// precedence bands, which associate right-to-left, which syntactic role
// each token plays during folding, and how group openers pair with their
// closers. Nothing here is mutated after package init.
package token

// Table is a hashed membership set that also remembers its longest key,
// mirroring the teacher's KEYWORDS_MAP lookup idiom (lexer/token.go) but
// generalized to any token set: a membership test on a candidate longer
// than Longest short-circuits without touching the map.
type Table struct {
	members map[string]struct{}
	longest int
}

func newTable(items ...string) *Table {
	t := &Table{members: make(map[string]struct{}, len(items))}
	for _, it := range items {
		t.members[it] = struct{}{}
		if len(it) > t.longest {
			t.longest = len(it)
		}
	}
	return t
}

// Has reports whether s is a member, short-circuiting on length.
func (t *Table) Has(s string) bool {
	if len(s) > t.longest || len(s) == 0 {
		return false
	}
	_, ok := t.members[s]
	return ok
}

// Longest returns the longest key recorded in the table.
func (t *Table) Longest() int { return t.longest }

// Role classifies how a token participates in Pass A operator folding.
type Role int

const (
	RoleNone Role = iota
	RoleBinary
	RolePrefixUnary
	RolePostfixUnary
	RoleOptionalRightFold
	RoleTernary
	RoleGrabUntilBlock
	RoleAmbiguousBracket
)

// Operators is every token the lexer should greedy-longest-match as an
// operator glyph.
var Operators = newTable(
	"+", "-", "*", "/", "%",
	"=", "==", "!=", "<", ">", "<=", ">=",
	"&&", "||", "!",
	"&", "|", "^", "~", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<=", ">>=",
	",", ";", ".", ":", "?",
	"++", "--",
	">$>",
)

// PrecedenceGroups is ordered highest to lowest; a token's index in this
// slice is its reduce index (spec.md §3). Ambiguous "(" / "[" are folded
// at the same tightness as "." but are not listed here: the parser
// processes them from the lexer's invocation-candidate list, not from a
// fold_index group lookup, since their pre-reclassification data ("(" and
// "[") never settles into a stable operator glyph the way "." does.
var PrecedenceGroups = []*Table{
	newTable("."),                                       // 0: member access
	newTable("u+", "u-", "u!", "u~", "u++", "u--", "new", "utypeof"), // 1: prefix unary
	newTable("++", "--"),                                // 2: postfix unary
	newTable("*", "/", "%"),                              // 3: multiplicative
	newTable("+", "-"),                                   // 4: additive
	newTable("<<", ">>"),                                 // 5: shift
	newTable("<", ">", "<=", ">="),                       // 6: relational
	newTable("==", "!="),                                 // 7: equality
	newTable("&"),                                        // 8: bitwise and
	newTable("^"),                                        // 9: bitwise xor
	newTable("|"),                                        // 10: bitwise or
	newTable("&&"),                                        // 11: logical and
	newTable("||"),                                        // 12: logical or
	newTable("?"),                                         // 13: ternary
	newTable(
		"=", "+=", "-=", "*=", "/=", "%=",
		"&=", "|=", "^=", "<<=", ">>=",
	), // 14: assignment
	newTable("return", "throw", "break", "continue", "else"), // 15: optional right-fold keywords
	newTable("var", "const"),                                  // 16: declarations
	newTable("function", "if", "for", "while", "do", "try", "catch", "with"), // 17: grab-until-block
	newTable(","),   // 18: comma sequencing
	newTable(";"),   // 19: explicit statement separator
	newTable(">$>"), // 20: dfn pack's infix arrow shorthand
	newTable("in"),  // 21: fn pack's let[...] in ... shorthand
}

var groupIndex map[string]int

func init() {
	groupIndex = make(map[string]int)
	for i, g := range PrecedenceGroups {
		for member := range g.members {
			groupIndex[member] = i
		}
	}
}

// GroupOf returns the precedence-group index of data, or -1 if data does
// not participate in fold_index-driven operator folding.
func GroupOf(data string) int {
	if i, ok := groupIndex[data]; ok {
		return i
	}
	return -1
}

// RightAssociative holds the tokens whose precedence group is folded
// right-to-left (within that group's own candidate list) rather than
// left-to-right: assignment, the unary/ternary forms, and the
// statement-level keywords, which must absorb their own tail before an
// enclosing construct tries to absorb them.
var RightAssociative = newTable(
	"=", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<=", ">>=",
	"u+", "u-", "u!", "u~", "u++", "u--", "new", "utypeof",
	"?",
	"return", "throw", "break", "continue", "else",
	"var", "const",
	"function", "if", "for", "while", "do", "try", "catch", "with",
)

// roles assigns a fold Role to every token that has one. Ambiguous
// bracket candidates are keyed by their pre-reclassification data ("(",
// "[") since that is what the lexer hands the parser.
var roles = map[string]Role{
	"(": RoleAmbiguousBracket,
	"[": RoleAmbiguousBracket,

	"++": RolePostfixUnary,
	"--": RolePostfixUnary,

	"u+": RolePrefixUnary, "u-": RolePrefixUnary, "u!": RolePrefixUnary, "u~": RolePrefixUnary,
	"u++": RolePrefixUnary, "u--": RolePrefixUnary,
	"new": RolePrefixUnary, "utypeof": RolePrefixUnary,
	"var": RolePrefixUnary, "const": RolePrefixUnary,

	"?": RoleTernary,

	"return": RoleOptionalRightFold, "throw": RoleOptionalRightFold,
	"break": RoleOptionalRightFold, "continue": RoleOptionalRightFold,
	"else": RoleOptionalRightFold,

	"function": RoleGrabUntilBlock, "if": RoleGrabUntilBlock, "for": RoleGrabUntilBlock,
	"while": RoleGrabUntilBlock, "do": RoleGrabUntilBlock, "try": RoleGrabUntilBlock,
	"catch": RoleGrabUntilBlock, "with": RoleGrabUntilBlock,
}

func init() {
	for _, op := range []string{
		"+", "-", "*", "/", "%",
		"=", "==", "!=", "<", ">", "<=", ">=",
		"&&", "||",
		"&", "|", "^", "<<", ">>",
		"+=", "-=", "*=", "/=", "%=",
		"&=", "|=", "^=", "<<=", ">>=",
		",", ";", ".",
		">$>", "in",
	} {
		roles[op] = RoleBinary
	}
}

// RoleOf returns the fold role for data, or RoleNone if it does not fold.
func RoleOf(data string) Role {
	if r, ok := roles[data]; ok {
		return r
	}
	return RoleNone
}

// maxPreBlock is the number of right siblings a grab-until-block keyword
// absorbs before the body itself (spec.md §4.4: "function takes up to
// two: optional name + parens").
var maxPreBlock = map[string]int{
	"function": 2,
	"if":       1,
	"for":      1,
	"while":    1,
	"catch":    1,
	"with":     1,
	"do":       0,
	"try":      0,
	"else":     0,
}

// MaxPreBlock returns how many right siblings a grab-until-block keyword
// absorbs before the body it ultimately consumes.
func MaxPreBlock(data string) int {
	if n, ok := maxPreBlock[data]; ok {
		return n
	}
	return 0
}

// Continuation maps a block construct to the keyword that, if it follows
// immediately, is absorbed as its continuation clause.
var Continuation = map[string]string{
	"if":    "else",
	"do":    "while",
	"try":   "catch",
	"catch": "finally",
}

// GroupCloser maps a group opener to its matching closer.
var GroupCloser = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
	"?": ":",
}

// GroupOpener is the reverse of GroupCloser, used by the lexer's closer
// stack to recognize when a group ends.
var GroupOpener = map[string]string{
	")": "(",
	"]": "[",
	"}": "{",
	":": "?",
}

// IsGroupOpener reports whether data opens a group.
func IsGroupOpener(data string) bool {
	_, ok := GroupCloser[data]
	return ok
}

// IsGroupCloser reports whether data closes a group.
func IsGroupCloser(data string) bool {
	_, ok := GroupOpener[data]
	return ok
}

// valueDisallowing holds keywords after which a following "(" or "["
// cannot be reclassified as an invocation/dereference (spec.md §4.4).
var valueDisallowing = newTable("function", "if", "for", "while", "catch")

// AllowsValueBefore reports whether a "(" or "[" immediately following a
// node with this data may be reclassified as invocation/dereference.
// leftIsOperator tells the caller whether the left sibling is itself an
// operator token; a "." left sibling still allows reclassification (the
// callee is a dereference), every other operator does not.
func AllowsValueBefore(leftData string, leftIsOperator bool) bool {
	if leftIsOperator {
		return leftData == "."
	}
	return !valueDisallowing.Has(leftData)
}

// IsOperator reports whether data is a recognized operator glyph.
func IsOperator(data string) bool { return Operators.Has(data) }

// IsBlockConstruct reports whether data is one of the block-introducing
// keywords function, if, for, while, catch (the valueDisallowing set).
// The lexer stays in regex-expecting mode right after such a keyword; the
// flip back after its matching ")" is keyed on the lexer's own
// header-keyword table.
func IsBlockConstruct(data string) bool { return valueDisallowing.Has(data) }

// RegexFlags is the set of trailing flag characters a regex literal may
// carry (spec.md §4.3).
var RegexFlags = newTable("g", "i", "m", "s")
