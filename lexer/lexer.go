// Package lexer turns host-language source text into a ribbon of
// syntax nodes (spec.md §4.3). It keeps the teacher's byte-cursor
// lexer shape (lexer/lexer.go: a struct with Src/Current/Position,
// Advance/Peek, IgnoreWhitespacesAndComments) but replaces the
// teacher's closed TokenType switch with the spec's generic, role-table
// driven node model.
package lexer

import (
	"github.com/atomforge/atomforge/apperror"
	"github.com/atomforge/atomforge/syntax"
	"github.com/atomforge/atomforge/token"
)

// Result is everything the parser needs from a lexing pass.
type Result struct {
	// Head is the first node of the top-level sibling ribbon.
	Head *syntax.Ribbon
	// FoldIndex[g] lists, in source order, every emitted node whose data
	// falls in precedence group g.
	FoldIndex [][]*syntax.Ribbon
	// InvocationCandidates lists every "(" / "[" group-opener node, in
	// source order, for the parser's Pass A reclassification step.
	InvocationCandidates []*syntax.Ribbon
	// Created lists every node in the order it was created, for Pass B's
	// reverse-creation-order inferred-semicolon walk (spec.md §9).
	Created []*syntax.Ribbon
}

// frame tracks the current group while lexing: either the synthetic
// top level (group == nil) or a "(" / "[" / "{" node that is the
// current parent.
type frame struct {
	group  *syntax.Ribbon
	tail   *syntax.Ribbon
	closer string
	header bool // true if this is a "(" opened directly after a header keyword
}

type lexer struct {
	src string
	pos int
	n   int
	cur byte

	line, col int

	stack        []frame
	result       Result
	regexAllowed bool
	lastData     string
}

// Lex tokenizes src and returns the ribbon plus fold index described in
// spec.md §4.3. It returns an *apperror.LexerStall if an iteration
// fails to advance the cursor (the termination invariant).
func Lex(src string) (*Result, error) {
	lx := &lexer{
		src:  src,
		n:    len(src),
		line: 1,
		col:  1,
		result: Result{
			FoldIndex: make([][]*syntax.Ribbon, len(token.PrecedenceGroups)),
		},
		regexAllowed: true,
	}
	lx.stack = []frame{{}}
	if lx.n > 0 {
		lx.cur = src[0]
	}

	for {
		lx.skipWhitespaceAndComments()
		if lx.pos >= lx.n {
			break
		}
		before := lx.pos
		if err := lx.lexOne(); err != nil {
			return nil, err
		}
		if lx.pos <= before {
			return nil, &apperror.LexerStall{Position: lx.pos, Rune: lx.cur}
		}
	}
	if len(lx.stack) != 1 {
		// An unterminated group; spec.md §1 treats input as well-formed,
		// so this only fires on malformed callers' input — return what
		// was lexed rather than panicking, per §7's "no syntactic
		// validation" non-goal.
		_ = lx.stack
	}
	return &lx.result, nil
}

func (lx *lexer) peek() byte {
	if lx.pos+1 >= lx.n {
		return 0
	}
	return lx.src[lx.pos+1]
}

func (lx *lexer) peekAt(offset int) byte {
	if lx.pos+offset >= lx.n {
		return 0
	}
	return lx.src[lx.pos+offset]
}

func (lx *lexer) advance() {
	lx.pos++
	lx.col++
	if lx.pos >= lx.n {
		lx.cur = 0
		lx.pos = lx.n
		return
	}
	lx.cur = lx.src[lx.pos]
}

func (lx *lexer) skipWhitespaceAndComments() {
	for lx.pos < lx.n {
		switch {
		case isSpaceByte[lx.cur]:
			if lx.cur == '\n' {
				lx.line++
				lx.col = 1
			}
			lx.advance()
		case lx.cur == '/' && lx.peek() == '/':
			for lx.pos < lx.n && lx.cur != '\n' {
				lx.advance()
			}
		case lx.cur == '/' && lx.peek() == '*':
			lx.advance()
			lx.advance()
			for lx.pos < lx.n {
				if lx.cur == '*' && lx.peek() == '/' {
					lx.advance()
					lx.advance()
					break
				}
				if lx.cur == '\n' {
					lx.line++
					lx.col = 1
				}
				lx.advance()
			}
		default:
			return
		}
	}
}

func (lx *lexer) lexOne() error {
	switch {
	case lx.cur == '"' || lx.cur == '\'':
		return lx.lexString()
	case lx.cur == '/' && !lx.regexAllowed:
		return lx.lexOperator()
	case lx.cur == '/' && lx.regexAllowed:
		return lx.lexRegex()
	case isDigitByte[lx.cur], lx.cur == '.' && isDigitByte[lx.peek()]:
		return lx.lexNumber()
	case isIdentStart[lx.cur]:
		return lx.lexIdentifier()
	case lx.cur == '(' || lx.cur == '[' || lx.cur == '{':
		return lx.lexGroupOpener()
	case lx.cur == ')' || lx.cur == ']' || lx.cur == '}':
		return lx.lexGroupCloser()
	default:
		return lx.lexOperator()
	}
}

// lexNumber scans integer, hex, octal, decimal, and exponent forms
// (spec.md §4.3). A leading "." only starts a number when followed by
// a digit; lexOne already guards that case.
func (lx *lexer) lexNumber() error {
	start := lx.pos
	if lx.cur == '0' && (lx.peek() == 'x' || lx.peek() == 'X') && isHexDigitByte[lx.peekAt(2)] {
		lx.advance()
		lx.advance()
		for lx.pos < lx.n && isHexDigitByte[lx.cur] {
			lx.advance()
		}
		lx.emitNumber(lx.src[start:lx.pos])
		return nil
	}

	hasDot := false
	hasExp := false
	if lx.cur == '.' {
		hasDot = true
		lx.advance()
	}
	for lx.pos < lx.n && isDigitByte[lx.cur] {
		lx.advance()
	}
	if !hasDot && lx.cur == '.' && lx.peek() != '.' {
		hasDot = true
		lx.advance()
		for lx.pos < lx.n && isDigitByte[lx.cur] {
			lx.advance()
		}
	}
	if lx.cur == 'e' || lx.cur == 'E' {
		j := lx.pos + 1
		if j < lx.n && (lx.src[j] == '+' || lx.src[j] == '-') {
			j++
		}
		if j < lx.n && isDigitByte[lx.src[j]] {
			hasExp = true
			lx.advance()
			if lx.cur == '+' || lx.cur == '-' {
				lx.advance()
			}
			for lx.pos < lx.n && isDigitByte[lx.cur] {
				lx.advance()
			}
		}
	}
	_ = hasExp
	lx.emitNumber(lx.src[start:lx.pos])
	return nil
}

// lexString scans a string literal, delimiter-inclusive in its emitted
// data so syntax.IsString can recognize it without re-scanning.
func (lx *lexer) lexString() error {
	quote := lx.cur
	start := lx.pos
	lx.advance()
	for lx.pos < lx.n && lx.cur != quote {
		if lx.cur == '\\' && lx.pos+1 < lx.n {
			lx.advance()
		}
		lx.advance()
	}
	if lx.pos < lx.n {
		lx.advance() // consume closing quote
	}
	lx.emitValue(lx.src[start:lx.pos])
	return nil
}

// lexRegex scans a regex literal and its trailing flag run.
func (lx *lexer) lexRegex() error {
	start := lx.pos
	lx.advance() // opening "/"
	for lx.pos < lx.n && lx.cur != '/' {
		if lx.cur == '\\' && lx.pos+1 < lx.n {
			lx.advance()
		}
		lx.advance()
	}
	if lx.pos < lx.n {
		lx.advance() // closing "/"
	}
	for lx.pos < lx.n && isRegexFlagByte[lx.cur] {
		lx.advance()
	}
	lx.emitValue(lx.src[start:lx.pos])
	return nil
}

// lexIdentifier scans an identifier or keyword and emits it through
// emitKeywordOrIdentifier. Whether a following "(" is a header paren is
// decided later by lexGroupOpener, from lastData.
func (lx *lexer) lexIdentifier() error {
	start := lx.pos
	lx.advance()
	for lx.pos < lx.n && isIdentPart[lx.cur] {
		lx.advance()
	}
	lx.emitKeywordOrIdentifier(lx.src[start:lx.pos])
	return nil
}

// lexOperator greedily longest-matches the operator set, then
// disambiguates prefix-unary candidates from their binary counterpart
// using the regex/value-expected flag (spec.md §4.3).
func (lx *lexer) lexOperator() error {
	best := ""
	for length := 3; length >= 1; length-- {
		if lx.pos+length > lx.n {
			continue
		}
		cand := lx.src[lx.pos : lx.pos+length]
		if token.IsOperator(cand) {
			best = cand
			break
		}
	}
	if best == "" {
		// Unrecognized byte: emit it verbatim as a single-character
		// token rather than stalling (§1 "no syntactic validation").
		best = string(lx.cur)
	}
	lx.pos += len(best)
	lx.col += len(best)
	if lx.pos >= lx.n {
		lx.cur = 0
		lx.pos = lx.n
	} else {
		lx.cur = lx.src[lx.pos]
	}
	lx.emitOperator(best)
	return nil
}

func (lx *lexer) lexGroupOpener() error {
	data := string(lx.cur)
	header := data == "(" && isHeaderParenKeyword(lx.lastData)
	lx.advance()
	node := lx.emitRaw(data)
	lx.stack = append(lx.stack, frame{group: node, closer: token.GroupCloser[data], header: header})
	if data == "(" || data == "[" {
		lx.result.InvocationCandidates = append(lx.result.InvocationCandidates, node)
	}
	lx.lastData = data
	lx.regexAllowed = true
	return nil
}

func (lx *lexer) lexGroupCloser() error {
	data := string(lx.cur)
	lx.advance()
	top := lx.stack[len(lx.stack)-1]
	if len(lx.stack) > 1 && top.closer == data {
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
	lx.lastData = data
	switch {
	case data == ")" && top.header:
		lx.regexAllowed = true
	case data == "}":
		lx.regexAllowed = true
	default:
		lx.regexAllowed = false
	}
	return nil
}

// emitRaw appends a node to the current frame without any fold-index
// or regex-mode bookkeeping (used for group openers, which register
// themselves separately).
func (lx *lexer) emitRaw(data string) *syntax.Ribbon {
	node := syntax.NewRibbon(data)
	lx.result.Created = append(lx.result.Created, node)
	top := &lx.stack[len(lx.stack)-1]
	switch {
	case top.group == nil && top.tail == nil:
		lx.result.Head = node
	case top.group == nil:
		top.tail.AppendSibling(node)
	case top.tail == nil:
		top.group.PushChild(node)
	default:
		top.tail.AppendSibling(node)
	}
	top.tail = node
	lx.registerFoldIndex(node)
	return node
}

func (lx *lexer) registerFoldIndex(node *syntax.Ribbon) {
	if g := token.GroupOf(node.Data); g >= 0 {
		lx.result.FoldIndex[g] = append(lx.result.FoldIndex[g], node)
	}
}

// emitValue emits a literal that ends a value: strings, numbers, and
// regexes. The next "/" will be interpreted as division.
func (lx *lexer) emitValue(data string) {
	lx.emitRaw(data)
	lx.lastData = data
	lx.regexAllowed = false
}

func (lx *lexer) emitNumber(data string) { lx.emitValue(data) }

// emitKeywordOrIdentifier classifies data's value-ending status: plain
// identifiers end a value (division follows); keywords that introduce
// an expression position (return, typeof, new, …) do not. "typeof" is
// always used prefix, so — like the punctuation unary operators in
// emitOperator — it is emitted with a "u" prefix (spec.md §4.3).
func (lx *lexer) emitKeywordOrIdentifier(data string) {
	emitted := data
	if data == "typeof" {
		emitted = "utypeof"
	}
	lx.emitRaw(emitted)
	lx.lastData = emitted
	lx.regexAllowed = token.IsBlockConstruct(data) || isValueExpectingKeyword(data)
}

// emitOperator emits an operator glyph, prefixing unary candidates
// with "u" when they appear in value-expected position (spec.md §4.3).
func (lx *lexer) emitOperator(op string) {
	data := op
	if lx.regexAllowed && isUnaryPrefixable(op) {
		data = "u" + op
	}
	lx.emitRaw(data)
	lx.lastData = data
	// An operator never itself ends a value: the following token is
	// always in value-expected position, so a "/" after it begins a
	// regex. Exception: postfix "++"/"--" do end a value (they apply to
	// the thing on their left), matched here since they never receive
	// the "u" prefix in non-prefix position.
	if (op == "++" || op == "--") && data == op {
		lx.regexAllowed = false
		return
	}
	lx.regexAllowed = true
}

var unaryPrefixable = map[string]bool{
	"+": true, "-": true, "!": true, "~": true, "++": true, "--": true,
}

func isUnaryPrefixable(op string) bool { return unaryPrefixable[op] }

var valueExpectingKeywords = map[string]bool{
	"return": true, "throw": true, "typeof": true, "new": true,
	"var": true, "const": true, "else": true, "do": true, "try": true,
}

func isValueExpectingKeyword(data string) bool { return valueExpectingKeywords[data] }
