package syntax

import (
	"strings"

	"github.com/atomforge/atomforge/token"
)

// Serialize converts tree back to host-language source text (spec.md
// §4.8). The result round-trips the parsed structure with whitespace
// losses only.
func Serialize(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch {
	case n.Data == "i;":
		writeJoined(b, n.Children, " ")

	case n.Data == "()" || n.Data == "[]":
		opener, closer := "(", ")"
		if n.Data == "[]" {
			opener, closer = "[", "]"
		}
		if len(n.Children) > 0 {
			writeNode(b, n.Children[0])
		}
		b.WriteString(opener)
		if len(n.Children) > 1 {
			writeNode(b, n.Children[1])
		}
		b.WriteString(closer)

	case n.Data == "?":
		if len(n.Children) == 3 {
			writeNode(b, n.Children[0])
			b.WriteString(" ? ")
			writeNode(b, n.Children[1])
			b.WriteString(" : ")
			writeNode(b, n.Children[2])
		} else {
			writeJoined(b, n.Children, " ")
		}

	case token.IsGroupOpener(n.Data):
		b.WriteString(n.Data)
		writeJoined(b, n.Children, " ")
		b.WriteString(token.GroupCloser[n.Data])

	case token.RoleOf(n.Data) == token.RoleBinary:
		if len(n.Children) == 0 {
			b.WriteString(n.Data)
		} else if len(n.Children) == 1 {
			writeNode(b, n.Children[0])
			b.WriteString(n.Data)
		} else {
			for i, c := range n.Children {
				if i > 0 {
					b.WriteString(" " + n.Data + " ")
				}
				writeNode(b, c)
			}
		}

	case token.RoleOf(n.Data) == token.RoleGrabUntilBlock || token.RoleOf(n.Data) == token.RoleOptionalRightFold:
		writeGrabUntilBlock(b, n)

	case token.RoleOf(n.Data) == token.RolePrefixUnary:
		op := strings.TrimPrefix(n.Data, "u")
		b.WriteString(op)
		if isAlphaOperator(op) {
			b.WriteString(" ")
		}
		if len(n.Children) > 0 {
			writeNode(b, n.Children[0])
		}

	case token.RoleOf(n.Data) == token.RolePostfixUnary:
		if len(n.Children) > 0 {
			writeNode(b, n.Children[0])
		}
		b.WriteString(n.Data)

	default:
		b.WriteString(n.Data)
		for _, c := range n.Children {
			writeNode(b, c)
		}
	}
}

// writeGrabUntilBlock renders a keyword-led construct: the keyword, its
// pre-block children, then its body, inserting an explicit ";" between a
// non-block body and a following continuation clause so statement
// boundaries survive re-parsing (spec.md §4.8 edge case).
func writeGrabUntilBlock(b *strings.Builder, n Node) {
	b.WriteString(n.Data)
	for i, c := range n.Children {
		b.WriteString(" ")
		writeNode(b, c)
		if needsSeparatorBeforeContinuation(n, i, c) {
			b.WriteString(";")
		}
	}
}

func needsSeparatorBeforeContinuation(n Node, i int, c Node) bool {
	if i != len(n.Children)-2 {
		return false
	}
	cont, ok := token.Continuation[n.Data]
	if !ok {
		return false
	}
	next := n.Children[i+1]
	return next.Data == cont && !c.IsBlock() && c.Data != ";"
}

func isAlphaOperator(op string) bool {
	for _, r := range op {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return len(op) > 0
}

func writeJoined(b *strings.Builder, nodes []Node, sep string) {
	for i, c := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		writeNode(b, c)
	}
}
