package packs

import (
	"strings"

	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/parser"
	"github.com/atomforge/atomforge/syntax"
)

// RegisterString adds the "string" bundled pack (spec.md §6): a string
// literal containing one or more `#{expr}` markers is lowered to a
// flattened additive concatenation of its literal parts and the parsed
// expressions inside each marker. Unlike the other packs, this one
// cannot be expressed as a fixed structural pattern — a string literal
// is a single opaque leaf, and the text worth matching on is inside
// Data, not in children — so it registers against the "_" wildcard
// (which matches any node unconditionally) and declines via ok == false
// for every subject that is not an interpolating string literal,
// falling through to whichever later rule (or none) applies.
func RegisterString(reg *macro.Registry) {
	pattern := syntax.Leaf(match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		n := c[0]
		if !n.IsString() {
			return syntax.Node{}, false
		}
		return interpolate(n)
	})
}

func interpolate(n syntax.Node) (syntax.Node, bool) {
	delim := n.Data[0]
	inner := n.Data[1 : len(n.Data)-1]
	if !strings.Contains(inner, "#{") {
		return syntax.Node{}, false
	}

	var parts []syntax.Node
	rest := inner
	for {
		idx := strings.Index(rest, "#{")
		if idx < 0 {
			if rest != "" {
				parts = append(parts, literalPart(delim, rest))
			}
			break
		}
		if idx > 0 {
			parts = append(parts, literalPart(delim, rest[:idx]))
		}
		rest = rest[idx+2:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			// Unterminated "#{": no syntactic validation is performed
			// (spec.md §1); keep the rest verbatim as a trailing literal.
			parts = append(parts, literalPart(delim, "#{"+rest))
			rest = ""
			break
		}
		exprText := rest[:end]
		rest = rest[end+1:]
		if expr, err := parser.Parse(exprText); err == nil {
			parts = append(parts, expr)
		} else {
			parts = append(parts, literalPart(delim, "#{"+exprText+"}"))
		}
	}

	if len(parts) == 0 {
		return syntax.Leaf(string(delim) + string(delim)), true
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = syntax.New("+", out, p)
	}
	return out.Flatten(), true
}

func literalPart(delim byte, text string) syntax.Node {
	return syntax.Leaf(string(delim) + text + string(delim))
}
