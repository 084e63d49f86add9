package packs

import (
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/syntax"
)

// RegisterDfn adds the "dfn" bundled pack (spec.md §6): the infix arrow
// `vars >$> body` as a function-literal shorthand, lowering the same way
// `fn`'s bracket form does. ">$>" is a new token/precedence-group entry
// (token.RoleBinary, left-associative) rather than a bracket
// reclassification, since the surface syntax is itself infix.
func RegisterDfn(reg *macro.Registry) {
	pattern := syntax.New(">$>", match.Wildcard, match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		params, body := c[0], c[1]
		return functionLiteral(syntax.New("(", params), body), true
	})
}
