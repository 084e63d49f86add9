package packs

import (
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/syntax"
)

// RegisterQg adds the "qg" bundled pack (spec.md §6): `qg[<expr>]`
// wraps expr in an explicit parenthesized group, the same "(" node the
// ordinary parser produces for source parentheses — defeating a host
// compiler's constant-folding the same way a stray `(x)` would in
// hand-written source.
func RegisterQg(reg *macro.Registry) {
	pattern := syntax.New("[]", "qg", match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		return syntax.New("(", c[0]), true
	})
}
