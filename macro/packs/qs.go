package packs

import (
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/symbol"
	"github.com/atomforge/atomforge/syntax"
)

// QuotePack implements the "qs" bundled pack (spec.md §6): `qs[<expr>]`
// lowers to the parsed tree of <expr>, already produced by the ordinary
// parser as the bracket's captured content. A fresh symbol names that
// captured tree in an internal table, and the qs[...] site is replaced
// by a bare reference to that symbol — the caller's `compile` step can
// then bind the symbol, in the environment it hands to the host
// interpreter, to a host-side reconstruction of the quoted tree (spec.md
// §4.7), which is how a runtime value built from "the parsed tree of
// <expr>" reaches the running program without leaking it as ordinary
// source text.
type QuotePack struct {
	gen    *symbol.Generator
	quotes map[string]syntax.Node
}

// NewQuotePack creates a QuotePack whose fresh symbols are drawn from
// gen — share gen with the rest of an engine's packs so every generated
// name in one engine instance is unique.
func NewQuotePack(gen *symbol.Generator) *QuotePack {
	return &QuotePack{gen: gen, quotes: make(map[string]syntax.Node)}
}

// Register adds the qs[<expr>] pattern to reg.
func (q *QuotePack) Register(reg *macro.Registry) {
	pattern := syntax.New("[]", "qs", match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		name := q.gen.Fresh()
		q.quotes[name] = c[0]
		return syntax.Leaf(name), true
	})
}

// Quote looks up a previously captured quotation by its generated
// symbol name.
func (q *QuotePack) Quote(name string) (syntax.Node, bool) {
	n, ok := q.quotes[name]
	return n, ok
}
