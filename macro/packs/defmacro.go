package packs

import (
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/symbol"
	"github.com/atomforge/atomforge/syntax"
)

// RegisterDefmacro adds the "defmacro" bundled pack (spec.md §6):
// `defmacro[pat][tpl]` registers a brand-new macro on reg at expansion
// time, using tpl's own "_" leaves as the template's capture slots — the
// same cycling-substitution contract syntax.Node.Substitute already
// implements — and lowers itself to an inert literal so the
// registration site leaves no trace in the emitted source.
// `with_gensyms[vars][body]` substitutes each named variable in body
// with a symbol fresh from gen.
func RegisterDefmacro(reg *macro.Registry, gen *symbol.Generator) {
	registerDefmacro(reg)
	registerWithGensyms(reg, gen)
}

func registerDefmacro(reg *macro.Registry) {
	pattern := syntax.New("[]", syntax.New("[]", "defmacro", match.Wildcard), match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		pat, tpl := c[0], c[1]
		reg.Register(pat, func(inner match.Captures) (syntax.Node, bool) {
			reps := make([]syntax.Node, len(inner))
			copy(reps, inner)
			return tpl.Substitute(match.Wildcard, reps...), true
		})
		return syntax.Leaf("0"), true
	})
}

func registerWithGensyms(reg *macro.Registry, gen *symbol.Generator) {
	pattern := syntax.New("[]", syntax.New("[]", "with_gensyms", match.Wildcard), match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		names := flattenNames(c[0])
		body := c[1]
		for _, name := range names {
			body = body.Substitute(name, syntax.Leaf(gen.Fresh()))
		}
		return body, true
	})
}

// flattenNames reads the identifier names out of a comma-separated
// variable list (or a single bare identifier).
func flattenNames(n syntax.Node) []string {
	flat := n.Flatten()
	if len(flat.Children) == 0 {
		return []string{flat.Data}
	}
	names := make([]string, len(flat.Children))
	for i, c := range flat.Children {
		names[i] = c.Data
	}
	return names
}
