package packs

import (
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/syntax"
)

// RegisterFn adds the "fn" bundled pack's function shorthands (spec.md
// §6): `fn[params][body]`, `fn_[body]`, `let[b] in e`, `e, where[b]`,
// `e, when[c]`, `e, unless[c]`. Each lowers to the ordinary node shapes
// the ambient parser already produces for a real function literal,
// ternary, or invocation — a macro pack's whole job is to make those
// shapes reachable from friendlier surface syntax.
func RegisterFn(reg *macro.Registry) {
	registerFnLiteral(reg)
	registerFnShorthandNoArgs(reg)
	registerLetIn(reg)
	registerWhere(reg)
	registerWhen(reg)
	registerUnless(reg)
}

// fn[params][body] parses as "[]"("[]"("fn", params), body) — the two
// bracket pairs reclassify in sequence, since an invocation/dereference
// node itself satisfies AllowsValueBefore. It lowers to an anonymous
// function literal whose body is an implicit return of the expression.
func registerFnLiteral(reg *macro.Registry) {
	pattern := syntax.New("[]", syntax.New("[]", "fn", match.Wildcard), match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		params, body := c[0], c[1]
		return functionLiteral(syntax.New("(", params), body), true
	})
}

// fn_[body] is the zero-parameter shorthand.
func registerFnShorthandNoArgs(reg *macro.Registry) {
	pattern := syntax.New("[]", "fn_", match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		return functionLiteral(syntax.New("("), c[0]), true
	})
}

func functionLiteral(params, body syntax.Node) syntax.Node {
	return syntax.New("function", params, syntax.New("{", syntax.New("return", body)))
}

// let[b] in e binds b, then evaluates e, by lowering to an
// immediately-invoked zero-argument function literal — the same
// eta-expansion a hand-written host program would use to scope a
// binding without leaking it.
func registerLetIn(reg *macro.Registry) {
	pattern := syntax.New("in", syntax.New("[]", "let", match.Wildcard), match.Wildcard)
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		binding, body := c[0], c[1]
		fn := functionLiteralSeq(binding, body)
		return syntax.New("()", fn), true
	})
}

func functionLiteralSeq(first, ret syntax.Node) syntax.Node {
	block := syntax.New("{", syntax.New(";", first, syntax.New("return", ret)))
	return syntax.New("function", syntax.New("("), block)
}

// e, where[b] is let..in with the binding trailing the expression.
func registerWhere(reg *macro.Registry) {
	pattern := syntax.New(",", match.Wildcard, syntax.New("[]", "where", match.Wildcard))
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		expr, binding := c[0], c[1]
		fn := functionLiteralSeq(binding, expr)
		return syntax.New("()", fn), true
	})
}

// e, when[c] evaluates to e if c holds, else to the host's "undefined".
func registerWhen(reg *macro.Registry) {
	pattern := syntax.New(",", match.Wildcard, syntax.New("[]", "when", match.Wildcard))
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		expr, cond := c[0], c[1]
		return syntax.New("?", cond, expr, syntax.Leaf("undefined")), true
	})
}

// e, unless[c] is when's negation.
func registerUnless(reg *macro.Registry) {
	pattern := syntax.New(",", match.Wildcard, syntax.New("[]", "unless", match.Wildcard))
	reg.Register(pattern, func(c match.Captures) (syntax.Node, bool) {
		expr, cond := c[0], c[1]
		return syntax.New("?", syntax.New("u!", cond), expr, syntax.Leaf("undefined")), true
	})
}
