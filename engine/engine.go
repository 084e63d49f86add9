// Package engine ties every other component into spec.md §6's single
// configurable front door: Parse, Serialize, Match, Macro, RMacro,
// Macroexpand, Compile, Clone, Configure. Grounded on the teacher's
// `eval.Evaluator` struct (eval/evaluator.go): a stateful struct built by
// a constructor, holding registered-builtin maps alongside the
// components it orchestrates (parser, scope, builtins) — the same shape
// generalized from "evaluate GoMix AST nodes" to "run the syntax-engine
// pipeline".
package engine

import (
	"github.com/atomforge/atomforge/apperror"
	"github.com/atomforge/atomforge/compile"
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/macro/packs"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/parser"
	"github.com/atomforge/atomforge/symbol"
	"github.com/atomforge/atomforge/syntax"
)

// Engine is one configurable syntax-engine instance. The zero value is
// not usable; construct with New.
type Engine struct {
	registry *macro.Registry
	bundle   *packs.Bundle
	gen      *symbol.Generator
}

// New returns a fresh Engine with an empty macro registry and no
// bundled packs activated.
func New() *Engine {
	return &Engine{
		registry: macro.NewRegistry(),
		bundle:   packs.NewBundle(),
		gen:      symbol.New(),
	}
}

// Parse lexes and folds src into a single rooted tree (spec.md §4.3,
// §4.4). It returns an *apperror.LexerStall if the lexer cannot make
// progress on malformed input.
func (e *Engine) Parse(src string) (syntax.Node, error) {
	return parser.Parse(src)
}

// Serialize converts tree back to source text (spec.md §4.8).
func (e *Engine) Serialize(tree syntax.Node) string {
	return syntax.Serialize(tree)
}

// Match compares pattern against subject and returns captured subtrees,
// or ok == false on a structural mismatch (spec.md §4.5).
func (e *Engine) Match(pattern, subject syntax.Node) (match.Captures, bool) {
	return match.Try(pattern, subject)
}

// Macro registers a non-recursive macro: pattern/expand pairs added this
// way do not re-expand their own output (spec.md §6).
func (e *Engine) Macro(pattern syntax.Node, expand macro.Expander) *Engine {
	e.registry.Register(pattern, expand)
	return e
}

// RMacro registers a recursive macro: its output is itself expanded to a
// fixed point before the outer traversal continues (spec.md §6, §8
// invariant 7).
func (e *Engine) RMacro(pattern syntax.Node, expand macro.Expander) *Engine {
	e.registry.RegisterRecursive(pattern, expand)
	return e
}

// Macroexpand runs one pass of every registered macro over tree (spec.md
// §4.6, §6).
func (e *Engine) Macroexpand(tree syntax.Node) syntax.Node {
	return e.registry.Expand(tree)
}

// Compile assembles tree and env into a host-runnable source/binding
// pair (spec.md §4.7).
func (e *Engine) Compile(tree syntax.Node, env map[string]interface{}) compile.Result {
	return compile.Assemble(tree, env, e.gen)
}

// Clone returns a new Engine whose macro registry is copied
// copy-on-write (spec.md §6's "shallow" clone attribute — macros
// registered on the clone after cloning are invisible to the parent and
// vice versa, spec.md §8 invariant 8) and whose symbol generator and pack
// bundle are the clone's own independent instances, so fresh symbols and
// qs quote tables from one engine never leak into the other.
func (e *Engine) Clone() *Engine {
	return &Engine{
		registry: e.registry.Clone(),
		bundle:   packs.NewBundle(),
		gen:      symbol.New(),
	}
}

// Configure activates the named bundled macro packs (spec.md §6), in the
// order given. It returns *apperror.UnknownConfig on the first name that
// is not a recognized pack, leaving every pack named before it already
// activated.
func (e *Engine) Configure(names ...string) (*Engine, error) {
	for _, name := range names {
		if ok := e.bundle.Activate(e.registry, packs.Name(name)); !ok {
			return e, &apperror.UnknownConfig{Name: name}
		}
	}
	return e, nil
}

// Quotes returns the qs pack's fresh-symbol → quoted-tree table, for
// callers building a Compile environment that needs to resolve a
// qs[...]-produced reference.
func (e *Engine) Quotes() map[string]interface{} {
	return e.bundle.Quotes()
}
