// Package packs implements the bundled macro configurations spec.md §6
// names: qs, qg, fn, defmacro, dfn, string, and their canonical union
// std. Each Register* function adds its patterns and expanders to a
// caller-supplied *macro.Registry so engine.Configure can activate any
// subset by name. Grounded on the teacher's std/*.go modules
// (std/math.go, std/strings.go, ...), each of which is a self-contained
// "register my builtins onto the shared table" unit — the same shape
// generalized from builtin functions to macro patterns.
package packs

import (
	"github.com/atomforge/atomforge/macro"
	"github.com/atomforge/atomforge/symbol"
)

// Name identifies a bundled pack by its spec.md §6 name.
type Name string

const (
	QS        Name = "qs"
	QG        Name = "qg"
	FN        Name = "fn"
	DefMacro  Name = "defmacro"
	DFN       Name = "dfn"
	StringPkg Name = "string"
	Std       Name = "std"
)

// Bundle owns the per-engine state the packs need beyond the registry
// itself: qs's fresh-symbol quote table and defmacro/with_gensyms's
// shared symbol generator. One Bundle belongs to exactly one
// engine.Engine instance; engine.Clone gives a clone a new Bundle of its
// own.
type Bundle struct {
	gen    *symbol.Generator
	quotes *QuotePack
}

// NewBundle creates a Bundle seeded with a fresh symbol generator.
func NewBundle() *Bundle {
	gen := symbol.New()
	return &Bundle{gen: gen, quotes: NewQuotePack(gen)}
}

// Quotes returns the table of fresh-symbol-name → quoted tree produced
// by the qs pack, for compile to inject into an environment.
func (b *Bundle) Quotes() map[string]interface{} {
	out := make(map[string]interface{}, len(b.quotes.quotes))
	for name, node := range b.quotes.quotes {
		out[name] = node
	}
	return out
}

// Activate registers the named pack onto reg. It reports
// apperror.UnknownConfig's condition via ok == false; the caller (engine)
// wraps that into the named error type so this package does not need to
// depend on apperror itself.
func (b *Bundle) Activate(reg *macro.Registry, name Name) (ok bool) {
	switch name {
	case QS:
		b.quotes.Register(reg)
	case QG:
		RegisterQg(reg)
	case FN:
		RegisterFn(reg)
	case DefMacro:
		RegisterDefmacro(reg, b.gen)
	case DFN:
		RegisterDfn(reg)
	case StringPkg:
		RegisterString(reg)
	case Std:
		RegisterStd(reg, b)
	default:
		return false
	}
	return true
}

// RegisterStd activates every bundled pack in the canonical order
// spec.md §6 lists them: qs, qg, fn, defmacro, dfn, string.
func RegisterStd(reg *macro.Registry, b *Bundle) {
	b.quotes.Register(reg)
	RegisterQg(reg)
	RegisterFn(reg)
	RegisterDefmacro(reg, b.gen)
	RegisterDfn(reg)
	RegisterString(reg)
}
