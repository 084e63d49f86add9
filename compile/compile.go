// Package compile implements the environment-capturing source assembly
// step of spec.md §4.7: given a tree and a name→value environment, it
// reroutes every leaf whose data names an environment entry through a
// single captured binding parameter, then serializes the rewritten tree
// for the host interpreter to run.
package compile

import (
	"fmt"

	"github.com/atomforge/atomforge/symbol"
	"github.com/atomforge/atomforge/syntax"
)

// Result is the triple spec.md §4.7 step 4 returns: the rewritten
// source text, the fresh symbol naming the one-argument binding
// parameter the host interpreter must invoke with Environment, and the
// environment itself, unchanged, for the caller to pass along.
type Result struct {
	Source      string
	Binding     string
	Environment map[string]interface{}
}

// Assemble rewrites tree so every leaf whose Data is a key of env
// becomes a parenthesized dereference of a single fresh binding symbol
// by that name — `(B.<data>)` — then serializes the result. The caller
// hands Result.Source to the host interpreter, arranging for it to run
// as the body of a one-argument function named by Result.Binding,
// invoked with Result.Environment; atomforge itself never evaluates
// anything (spec.md §1 non-goal).
//
// This rewrite is not scope-aware: a leaf named "x" is rewritten
// wherever it appears, even under a nested function parameter or `var`
// that would locally shadow an outer "x" in the host language. That is
// a documented limitation (spec.md §4.7, §9), not a bug — adding
// scope-aware rewriting changes observable behavior and is explicitly
// left as an opt-in extension.
func Assemble(tree syntax.Node, env map[string]interface{}, gen *symbol.Generator) Result {
	binding := gen.Fresh()
	rewritten := tree.RMap(func(n syntax.Node) (syntax.Node, bool) {
		if len(n.Children) != 0 {
			return n, false
		}
		if _, ok := env[n.Data]; !ok {
			return n, false
		}
		return dereference(binding, n.Data), true
	})
	return Result{
		Source:      syntax.Serialize(rewritten),
		Binding:     binding,
		Environment: env,
	}
}

// dereference builds the parenthesized-dereference node spec.md §4.7
// calls "(B.<data>)": a "(" group wrapping a member-access "." node with
// the binding symbol as its left child and name as its right — the same
// shape the ordinary parser produces for hand-written source spelled
// "(B.name)", serialized through the same generic binary-operator rule
// every other "." use goes through.
func dereference(binding, name string) syntax.Node {
	return syntax.New("(", syntax.New(".", binding, name))
}

// String renders the result as "(<binding>) => <source>" — useful for
// quick diagnostics.
func (r Result) String() string {
	return fmt.Sprintf("(%s) => %s", r.Binding, r.Source)
}
