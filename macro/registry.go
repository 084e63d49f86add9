// Package macro implements the engine's pattern → template rewriter
// (spec.md §4.6): a registry of (pattern, expander) pairs tried in
// registration order, expanded over a tree via syntax.Node's recursive
// map-with-cutoff. Grounded on the teacher's `std` package's
// `[]*Builtin{{Name, Callback}, ...}` registration-table idiom
// (std/math.go's mathMethods, replicated across std/arrays.go,
// std/strings.go, ...), generalized from "name maps to a callback" to
// "pattern maps to an expander".
package macro

import (
	"reflect"

	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/syntax"
)

// Expander is a registered template callable: given the captures a
// pattern match produced, it returns a replacement node, or ok == false
// to mean "this rule does not apply after all" — spec.md §4.6's "If it
// returns a node, that replaces the current node; else continue
// trying."
type Expander func(captures match.Captures) (syntax.Node, bool)

type rule struct {
	pattern syntax.Node
	expand  Expander
}

// Registry holds an ordered sequence of (pattern, expander) pairs;
// insertion order is priority order (spec.md §3 "Macro registry").
type Registry struct {
	rules []rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a non-recursive macro: its expansion output is not
// itself re-expanded (spec.md §4.6 "Non-fixed-point by design").
func (r *Registry) Register(pattern syntax.Node, expand Expander) {
	r.rules = append(r.rules, rule{pattern: pattern, expand: expand})
}

// RegisterRecursive adds an "rmacro": each successful expansion is
// itself run back through the whole registry to a fixed point before
// the outer traversal considers it settled (spec.md §8 invariant 7,
// §6's `rmacro`). The wrapping happens once, at registration time, so
// Expand's generic traversal never needs to know which rules are
// recursive.
func (r *Registry) RegisterRecursive(pattern syntax.Node, expand Expander) {
	r.Register(pattern, func(captures match.Captures) (syntax.Node, bool) {
		out, ok := expand(captures)
		if !ok {
			return syntax.Node{}, false
		}
		return r.expandToFixedPoint(out), true
	})
}

func (r *Registry) expandToFixedPoint(n syntax.Node) syntax.Node {
	for {
		next := r.Expand(n)
		if reflect.DeepEqual(next, n) {
			return next
		}
		n = next
	}
}

// Expand runs one pass over tree (spec.md §4.6's `expand`/§6's
// `macroexpand`): at each node, try every registered pattern in order;
// the first one that matches and whose expander returns ok == true
// replaces the node and traversal does not descend into the
// replacement. A node with no matching rule, or whose matching rules all
// decline, is kept and its children are visited.
func (r *Registry) Expand(tree syntax.Node) syntax.Node {
	return tree.RMap(func(n syntax.Node) (syntax.Node, bool) {
		for _, rl := range r.rules {
			captures, ok := match.Try(rl.pattern, n)
			if !ok {
				continue
			}
			if out, ok := rl.expand(captures); ok {
				return out, true
			}
		}
		return n, false
	})
}

// Len reports how many rules are registered.
func (r *Registry) Len() int { return len(r.rules) }

// Clone returns a registry whose rule list is copied into a fresh
// backing array: the clone may append further rules without the parent
// seeing them, and vice versa (spec.md §6 clone's "shallow" attribute
// behavior — shallow-copied, each engine may append without affecting
// the other).
func (r *Registry) Clone() *Registry {
	return &Registry{rules: append([]rule(nil), r.rules...)}
}
