// Package match implements the engine's pattern matcher (spec.md §4.5):
// a purely positional, non-backtracking comparison of a pattern tree
// against a subject tree, with a single wildcard leaf that captures
// whatever it is matched against. Grounded on the teacher's
// `objects.ExtractValue`-style "(value, ok)" shape — a missing match is
// a normal negative result, not an error, the same way ExtractValue
// reports an unsupported type by its second return rather than a panic.
package match

import "github.com/atomforge/atomforge/syntax"

// Wildcard is the pattern leaf that matches any subject and captures it.
const Wildcard = "_"

// Captures is the ordered sequence of subtrees a successful match bound,
// in left-to-right traversal order across the pattern.
type Captures []syntax.Node

// Try compares pattern against subject and reports whether they
// structurally match. On success it returns the captured subtrees in
// traversal order; on failure it returns a nil Captures and false. Try
// never mutates either tree, and returns the same result on repeated
// calls with the same arguments (spec.md §8 invariant 5).
func Try(pattern, subject syntax.Node) (Captures, bool) {
	var captures Captures
	if !tryInto(pattern, subject, &captures) {
		return nil, false
	}
	return captures, true
}

func tryInto(pattern, subject syntax.Node, captures *Captures) bool {
	if pattern.Data == Wildcard {
		*captures = append(*captures, subject)
		return true
	}
	if pattern.Data != subject.Data || len(pattern.Children) != len(subject.Children) {
		return false
	}
	for i := range pattern.Children {
		if !tryInto(pattern.Children[i], subject.Children[i], captures) {
			return false
		}
	}
	return true
}
