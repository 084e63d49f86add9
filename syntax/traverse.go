package syntax

import "github.com/atomforge/atomforge/token"

// Each runs f once per immediate child, side-effecting only.
func (n Node) Each(f func(Node)) {
	for _, c := range n.Children {
		f(c)
	}
}

// Map rebuilds n with each immediate child replaced by f(child). It does
// not descend further: callers that want recursion use RMap or Reach.
func (n Node) Map(f func(Node) Node) Node {
	out := Node{Data: n.Data}
	if len(n.Children) > 0 {
		out.Children = make([]Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = f(c)
		}
	}
	return out
}

// Reach visits n and every descendant, depth-first, without allocating a
// replacement tree (the "non-consing recursive" traversal of spec.md
// §4.2).
func (n Node) Reach(f func(Node)) {
	f(n)
	for _, c := range n.Children {
		c.Reach(f)
	}
}

// RMap is the recursive map with cutoff described in spec.md §4.2: f is
// invoked on n; if f reports a replacement (ok == true), that node
// becomes the result and recursion does not descend into it. If f
// reports no replacement (ok == false), the returned node — f may still
// have edited it shallowly — is kept, and RMap recurses into its
// children. Go's explicit (Node, bool) return stands in for the
// "distinct node vs. falsy" signal the spec describes in duck-typed
// terms.
func (n Node) RMap(f func(Node) (Node, bool)) Node {
	next, replaced := f(n)
	if replaced {
		return next
	}
	if len(next.Children) == 0 {
		return next
	}
	out := next
	out.Children = make([]Node, len(next.Children))
	for i, c := range next.Children {
		out.Children[i] = c.RMap(f)
	}
	return out
}

// Substitute replaces each leaf whose Data equals dataKey with the next
// entry of replacements, cycling modulo len(replacements); if exactly one
// replacement is given, every occurrence is replaced by that same node
// (spec.md §8 invariant 4). It never modifies n — RMap always builds a
// new tree.
func (n Node) Substitute(dataKey string, replacements ...Node) Node {
	if len(replacements) == 0 {
		return n
	}
	uniform := len(replacements) == 1
	i := 0
	return n.RMap(func(cur Node) (Node, bool) {
		if len(cur.Children) != 0 || cur.Data != dataKey {
			return cur, false
		}
		var rep Node
		if uniform {
			rep = replacements[0]
		} else {
			rep = replacements[i%len(replacements)]
			i++
		}
		return rep, true
	})
}

// Flatten collapses a chain of the same left- or right-associative binary
// operator into a single variadic node with the operands in left-to-right
// source order (spec.md §4.2, §9 "Open question — flatten asymmetry").
// Nodes whose Data is not a binary operator are returned unchanged.
func (n Node) Flatten() Node {
	if token.RoleOf(n.Data) != token.RoleBinary || len(n.Children) != 2 {
		return n
	}
	rightAssoc := token.RightAssociative.Has(n.Data)

	var operands []Node
	var collect func(cur Node)
	collect = func(cur Node) {
		if cur.Data != n.Data || len(cur.Children) != 2 {
			operands = append(operands, cur)
			return
		}
		if rightAssoc {
			// a OP (b OP c): the chain continues into the right child,
			// so emit the left operand first, then recurse right.
			operands = append(operands, cur.Children[0])
			collect(cur.Children[1])
		} else {
			// (a OP b) OP c: the chain continues into the left child, so
			// recurse left first, then emit the right operand.
			collect(cur.Children[0])
			operands = append(operands, cur.Children[1])
		}
	}
	collect(n)
	return Node{Data: n.Data, Children: operands}
}
