package syntax

// Ribbon is the mutable, doubly-linked sibling chain produced by the
// lexer and consumed by the parser (spec.md §3, §4.2). Design Note §9
// offers two equally valid ways to avoid exposing reference cycles to
// consumers: an arena of integer-indexed records, or two distinct types
// with an explicit freeze step. atomforge takes the second path — Ribbon
// is parser-internal, Node is everything else — since it keeps the
// lexer and parser free of handle-indirection bookkeeping while still
// giving Freeze a single, obvious place to cut the cycle.
type Ribbon struct {
	Data     string
	Children []*Ribbon
	Prev     *Ribbon
	Next     *Ribbon
	Parent   *Ribbon
}

// NewRibbon builds a ribbon node with the given children already
// attached (used by the lexer when it opens a group: the group node is
// created, then lexed tokens are pushed into it as Children while it
// remains the current parent).
func NewRibbon(data string, children ...*Ribbon) *Ribbon {
	return &Ribbon{Data: data, Children: children}
}

// PushChild appends child to r's children and sets child's Parent to r.
func (r *Ribbon) PushChild(child *Ribbon) {
	child.Parent = r
	r.Children = append(r.Children, child)
}

// AppendSibling links next immediately after r in the sibling chain,
// within whatever parent r currently has.
func (r *Ribbon) AppendSibling(next *Ribbon) {
	next.Parent = r.Parent
	next.Prev = r
	next.Next = r.Next
	if r.Next != nil {
		r.Next.Prev = next
	}
	r.Next = next
}

// Unlink splices r out of its sibling chain, fixing up its neighbors,
// and clears r's own ribbon links. It does not touch r.Children.
func (r *Ribbon) Unlink() {
	if r.Prev != nil {
		r.Prev.Next = r.Next
	}
	if r.Next != nil {
		r.Next.Prev = r.Prev
	}
	r.Prev = nil
	r.Next = nil
	r.Parent = nil
}

// Wrap replaces r's position in the ribbon with outer, then reparents r
// as outer's sole child — used by the parser when an ambiguous "(" / "["
// candidate is reclassified as an invocation/dereference node (spec.md
// §4.4): outer takes the callee's place in the ribbon and r (the callee)
// moves underneath it; the parser then moves the bracket node in as
// outer's second child.
func (r *Ribbon) Wrap(outer *Ribbon) {
	outer.Parent = r.Parent
	outer.Prev = r.Prev
	outer.Next = r.Next
	if r.Prev != nil {
		r.Prev.Next = outer
	}
	if r.Next != nil {
		r.Next.Prev = outer
	}
	r.Prev = nil
	r.Next = nil
	outer.PushChild(r)
}

// FoldLeft consumes r's left sibling, unlinking it from the ribbon and
// appending it to r's Children. It returns the folded node, or nil if r
// has no left sibling.
func (r *Ribbon) FoldLeft() *Ribbon {
	left := r.Prev
	if left == nil {
		return nil
	}
	left.Unlink()
	r.PushChild(left)
	return left
}

// FoldRight consumes r's right sibling, unlinking it from the ribbon and
// appending it to r's Children. It returns the folded node, or nil if r
// has no right sibling.
func (r *Ribbon) FoldRight() *Ribbon {
	right := r.Next
	if right == nil {
		return nil
	}
	right.Unlink()
	r.PushChild(right)
	return right
}

// Reparent sets r's Parent without touching sibling links; exposed as its
// own primitive because the parser uses it once, in Pass C, to hand an
// invocation's argument-list node directly to its grandparent in place of
// the redundant group node that used to sit between them.
func (r *Ribbon) Reparent(parent *Ribbon) {
	r.Parent = parent
}

// Root ascends Parent links until none remain, returning the top node
// (spec.md §4.4, "Root discovery").
func (r *Ribbon) Root() *Ribbon {
	n := r
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Freeze walks r and its children recursively, discarding the ribbon
// links (Prev, Next, Parent) and producing the immutable tree form every
// later component consumes.
func (r *Ribbon) Freeze() Node {
	n := Node{Data: r.Data}
	if len(r.Children) > 0 {
		n.Children = make([]Node, len(r.Children))
		for i, c := range r.Children {
			n.Children[i] = c.Freeze()
		}
	}
	return n
}
