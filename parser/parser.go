// Package parser folds the lexer's ribbon into a single rooted syntax
// tree (spec.md §4.4). It runs three ordered passes — operator folding,
// inferred-semicolon insertion, then invocation cleanup, with a group-body
// fix-up (resolveGroupBodies) between the last two — driven entirely
// by the token package's role tables, the same "one generic algorithm
// over classification tables" shape the teacher's precedence-table
// parser uses (parser/parser_precedence.go's getPrecedence switch), but
// generalized from a fixed-grammar Pratt parser to spec.md §3's
// data-driven fold roles.
package parser

import (
	"github.com/atomforge/atomforge/lexer"
	"github.com/atomforge/atomforge/syntax"
	"github.com/atomforge/atomforge/token"
)

// Parse lexes src and folds the result into a single Node (spec.md §4.3,
// §4.4). It returns a *apperror.LexerStall if the lexer cannot make
// progress; the parser itself has no error path, since fold_index and
// invocation_candidates are always internally consistent with the
// ribbon the lexer produced them from.
func Parse(src string) (syntax.Node, error) {
	res, err := lexer.Lex(src)
	if err != nil {
		return syntax.Node{}, err
	}
	root := Fold(res)
	return root.Freeze(), nil
}

// Fold runs the three passes, plus the group-body fix-up between Pass B
// and Pass C, over a lexer.Result and returns the root ribbon node. Exposed separately from Parse so tests can inspect the
// intermediate ribbon shape (fold_index bookkeeping, reclassified
// invocation nodes) before freezing.
func Fold(res *lexer.Result) *syntax.Ribbon {
	p := &parser{created: append([]*syntax.Ribbon(nil), res.Created...)}
	if res.Head == nil {
		return syntax.NewRibbon("")
	}
	p.foldOperators(res)
	p.foldInferredSemicolons()
	p.resolveGroupBodies()
	p.cleanupInvocations()

	return res.Head.Root()
}

type parser struct {
	// created tracks every ribbon node in the order it was made, lexer
	// emissions first, followed by any invocation/dereference nodes this
	// parser manufactures during reclassification — Pass B's "reverse
	// creation order" walk needs the full history, not just the lexer's.
	created []*syntax.Ribbon
	// reclassified lists the "()" / "[]" nodes produced by Pass A's
	// ambiguous-bracket dispatch, for Pass C to clean up.
	reclassified []*syntax.Ribbon
}

// foldOperators is Pass A.
func (p *parser) foldOperators(res *lexer.Result) {
	for g, candidates := range res.FoldIndex {
		if len(candidates) > 0 {
			rightToLeft := token.RightAssociative.Has(candidates[0].Data)
			if rightToLeft {
				for i := len(candidates) - 1; i >= 0; i-- {
					p.foldOne(candidates[i])
				}
			} else {
				for i := 0; i < len(candidates); i++ {
					p.foldOne(candidates[i])
				}
			}
		}
		// "(" / "[" fold at the same tightness as "." (group 0, member
		// access); run ambiguous-bracket reclassification right after it so
		// a callee chain like "a.b(c)" sees "." already folded into a
		// single node before checking what sits to an invocation's left.
		// This runs whether or not any "." actually appeared in source.
		if g == 0 {
			for _, candidate := range res.InvocationCandidates {
				p.reclassifyBracket(candidate)
			}
		}
	}
}

// foldOne dispatches a single fold_index candidate by its syntactic
// role. A node's Parent is set both by the lexer (every node inside a
// "(" / "[" / "{" group is parented to that group from the moment it is
// lexed) and by an earlier fold absorbing it as a child, so Parent alone
// cannot distinguish "merely nested" from "already consumed" — no check
// is needed here: if an earlier candidate already folded n into its own
// Children (clearing n's Prev/Next via Unlink), FoldLeft/FoldRight below
// simply find no sibling and do nothing.
func (p *parser) foldOne(n *syntax.Ribbon) {
	role := token.RoleOf(n.Data)
	if isKeywordRole(role) && n.Next != nil && n.Next.Data == ":" {
		// Do not fold a keyword immediately followed by ":" — it is an
		// object-literal key, not an operator use of this token.
		return
	}
	switch role {
	case token.RoleBinary:
		n.FoldLeft()
		n.FoldRight()
	case token.RolePrefixUnary:
		n.FoldRight()
	case token.RolePostfixUnary:
		n.FoldLeft()
	case token.RoleTernary:
		p.foldTernary(n)
	case token.RoleGrabUntilBlock:
		p.foldGrabUntilBlock(n)
	case token.RoleOptionalRightFold:
		if n.Next != nil && n.Next.Data != ";" {
			n.FoldRight()
		}
	}
}

// isKeywordRole reports whether role belongs to a textual keyword (as
// opposed to a punctuation operator), the set spec.md §4.4's
// ":"-guard applies to.
func isKeywordRole(role token.Role) bool {
	switch role {
	case token.RoleGrabUntilBlock, token.RoleOptionalRightFold, token.RolePrefixUnary:
		return true
	}
	return false
}

// foldTernary assembles "cond ? then : elseExpr" into a 3-child node.
// The literal two-fold-then-swap recipe in spec.md §4.4 only accounts
// for two children; it does not say what happens to the ":" separator,
// and a real ternary has three operands, not two. This resolves it by
// folding "then" to the right, discarding the bare ":" marker if one
// follows, folding "elseExpr" to the right, then folding "cond" to the
// left and rotating the append order ([then, elseExpr, cond]) into the
// documented [cond, then, elseExpr] shape.
func (p *parser) foldTernary(q *syntax.Ribbon) {
	q.FoldRight()
	if q.Next != nil && q.Next.Data == ":" {
		colon := q.Next
		colon.Unlink()
		q.FoldRight()
	}
	q.FoldLeft()
	switch len(q.Children) {
	case 3:
		q.Children[0], q.Children[1], q.Children[2] = q.Children[2], q.Children[0], q.Children[1]
	case 2:
		q.Children[0], q.Children[1] = q.Children[1], q.Children[0]
	}
}

// foldGrabUntilBlock absorbs a construct's pre-block items (up to its
// role-specific maximum), its block or bare-";" body, and a recognized
// continuation keyword, in that order.
func (p *parser) foldGrabUntilBlock(n *syntax.Ribbon) {
	max := token.MaxPreBlock(n.Data)
	for count := 0; count < max && n.Next != nil && n.Next.Data != "{" && n.Next.Data != ";"; count++ {
		n.FoldRight()
	}
	if n.Next != nil {
		n.FoldRight()
	}
	if cont, ok := token.Continuation[n.Data]; ok && n.Next != nil && n.Next.Data == cont {
		n.FoldRight()
	}
}

// reclassifyBracket turns an ambiguous "(" / "[" candidate into an
// invocation/dereference node when its left sibling qualifies (spec.md
// §4.4). Candidates that don't qualify are left as plain grouping
// nodes.
func (p *parser) reclassifyBracket(bracket *syntax.Ribbon) {
	// bracket.Parent is always non-nil here when this candidate is itself
	// lexically nested inside an enclosing group — that alone doesn't mean
	// it was already reclassified, since each candidate is visited exactly
	// once. left/Prev is what actually tells us whether there is anything
	// to reclassify against, scoped correctly to whatever local sibling
	// chain bracket belongs to regardless of nesting depth.
	left := bracket.Prev
	if left == nil {
		return
	}
	if left.Prev != nil && left.Prev.Data == "function" {
		// "function f(x)": the name and the parameter list are two separate
		// pre-block items of the function construct, not a call of f.
		return
	}
	if !token.AllowsValueBefore(left.Data, token.IsOperator(left.Data)) {
		return
	}
	outerData := "[]"
	if bracket.Data == "(" {
		outerData = "()"
	}
	outer := syntax.NewRibbon(outerData)
	p.created = append(p.created, outer)

	left.Wrap(outer)
	bracket.Unlink()
	outer.PushChild(bracket)

	p.reclassified = append(p.reclassified, outer)
}

// foldInferredSemicolons is Pass B. It walks every node ever created, in
// reverse creation order, wrapping any node that still has a dangling
// Next sibling in an "i;" node that absorbs it.
func (p *parser) foldInferredSemicolons() {
	for i := len(p.created) - 1; i >= 0; i-- {
		n := p.created[i]
		if n.Next == nil {
			continue
		}
		parent := n.Parent
		semi := syntax.NewRibbon("i;")
		n.Wrap(semi)
		semi.FoldRight()
		replaceInParent(parent, n, semi)
	}
}

// resolveGroupBodies fixes up every "(" / "[" / "{" group's Children[0]:
// the lexer pushes the group's first content token there directly, but
// that token is typically consumed as a child of whatever operator
// folds it (e.g. "{a+b}"'s "a" ends up under "+", not under "{"), which
// leaves the group's own Children slice pointing at a node that is no
// longer the root of its content. For each tracked group, the one
// content child still genuinely belongs there only if its Parent is
// still the group itself (nothing folded it); otherwise the true root
// of that content is found by ascending Parent links from it, one step
// at a time, stopping as soon as the next link would lead back to the
// group itself — ascending all the way to syntax.Ribbon.Root() overshoots,
// since the group node itself is still part of that Parent chain (and,
// for a group nested inside an enclosing operator, so is that operator).
func (p *parser) resolveGroupBodies() {
	for _, n := range p.created {
		if n.Data != "(" && n.Data != "[" && n.Data != "{" {
			continue
		}
		if len(n.Children) != 1 {
			continue
		}
		current := n.Children[0]
		if current.Parent == n {
			continue
		}
		for current.Parent != n && current.Parent != nil {
			current = current.Parent
		}
		n.Children[0] = current
	}
}

// replaceInParent swaps parent's reference to oldNode for newNode after
// Wrap has reparented oldNode underneath newNode — Wrap updates
// oldNode.Parent but has no way to reach back into parent's own
// Children slice, so the caller must fix that up itself.
func replaceInParent(parent, oldNode, newNode *syntax.Ribbon) {
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c == oldNode {
			parent.Children[i] = newNode
			return
		}
	}
}

// cleanupInvocations is Pass C: every reclassified invocation node has
// the shape ()[callee, group], where group still wraps the actual
// argument-list node (or is empty, for a zero-argument call). Replace
// group with its sole child so the invocation owns the argument list
// directly; an empty group is dropped entirely, which the serializer
// renders as bare "()".
func (p *parser) cleanupInvocations() {
	for _, outer := range p.reclassified {
		if len(outer.Children) < 2 {
			continue
		}
		group := outer.Children[1]
		switch len(group.Children) {
		case 0:
			outer.Children = outer.Children[:1]
		case 1:
			arg := group.Children[0]
			arg.Reparent(outer)
			outer.Children[1] = arg
		}
	}
}
