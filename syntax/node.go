// Package syntax implements the engine's shared data structure: a mutable
// doubly-linked "ribbon" form used only while parsing, and the immutable
// rooted tree form every later stage (matcher, macro expander, compiler)
// consumes. See spec.md §3 and §4.2.
package syntax

import "fmt"

// Node is a syntax-tree node. data is a short text token — an operator
// glyph, keyword, identifier, literal text including its own delimiters,
// or a group opener such as "(", "[", "{", "?", or the inferred semicolon
// "i;". A node's Data plus its child count determines its semantic role;
// Node carries no type tag of its own (Design Note §9: "nodes do not have
// subclasses; their behavior is driven entirely by data and the static
// classification tables").
//
// Node is a value type. Consumers that receive an already-parsed tree
// should treat it as immutable (spec.md §3); the tree primitives below
// exist for the construction side — building replacement trees inside
// macro expanders and the bundled packs.
type Node struct {
	Data     string
	Children []Node
}

// New builds a node from data and a variadic list of children. Each
// child may be a Node or a string; strings are auto-wrapped as leaf
// nodes, so template-construction code can write New("+", "a", "b")
// instead of New("+", Leaf("a"), Leaf("b")).
func New(data string, children ...interface{}) Node {
	n := Node{Data: data, Children: make([]Node, 0, len(children))}
	for _, c := range children {
		switch v := c.(type) {
		case Node:
			n.Children = append(n.Children, v)
		case string:
			n.Children = append(n.Children, Leaf(v))
		default:
			panic(fmt.Sprintf("syntax.New: unsupported child type %T", c))
		}
	}
	return n
}

// Leaf builds a childless node.
func Leaf(data string) Node { return Node{Data: data} }

// PushChild appends child to n's children.
func (n *Node) PushChild(child Node) {
	n.Children = append(n.Children, child)
}

// PopChild removes and returns the last child. ok is false if n has no
// children.
func (n *Node) PopChild() (child Node, ok bool) {
	if len(n.Children) == 0 {
		return Node{}, false
	}
	last := len(n.Children) - 1
	child = n.Children[last]
	n.Children = n.Children[:last]
	return child, true
}

// ReplaceChild replaces the child at index i with replacement. It panics
// if i is out of range: an invalid index is a violation of an invariant
// the caller is expected to maintain, not a recoverable condition
// (spec.md §4.2: "Invalid-index mutations must panic").
func (n *Node) ReplaceChild(i int, replacement Node) {
	if i < 0 || i >= len(n.Children) {
		panic(fmt.Sprintf("syntax.ReplaceChild: index %d out of range (len=%d)", i, len(n.Children)))
	}
	n.Children[i] = replacement
}
