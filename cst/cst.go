// Package cst wraps the concrete-syntax-tree oracle this compiler treats as
// an external, opaque collaborator. It is not a parser: it only exposes
// the handful of queries the AST builder needs to lower a real
// tree-sitter parse tree (github.com/smacker/go-tree-sitter) or a
// hand-built fake tree used by tests.
package cst

// Node is the opaque CST handle: a cheap-to-copy reference into an
// immutable tree. Grammar-symbol identifiers are plain ints, matching
// whatever numbering the underlying grammar assigns.
type Node interface {
	// Symbol returns the grammar-symbol identifier for this node's kind.
	Symbol() int
	// Kind returns the grammar's node-type name. The AST builder
	// dispatches on it, and diagnostics print it.
	Kind() string
	// IsNamed reports whether this is a named (vs. anonymous/punctuation)
	// node.
	IsNamed() bool

	// StartByte and EndByte give the node's byte range in the source.
	StartByte() uint32
	EndByte() uint32
	// StartPoint gives the node's (row, column) for diagnostics.
	StartPoint() Point

	// NamedChildCount returns the number of named children.
	NamedChildCount() int
	// NamedChild returns the i'th named child, or nil if out of range.
	NamedChild(i int) Node
	// ChildByFieldName returns the child registered under the given
	// grammar field name, or nil if absent.
	ChildByFieldName(name string) Node

	// Text returns the node's source text.
	Text() string
}

// Point is a (row, column) source position, 0-based like tree-sitter's.
type Point struct {
	Row    uint32
	Column uint32
}

// Visitor's Visit method is invoked for each node encountered by Walk. If
// the returned visitor is non-nil, Walk recurses into the node's children
// with it.
type Visitor interface {
	Visit(Node) Visitor
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses the tree in depth-first pre-order, calling f for each
// node; if f returns false, Inspect does not descend into that node.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Walk traverses the CST in depth-first pre-order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		Walk(v, n.NamedChild(i))
	}
}

// PostOrder calls exit(n) for every node in the tree in post-order, the
// traversal discipline the AST builder (component A) is driven by: a
// parent's exit event always fires after all of its children's.
func PostOrder(n Node, exit func(Node)) {
	if n == nil {
		return
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		PostOrder(n.NamedChild(i), exit)
	}
	exit(n)
}
