// Package ast implements a stack-based post-order lowering of an opaque
// CST (package cst) into a strongly-typed abstract syntax tree, using a
// tagged-variant Node shape: a shared interface over many small concrete
// struct types, each carrying its own source position for diagnostics.
package ast

import (
	"fmt"

	"github.com/Geoffrey1014/svf-front-end-sub000/cst"
)

// Position is the source-code location an AST node was lowered from. It
// must always equal the originating CST node's start position.
type Position struct {
	Line, Column int
	StartByte    uint32
	EndByte      uint32
}

// String renders "line:column", the prefix every diag message uses.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func posOf(n cst.Node) Position {
	pt := n.StartPoint()
	return Position{
		Line:      int(pt.Row) + 1,
		Column:    int(pt.Column) + 1,
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
	}
}

// Node is the tagged-variant interface every AST node satisfies. It carries
// just enough to drive diagnostics (Pos, String) and downcasting from the
// builder's working stack: the concrete Go type itself serves as the
// variant tag, and handlers use type switches/assertions to downcast.
type Node interface {
	Pos() Position
	// String returns a short, single-line description used in diagnostics
	// (not a full pretty-print).
	String() string
}

// Expr is any AST node that can appear as an "expression"
// (an r-value-producing construct).
type Expr interface {
	Node
	exprNode()
}

// Stmt is any AST node that can appear as a "statement".
type Stmt interface {
	Node
	stmtNode()
}

// Declarator is any node in the "carries a name" family: identifier,
// pointer, array, abstract-pointer, and function declarators. Nested
// declarators recurse to their base; Name() forwards down to the base
// identifier for every declarator kind.
type Declarator interface {
	Node
	declaratorNode()
	// Name returns the declared identifier, recursing through wrapping
	// declarators (pointer, array, ...) to the base identifier.
	Name() string
}

// Type is any AST node in the type variant.
type Type interface {
	Node
	typeNode()
}

// LValue is satisfied by expressions that are valid assignment targets:
// identifier, field access, subscript, and pointer-dereference forms.
type LValue interface {
	Expr
	lvalueNode()
}
