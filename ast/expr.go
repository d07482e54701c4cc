package ast

import "fmt"

// Ident is both an expression (a variable reference) and the base case of
// the Declarator family.
type Ident struct {
	position Position
	Name_    string
}

func NewIdent(pos Position, name string) *Ident { return &Ident{position: pos, Name_: name} }

func (n *Ident) Pos() Position      { return n.position }
func (n *Ident) String() string     { return fmt.Sprintf("Ident(%s)", n.Name_) }
func (n *Ident) exprNode()          {}
func (n *Ident) lvalueNode()        {}
func (n *Ident) declaratorNode()    {}
func (n *Ident) Name() string       { return n.Name_ }

// IntLiteral is an integer literal. Integer, char, bool, and string
// literals are kept as distinct types rather than one polymorphic
// literal, preferring small concrete structs over a single
// tagged-union-by-field struct.
type IntLiteral struct {
	position Position
	Value    int64
}

func NewIntLiteral(pos Position, v int64) *IntLiteral { return &IntLiteral{position: pos, Value: v} }
func (n *IntLiteral) Pos() Position  { return n.position }
func (n *IntLiteral) String() string { return fmt.Sprintf("IntLiteral(%d)", n.Value) }
func (n *IntLiteral) exprNode()      {}

type CharLiteral struct {
	position Position
	Value    rune
}

func NewCharLiteral(pos Position, v rune) *CharLiteral { return &CharLiteral{position: pos, Value: v} }
func (n *CharLiteral) Pos() Position  { return n.position }
func (n *CharLiteral) String() string { return fmt.Sprintf("CharLiteral(%q)", n.Value) }
func (n *CharLiteral) exprNode()      {}

type BoolLiteral struct {
	position Position
	Value    bool
}

func NewBoolLiteral(pos Position, v bool) *BoolLiteral { return &BoolLiteral{position: pos, Value: v} }
func (n *BoolLiteral) Pos() Position  { return n.position }
func (n *BoolLiteral) String() string { return fmt.Sprintf("BoolLiteral(%v)", n.Value) }
func (n *BoolLiteral) exprNode()      {}

type StringLiteral struct {
	position Position
	Value    string
}

func NewStringLiteral(pos Position, v string) *StringLiteral {
	return &StringLiteral{position: pos, Value: v}
}
func (n *StringLiteral) Pos() Position  { return n.position }
func (n *StringLiteral) String() string { return fmt.Sprintf("StringLiteral(%q)", n.Value) }
func (n *StringLiteral) exprNode()      {}

// BinaryExpr is `left op right`. The operator is recovered from the CST
// node's source text (see operatorText), never popped from the working
// stack (grounded on exitBinaryExpr).
type BinaryExpr struct {
	position Position
	Left     Expr
	Op       string
	Right    Expr
}

func NewBinaryExpr(pos Position, left Expr, op string, right Expr) *BinaryExpr {
	return &BinaryExpr{position: pos, Left: left, Op: op, Right: right}
}
func (n *BinaryExpr) Pos() Position  { return n.position }
func (n *BinaryExpr) String() string { return fmt.Sprintf("BinaryExpr(%s)", n.Op) }
func (n *BinaryExpr) exprNode()      {}

// UnaryExpr is `op operand`; the operator is recovered from the CST node's
// source text (exitUnaryExpr, via operatorText).
type UnaryExpr struct {
	position Position
	Op       string
	Operand  Expr
}

func NewUnaryExpr(pos Position, op string, operand Expr) *UnaryExpr {
	return &UnaryExpr{position: pos, Op: op, Operand: operand}
}
func (n *UnaryExpr) Pos() Position  { return n.position }
func (n *UnaryExpr) String() string { return fmt.Sprintf("UnaryExpr(%s)", n.Op) }
func (n *UnaryExpr) exprNode()      {}

// ParenExpr is transparent to LIR generation
// but kept as a node so pretty-printing can round-trip source parens.
type ParenExpr struct {
	position Position
	Inner    Expr
}

func NewParenExpr(pos Position, inner Expr) *ParenExpr { return &ParenExpr{position: pos, Inner: inner} }
func (n *ParenExpr) Pos() Position  { return n.position }
func (n *ParenExpr) String() string { return "ParenExpr" }
func (n *ParenExpr) exprNode()      {}

// ArgList holds a call's argument expressions in source order.
type ArgList struct {
	position Position
	Args     []Expr
}

func NewArgList(pos Position, args []Expr) *ArgList { return &ArgList{position: pos, Args: args} }
func (n *ArgList) Pos() Position  { return n.position }
func (n *ArgList) String() string { return fmt.Sprintf("ArgList(%d)", len(n.Args)) }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	position Position
	Callee   *Ident
	Args     []Expr
}

func NewCallExpr(pos Position, callee *Ident, args *ArgList) *CallExpr {
	var a []Expr
	if args != nil {
		a = args.Args
	}
	return &CallExpr{position: pos, Callee: callee, Args: a}
}
func (n *CallExpr) Pos() Position  { return n.position }
func (n *CallExpr) String() string { return fmt.Sprintf("CallExpr(%s)", n.Callee.Name_) }
func (n *CallExpr) exprNode()      {}

// FieldAccessExpr is `base.field` or `base->field`.
type FieldAccessExpr struct {
	position Position
	Base     Expr
	Field    string
	Arrow    bool // true for "->", false for "."
}

func NewFieldAccessExpr(pos Position, base Expr, field string, arrow bool) *FieldAccessExpr {
	return &FieldAccessExpr{position: pos, Base: base, Field: field, Arrow: arrow}
}
func (n *FieldAccessExpr) Pos() Position  { return n.position }
func (n *FieldAccessExpr) String() string { return fmt.Sprintf("FieldAccessExpr(.%s)", n.Field) }
func (n *FieldAccessExpr) exprNode()      {}
func (n *FieldAccessExpr) lvalueNode()    {}

// PointerExpr is a prefix `&expr` (address-of) or `*expr` (dereference).
type PointerExpr struct {
	position Position
	Op       string // "&" or "*"
	Operand  Expr
}

func NewPointerExpr(pos Position, op string, operand Expr) *PointerExpr {
	return &PointerExpr{position: pos, Op: op, Operand: operand}
}
func (n *PointerExpr) Pos() Position  { return n.position }
func (n *PointerExpr) String() string { return fmt.Sprintf("PointerExpr(%s)", n.Op) }
func (n *PointerExpr) exprNode()      {}
func (n *PointerExpr) lvalueNode()    {}

// SubscriptExpr is `base[index]`, recursively nestable for multi-D arrays:
// `a[i][j]` lowers to SubscriptExpr{Base: SubscriptExpr{Base: a, Index: i}, Index: j}.
type SubscriptExpr struct {
	position Position
	Base     Expr
	Index    Expr
}

func NewSubscriptExpr(pos Position, base, index Expr) *SubscriptExpr {
	return &SubscriptExpr{position: pos, Base: base, Index: index}
}
func (n *SubscriptExpr) Pos() Position  { return n.position }
func (n *SubscriptExpr) String() string { return "SubscriptExpr" }
func (n *SubscriptExpr) exprNode()      {}
func (n *SubscriptExpr) lvalueNode()    {}

// AssignExpr is `lhs op rhs` where op is one of the compound-assignment
// operators or plain "=".
type AssignExpr struct {
	position Position
	Lhs      Expr
	Op       string
	Rhs      Expr
}

func NewAssignExpr(pos Position, lhs Expr, op string, rhs Expr) *AssignExpr {
	return &AssignExpr{position: pos, Lhs: lhs, Op: op, Rhs: rhs}
}
func (n *AssignExpr) Pos() Position  { return n.position }
func (n *AssignExpr) String() string { return fmt.Sprintf("AssignExpr(%s)", n.Op) }
func (n *AssignExpr) exprNode()      {}

// RangeExpr is `start..end`, used only by for-range lowering where the
// front end chooses to support it; not exercised by the canonical
// C-style for loop.
type RangeExpr struct {
	position   Position
	Start, End Expr
}

func NewRangeExpr(pos Position, start, end Expr) *RangeExpr {
	return &RangeExpr{position: pos, Start: start, End: end}
}
func (n *RangeExpr) Pos() Position  { return n.position }
func (n *RangeExpr) String() string { return "RangeExpr" }
func (n *RangeExpr) exprNode()      {}
