package ast

import "fmt"

// PointerDeclarator wraps a base declarator behind a `*`, e.g. `*x`.
type PointerDeclarator struct {
	position Position
	Base     Declarator
}

func NewPointerDeclarator(pos Position, base Declarator) *PointerDeclarator {
	return &PointerDeclarator{position: pos, Base: base}
}
func (n *PointerDeclarator) Pos() Position      { return n.position }
func (n *PointerDeclarator) String() string     { return "PointerDeclarator" }
func (n *PointerDeclarator) declaratorNode()    {}
func (n *PointerDeclarator) Name() string       { return n.Base.Name() }

// ArrayDeclarator wraps a base declarator with a size expression, e.g.
// `x[10]`. Multi-dimensional arrays nest ArrayDeclarators, outermost first,
// matching requirement that an array type's dimension list is
// ordered outermost-first.
type ArrayDeclarator struct {
	position Position
	Base     Declarator
	Size     Expr // nil if unsized, e.g. a function parameter `x[]`
}

func NewArrayDeclarator(pos Position, base Declarator, size Expr) *ArrayDeclarator {
	return &ArrayDeclarator{position: pos, Base: base, Size: size}
}
func (n *ArrayDeclarator) Pos() Position   { return n.position }
func (n *ArrayDeclarator) String() string  { return "ArrayDeclarator" }
func (n *ArrayDeclarator) declaratorNode() {}
func (n *ArrayDeclarator) Name() string    { return n.Base.Name() }

// AbstractPointerDeclarator is a pointer declarator with no name beneath it
// (used in abstract type positions, e.g. a cast target `(int*)`).
type AbstractPointerDeclarator struct {
	position Position
}

func NewAbstractPointerDeclarator(pos Position) *AbstractPointerDeclarator {
	return &AbstractPointerDeclarator{position: pos}
}
func (n *AbstractPointerDeclarator) Pos() Position      { return n.position }
func (n *AbstractPointerDeclarator) String() string     { return "AbstractPointerDeclarator" }
func (n *AbstractPointerDeclarator) declaratorNode()    {}
func (n *AbstractPointerDeclarator) Name() string       { return "" }

// FunctionDeclarator is a reserved, unpopulated declarator variant. It is
// kept in the taxonomy for completeness but the builder's handler never
// constructs one; function definitions consume an Ident + ParamList
// directly (see Builder.exitFunctionDefinition).
type FunctionDeclarator struct {
	position Position
	NameIdent *Ident
	Params    *ParamList
}

func NewFunctionDeclarator(pos Position, name *Ident, params *ParamList) *FunctionDeclarator {
	return &FunctionDeclarator{position: pos, NameIdent: name, Params: params}
}
func (n *FunctionDeclarator) Pos() Position      { return n.position }
func (n *FunctionDeclarator) String() string     { return fmt.Sprintf("FunctionDeclarator(%s)", n.NameIdent.Name_) }
func (n *FunctionDeclarator) declaratorNode()    {}
func (n *FunctionDeclarator) Name() string       { return n.NameIdent.Name_ }

// MutableSpec marks a declaration or parameter as mutable (`mut`). It is a
// plain marker node, consumed by exitDeclaration/exitParameter and never
// otherwise referenced, matching IrMutableSpec.
type MutableSpec struct{ position Position }

func NewMutableSpec(pos Position) *MutableSpec { return &MutableSpec{position: pos} }
func (n *MutableSpec) Pos() Position  { return n.position }
func (n *MutableSpec) String() string { return "MutableSpec" }

// ParamDecl is a single function parameter: `name: type`.
type ParamDecl struct {
	position  Position
	NameIdent *Ident
	ParamType Type
}

func NewParamDecl(pos Position, name *Ident, t Type) *ParamDecl {
	return &ParamDecl{position: pos, NameIdent: name, ParamType: t}
}
func (n *ParamDecl) Pos() Position  { return n.position }
func (n *ParamDecl) String() string { return fmt.Sprintf("ParamDecl(%s)", n.NameIdent.Name_) }
func (n *ParamDecl) Name() string   { return n.NameIdent.Name_ }

// ParamList is an ordered list of parameter declarations.
type ParamList struct {
	position Position
	Params   []*ParamDecl
}

func NewParamList(pos Position) *ParamList { return &ParamList{position: pos} }
func (n *ParamList) Pos() Position  { return n.position }
func (n *ParamList) String() string { return fmt.Sprintf("ParamList(%d)", len(n.Params)) }

// Decl is a top-level declaration: `mut? name: type?`. Local `let`
// declarations are lowered to a DeclStmt instead (see
// Builder.exitDeclaration, which always produces a DeclStmt, since the
// grammar's let_declaration only occurs inside blocks).
type Decl struct {
	position Position
	Mutable  bool
	NameIdent *Ident
	DeclType  Type // nil if elided
}

func NewDecl(pos Position, mutable bool, name *Ident, t Type) *Decl {
	return &Decl{position: pos, Mutable: mutable, NameIdent: name, DeclType: t}
}
func (n *Decl) Pos() Position  { return n.position }
func (n *Decl) String() string { return fmt.Sprintf("Decl(%s)", n.NameIdent.Name_) }
