package ast

import "fmt"

// Primitive enumerates the primitive type kinds lists.
type Primitive int

const (
	Bool Primitive = iota
	Void
	I8
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	Char
	StringType
	Unit
)

var primitiveNames = map[Primitive]string{
	Bool: "bool", Void: "void", I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128",
	F32: "f32", F64: "f64", Char: "char", StringType: "str", Unit: "()",
}

// Width returns the element width in bytes, used by subscript address
// arithmetic. Pointers are assumed 8 bytes (64-bit target).
func (p Primitive) Width() int {
	switch p {
	case Bool, I8, U8, Char:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64:
		return 8
	case I128, U128:
		return 16
	default:
		return 8
	}
}

// PrimitiveType is a primitive type reference, e.g. `i32`.
type PrimitiveType struct {
	position Position
	Kind     Primitive
}

func NewPrimitiveType(pos Position, kind Primitive) *PrimitiveType {
	return &PrimitiveType{position: pos, Kind: kind}
}
func (n *PrimitiveType) Pos() Position  { return n.position }
func (n *PrimitiveType) String() string { return fmt.Sprintf("PrimitiveType(%s)", primitiveNames[n.Kind]) }
func (n *PrimitiveType) typeNode()      {}

// Width returns the element width in bytes of this type, used by subscript
// lowering: the element width is always computable from its base type.
func (n *PrimitiveType) Width() int { return n.Kind.Width() }

// PointerType is `*T`.
type PointerType struct {
	position Position
	Elem     Type
}

func NewPointerType(pos Position, elem Type) *PointerType { return &PointerType{position: pos, Elem: elem} }
func (n *PointerType) Pos() Position  { return n.position }
func (n *PointerType) String() string { return "PointerType" }
func (n *PointerType) typeNode()      {}
func (n *PointerType) Width() int     { return 8 }

// ReferenceType is `&T` or `&mut T`.
type ReferenceType struct {
	position Position
	Elem     Type
	Mut      bool
}

func NewReferenceType(pos Position, elem Type, mut bool) *ReferenceType {
	return &ReferenceType{position: pos, Elem: elem, Mut: mut}
}
func (n *ReferenceType) Pos() Position  { return n.position }
func (n *ReferenceType) String() string { return "ReferenceType" }
func (n *ReferenceType) typeNode()      {}
func (n *ReferenceType) Width() int     { return 8 }

// ArrayType is `T[d1][d2]...[dn]`, dimension expressions ordered
// outermost-first.
type ArrayType struct {
	position Position
	Elem     Type
	Dims     []Expr // one size expression per dimension, outermost-first
}

func NewArrayType(pos Position, elem Type, dims []Expr) *ArrayType {
	return &ArrayType{position: pos, Elem: elem, Dims: dims}
}
func (n *ArrayType) Pos() Position  { return n.position }
func (n *ArrayType) String() string { return fmt.Sprintf("ArrayType(%d dims)", len(n.Dims)) }
func (n *ArrayType) typeNode()      {}

// ElemWidth returns the width of one array element (the base type's
// width), the `w` in offset polynomial.
func (n *ArrayType) ElemWidth() int {
	switch e := n.Elem.(type) {
	case *PrimitiveType:
		return e.Width()
	case *PointerType:
		return e.Width()
	default:
		return 8
	}
}

// FieldDecl is one `name: type` struct member.
type FieldDecl struct {
	position  Position
	NameIdent *Ident
	FieldType Type
}

func NewFieldDecl(pos Position, name *Ident, t Type) *FieldDecl {
	return &FieldDecl{position: pos, NameIdent: name, FieldType: t}
}
func (n *FieldDecl) Pos() Position  { return n.position }
func (n *FieldDecl) String() string { return fmt.Sprintf("FieldDecl(%s)", n.NameIdent.Name_) }

// StructType is `struct Name? { field* }`.
type StructType struct {
	position Position
	Name     string // "" if anonymous
	Fields   []*FieldDecl
}

func NewStructType(pos Position, name string, fields []*FieldDecl) *StructType {
	return &StructType{position: pos, Name: name, Fields: fields}
}
func (n *StructType) Pos() Position  { return n.position }
func (n *StructType) String() string { return fmt.Sprintf("StructType(%s)", n.Name) }
func (n *StructType) typeNode()      {}

// TypedefType is `typedef T Alias;` (or `type Alias = T;`).
type TypedefType struct {
	position Position
	Aliased  Type
	Alias    string
}

func NewTypedefType(pos Position, aliased Type, alias string) *TypedefType {
	return &TypedefType{position: pos, Aliased: aliased, Alias: alias}
}
func (n *TypedefType) Pos() Position  { return n.position }
func (n *TypedefType) String() string { return fmt.Sprintf("TypedefType(%s)", n.Alias) }
func (n *TypedefType) typeNode()      {}

// NamedType is a reference to a previously declared type name (struct or
// typedef) by identifier.
type NamedType struct {
	position Position
	Name     string
}

func NewNamedType(pos Position, name string) *NamedType { return &NamedType{position: pos, Name: name} }
func (n *NamedType) Pos() Position  { return n.position }
func (n *NamedType) String() string { return fmt.Sprintf("NamedType(%s)", n.Name) }
func (n *NamedType) typeNode()      {}
