package ast

import "fmt"

// FunctionDef is `name(params) -> returnType { body }`. Grounded on
// exitFunctionDefinition: it consumes an Ident + ParamList
// directly (never a FunctionDeclarator — see that type's doc comment), and
// defaults ReturnType to the unit type when the CST omits one.
type FunctionDef struct {
	position   Position
	NameIdent  *Ident
	Params     *ParamList
	ReturnType Type
	Body       *CompoundStmt
}

func NewFunctionDef(pos Position, name *Ident, params *ParamList, returnType Type, body *CompoundStmt) *FunctionDef {
	return &FunctionDef{position: pos, NameIdent: name, Params: params, ReturnType: returnType, Body: body}
}
func (n *FunctionDef) Pos() Position  { return n.position }
func (n *FunctionDef) String() string { return fmt.Sprintf("FunctionDef(%s)", n.NameIdent.Name_) }
func (n *FunctionDef) Name() string   { return n.NameIdent.Name_ }

// PreprocInclude is a `#include <...>` / `#include "..."` directive.
type PreprocInclude struct {
	position Position
	Path     string
}

func NewPreprocInclude(pos Position, path string) *PreprocInclude {
	return &PreprocInclude{position: pos, Path: path}
}
func (n *PreprocInclude) Pos() Position  { return n.position }
func (n *PreprocInclude) String() string { return fmt.Sprintf("PreprocInclude(%s)", n.Path) }

// PreprocDefine is a `#define NAME value?` directive.
type PreprocDefine struct {
	position Position
	Name     string
	Value    string
}

func NewPreprocDefine(pos Position, name, value string) *PreprocDefine {
	return &PreprocDefine{position: pos, Name: name, Value: value}
}
func (n *PreprocDefine) Pos() Position  { return n.position }
func (n *PreprocDefine) String() string { return fmt.Sprintf("PreprocDefine(%s)", n.Name) }

// TranslationUnit is the AST root: an ordered sequence of top-level items,
// additionally categorized on insertion into per-kind lists so downstream
// passes can iterate each category in O(1).
type TranslationUnit struct {
	position Position

	Items []Node // insertion order, all top-level items

	Declarations  []*Decl
	Functions     []*FunctionDef
	Includes      []*PreprocInclude
	Typedefs      []*TypedefType
	MacroDefines  []*PreprocDefine
	ExprStmts     []*ExprStmt
}

func NewTranslationUnit(pos Position) *TranslationUnit { return &TranslationUnit{position: pos} }

func (n *TranslationUnit) Pos() Position  { return n.position }
func (n *TranslationUnit) String() string { return fmt.Sprintf("TranslationUnit(%d items)", len(n.Items)) }

// Add categorizes and appends a top-level item. Returns false if the item's
// type is not a valid top-level item .
func (n *TranslationUnit) Add(item Node) bool {
	switch v := item.(type) {
	case *Decl:
		n.Declarations = append(n.Declarations, v)
	case *FunctionDef:
		n.Functions = append(n.Functions, v)
	case *PreprocInclude:
		n.Includes = append(n.Includes, v)
	case *TypedefType:
		n.Typedefs = append(n.Typedefs, v)
	case *PreprocDefine:
		n.MacroDefines = append(n.MacroDefines, v)
	case *ExprStmt:
		n.ExprStmts = append(n.ExprStmts, v)
	default:
		return false
	}
	n.Items = append(n.Items, item)
	return true
}
