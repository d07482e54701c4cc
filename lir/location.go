package lir

import "fmt"

// Location is the Location sum defines: Var(name) |
// Array(name, index Component) | Deref(base Location) |
// Struct(base Location, field name, offset) | TypeAlias(name).
//
// Every Location is also a Component (a location can stand in wherever an
// operand is expected), matching "Component ::= literal | Location".
type Location interface {
	Component
	locationNode()
}

// Var is a named variable or temporary location.
type Var string

func (v Var) String() string { return string(v) }
func (Var) componentNode()   {}
func (Var) locationNode()    {}

// Array is `name[index]`, the result of subscript address-arithmetic
// lowering: index is always a byte offset Component, already
// folded through the polynomial-expansion algorithm.
type Array struct {
	Name  string
	Index Component
}

func (a Array) String() string { return fmt.Sprintf("%s[%s]", a.Name, a.Index.String()) }
func (Array) componentNode()   {}
func (Array) locationNode()    {}

// Deref is `*base`.
type Deref struct {
	Base Location
}

func (d Deref) String() string { return "*" + d.Base.String() }
func (Deref) componentNode()   {}
func (Deref) locationNode()    {}

// Struct is `base.field`. Offset is the field's byte offset within base's
// struct layout; field-access lowering leaves it 0, since no struct layout
// is recorded.
type Struct struct {
	Base   Location
	Field  string
	Offset int
}

func (s Struct) String() string { return fmt.Sprintf("%s.%s", s.Base.String(), s.Field) }
func (Struct) componentNode()   {}
func (Struct) locationNode()    {}

// TypeAlias names a typedef'd type. It is a reserved variant: no lowering
// rule constructs it and none consumes it.
type TypeAlias string

func (t TypeAlias) String() string { return string(t) }
func (TypeAlias) componentNode()   {}
func (TypeAlias) locationNode()    {}
