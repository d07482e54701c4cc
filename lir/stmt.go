package lir

import (
	"fmt"
	"strings"
)

// Stmt is the LIR instruction sum type. Every concrete Stmt also
// implements DefinedVar, reporting the location it defines (or "" if it
// defines none). The SSA pass (package ssa) collects Defs(v) for phi
// placement with its own scalar-only definedVar helper.
type Stmt interface {
	fmt.Stringer
	// DefinedVar returns the location name this statement defines, or ""
	// if it defines nothing.
	DefinedVar() string
	isJump() (target string, conditional bool)
}

func (Empty) isJump() (string, bool)        { return "", false }
func (AssignReg) isJump() (string, bool)    { return "", false }
func (AssignBin) isJump() (string, bool)    { return "", false }
func (AssignUn) isJump() (string, bool)     { return "", false }
func (AssignAddr) isJump() (string, bool)   { return "", false }
func (AssignDeref) isJump() (string, bool)  { return "", false }
func (s Jump) isJump() (string, bool)       { return s.Target, s.Conditional }
func (MethodCall) isJump() (string, bool)   { return "", false }
func (Return) isJump() (string, bool)       { return "", false }
func (Phi) isJump() (string, bool)          { return "", false }

// IsJump reports whether stmt terminates its block with a branch, and if
// so, its target label and whether it is conditional.
func IsJump(s Stmt) (target string, conditional bool, ok bool) {
	t, c := s.isJump()
	return t, c, t != ""
}

// Empty is a labeled marker used as a branch target, emitted by
// control-flow lowering at `if.else`/`if.end`/`for.cond`/etc.
type Empty struct{}

func (Empty) String() string     { return "EMPTY" }
func (Empty) DefinedVar() string { return "" }

// AssignReg is `dst = src`.
type AssignReg struct {
	Dst Location
	Src Component
}

func (s AssignReg) String() string     { return fmt.Sprintf("%s = %s", s.Dst, s.Src) }
func (s AssignReg) DefinedVar() string { return s.Dst.String() }

// AssignBin is `dst = lhs op rhs`.
type AssignBin struct {
	Dst      Location
	Lhs      Component
	Op       string
	Rhs      Component
}

func (s AssignBin) String() string     { return fmt.Sprintf("%s = %s %s %s", s.Dst, s.Lhs, s.Op, s.Rhs) }
func (s AssignBin) DefinedVar() string { return s.Dst.String() }

// AssignUn is `dst = op operand`.
type AssignUn struct {
	Dst     Location
	Op      string
	Operand Component
}

func (s AssignUn) String() string     { return fmt.Sprintf("%s = %s %s", s.Dst, s.Op, s.Operand) }
func (s AssignUn) DefinedVar() string { return s.Dst.String() }

// AssignAddr is `dst = &src`.
type AssignAddr struct {
	Dst Location
	Src Location
}

func (s AssignAddr) String() string     { return fmt.Sprintf("%s = &%s", s.Dst, s.Src) }
func (s AssignAddr) DefinedVar() string { return s.Dst.String() }

// AssignDeref is `*dst = src`.
type AssignDeref struct {
	Dst Location
	Src Component
}

func (s AssignDeref) String() string     { return fmt.Sprintf("*%s = %s", s.Dst, s.Src) }
func (s AssignDeref) DefinedVar() string { return "" }

// Jump is a conditional or unconditional branch. A conditional jump uses
// ifZ semantics: it fires when Condition evaluates to zero.
type Jump struct {
	Target      string
	Conditional bool
	Condition   Component // nil if unconditional
}

func (s Jump) String() string {
	if s.Conditional {
		return fmt.Sprintf("ifZ %s goto %s", s.Condition, s.Target)
	}
	return fmt.Sprintf("goto %s", s.Target)
}
func (s Jump) DefinedVar() string { return "" }

// MethodCall is `ret = name(args...)`, rendered with a trailing comma
// after the last argument per ("trailing comma preserved").
type MethodCall struct {
	Name string
	Args []Component
	Ret  Location
}

func (s MethodCall) String() string {
	var sb strings.Builder
	for _, a := range s.Args {
		sb.WriteString(a.String())
		sb.WriteByte(',')
	}
	ret := ""
	if s.Ret != nil {
		ret = s.Ret.String() + " = "
	}
	return fmt.Sprintf("%s%s(%s)", ret, s.Name, sb.String())
}
func (s MethodCall) DefinedVar() string {
	if s.Ret == nil {
		return ""
	}
	return s.Ret.String()
}

// Return is `return v` or `return `.
type Return struct {
	Value Component // nil if no value
}

func (s Return) String() string {
	if s.Value == nil {
		return "return "
	}
	return fmt.Sprintf("return %s", s.Value)
}
func (s Return) DefinedVar() string { return "" }

// PhiArg is one incoming (value, predecessor-block-label) pair of a Phi
// statement.
type PhiArg struct {
	Value          Component
	PredecessorBB  string
}

// Phi is introduced only by SSA (component C2), never by the LIR builder
// directly.
type Phi struct {
	Dst  Location
	Args []PhiArg
}

func (s Phi) String() string {
	var parts []string
	for _, a := range s.Args {
		parts = append(parts, fmt.Sprintf("%s from %s", a.Value, a.PredecessorBB))
	}
	return fmt.Sprintf("%s = phi [%s]", s.Dst, strings.Join(parts, ", "))
}
func (s Phi) DefinedVar() string { return s.Dst.String() }
