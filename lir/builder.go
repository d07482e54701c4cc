package lir

import (
	"fmt"

	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
)

// Function is one function's generated LIR: its name, its parameter names
// and an ordered statement list. The temp/label counters and break/continue
// targets used while building it live in Builder.
type Function struct {
	Name   string
	Params []string
	Stmts  []Stmt
}

// pos wraps a Function's generation position for diagnostics.
type pos string

func (p pos) String() string { return string(p) }

// Builder assembles one Function's statement list, in source order, from
// the generator's (package-level generate) calls. One Builder exists per
// function being lowered; it is never shared across functions or reused
// after Finish.
type Builder struct {
	fn *Function

	tempCounter  int
	labelCounter int
	labelsSeen   map[string]bool

	loopStack []loopLabels

	Sink *diag.Sink
}

type loopLabels struct {
	continueLabel string
	breakLabel    string
}

// NewBuilder starts a fresh per-function builder.
func NewBuilder(funcName string, params []string, sink *diag.Sink) *Builder {
	return &Builder{
		fn:         &Function{Name: funcName, Params: params},
		labelsSeen: map[string]bool{},
		Sink:       sink,
	}
}

// NewTemp generates a fresh numbered temporary, `#_t0`, `#_t1`, ….
func (b *Builder) NewTemp() Var {
	v := Var(fmt.Sprintf("#_t%d", b.tempCounter))
	b.tempCounter++
	return v
}

// NewStringTemp generates a fresh string-literal temporary, `#str_t0`, ….
func (b *Builder) NewStringTemp() Var {
	v := Var(fmt.Sprintf("#str_t%d", b.tempCounter))
	b.tempCounter++
	return v
}

// NewLabel generates a fresh numbered label, `L0`, `L1`, ….
func (b *Builder) NewLabel() string {
	l := fmt.Sprintf("L%d", b.labelCounter)
	b.labelCounter++
	return l
}

// NewNamedLabel generates a fresh label carrying a descriptive prefix, e.g.
// `for.cond.L3`, so textual LIR dumps read legibly without losing
// uniqueness (the numeric suffix is the same monotone counter NewLabel
// uses).
func (b *Builder) NewNamedLabel(prefix string) string {
	l := fmt.Sprintf("%s.L%d", prefix, b.labelCounter)
	b.labelCounter++
	return l
}

// Emit appends stmt to the function body. A labeled Empty marker whose
// label was already emitted is dropped (logged, not fatal): this can only
// happen if a control-flow lowering rule computed the same label twice,
// which would otherwise silently merge two distinct blocks.
func (b *Builder) Emit(stmt Stmt) {
	if e, ok := stmt.(LabeledStmt); ok {
		if b.labelsSeen[e.Label] {
			b.Sink.Errorf(pos(b.fn.Name), "lir: duplicate label %q dropped", e.Label)
			return
		}
		b.labelsSeen[e.Label] = true
	}
	b.fn.Stmts = append(b.fn.Stmts, stmt)
}

// PushLoop registers the continue/break targets for a loop body the
// generator is about to descend into.
func (b *Builder) PushLoop(continueLabel, breakLabel string) {
	b.loopStack = append(b.loopStack, loopLabels{continueLabel, breakLabel})
}

// PopLoop discards the innermost loop's targets once its body is lowered.
func (b *Builder) PopLoop() {
	b.loopStack = b.loopStack[:len(b.loopStack)-1]
}

// ContinueTarget returns the innermost enclosing loop's continue label, or
// ("", false) if there is no enclosing loop.
func (b *Builder) ContinueTarget() (string, bool) {
	if len(b.loopStack) == 0 {
		return "", false
	}
	top := b.loopStack[len(b.loopStack)-1]
	return top.continueLabel, true
}

// BreakTarget returns the innermost enclosing loop's break label, or
// ("", false) if there is no enclosing loop.
func (b *Builder) BreakTarget() (string, bool) {
	if len(b.loopStack) == 0 {
		return "", false
	}
	top := b.loopStack[len(b.loopStack)-1]
	return top.breakLabel, true
}

// Finish returns the assembled Function. The Builder is not reused
// afterward.
func (b *Builder) Finish() *Function { return b.fn }

// LabeledStmt is a Stmt that also marks a branch target. A labeled Empty
// (see EmitLabel) is the usual target; any other Stmt can be labeled by
// wrapping it in Label.
type LabeledStmt struct {
	Label string
	Stmt  Stmt
}

func (l LabeledStmt) String() string     { return fmt.Sprintf("%s:\n%s", l.Label, l.Stmt) }
func (l LabeledStmt) DefinedVar() string { return l.Stmt.DefinedVar() }
func (l LabeledStmt) isJump() (string, bool) {
	t, c, _ := IsJump(l.Stmt)
	return t, c
}

// Label wraps stmt with a named branch target.
func Label(label string, stmt Stmt) LabeledStmt { return LabeledStmt{Label: label, Stmt: stmt} }

// EmitLabel emits a bare labeled Empty marker, the common case of opening a
// new block with no statement of its own.
func (b *Builder) EmitLabel(label string) {
	b.Emit(Label(label, Empty{}))
}
