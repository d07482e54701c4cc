package lir

import (
	"github.com/Geoffrey1014/svf-front-end-sub000/ast"
)

// arrayInfo is the per-array side information subscript lowering needs:
// the element width and the size of every dimension. The first dimension's
// size is stored but never enters the offset polynomial.
type arrayInfo struct {
	elemWidth int
	dims      []int // dims[0] is the outermost dimension, as declared
}

// SymbolTable binds names to their declared type and to the Component an
// identifier reference lowers to, within one lexical scope, chaining to an
// enclosing scope on lookup miss. The two maps are kept separate because
// they answer different questions: Lookup answers "what type is this name"
// (the generator does not call it), while LookupVar answers "what operand
// does this name lower to" (used by genExpr to turn an *ast.Ident into a
// Component). A third map, arrays, holds array shapes for subscript
// lowering (DeclareArray/LookupArray).
type SymbolTable struct {
	parent   *SymbolTable
	vars     map[string]ast.Type
	bindings map[string]Component
	arrays   map[string]arrayInfo
}

// NewSymbolTable creates a scope chained to parent (nil for the outermost,
// file-level scope).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		parent:   parent,
		vars:     map[string]ast.Type{},
		bindings: map[string]Component{},
		arrays:   map[string]arrayInfo{},
	}
}

// Declare binds name to t in this scope, shadowing any outer binding, and
// records the Component a reference to name lowers to (a plain Var holding
// its name, the only binding shape this front end's locals ever need).
func (t *SymbolTable) Declare(name string, typ ast.Type) {
	t.vars[name] = typ
	t.bindings[name] = Var(name)
}

// Lookup finds name's declared type, searching enclosing scopes outward.
func (t *SymbolTable) Lookup(name string) (ast.Type, bool) {
	for s := t; s != nil; s = s.parent {
		if typ, ok := s.vars[name]; ok {
			return typ, true
		}
	}
	return nil, false
}

// LookupVar finds the Component name is bound to, searching enclosing
// scopes outward.
func (t *SymbolTable) LookupVar(name string) (Component, bool) {
	for s := t; s != nil; s = s.parent {
		if c, ok := s.bindings[name]; ok {
			return c, true
		}
	}
	return nil, false
}

// DeclareArray records name's array shape for subscript lowering. dimSizes
// holds constant sizes the caller has already evaluated; DeclareArray
// evaluates no expressions, and variable-length arrays are not supported.
func (t *SymbolTable) DeclareArray(name string, elemWidth int, dimSizes []int) {
	t.arrays[name] = arrayInfo{elemWidth: elemWidth, dims: dimSizes}
}

// LookupArray finds name's recorded array shape, searching enclosing scopes.
func (t *SymbolTable) LookupArray(name string) (elemWidth int, dims []int, ok bool) {
	for s := t; s != nil; s = s.parent {
		if info, found := s.arrays[name]; found {
			return info.elemWidth, info.dims, true
		}
	}
	return 0, nil, false
}

// ScopeStack tracks the lexical nesting the generator is currently inside,
// tagging each frame with whether it is a loop body (for break/continue
// validity) and the enclosing function's declared return type (for bare
// `return;` widening/validation).
type ScopeStack struct {
	frames []*scopeFrame
}

type scopeFrame struct {
	table      *SymbolTable
	isLoop     bool
	returnType ast.Type
}

// NewScopeStack returns an empty stack. Generate pushes one frame per
// function, chained to the caller's file scope; blocks and loops push no
// frame of their own.
func NewScopeStack() *ScopeStack { return &ScopeStack{} }

// Enter pushes a new frame with its own SymbolTable (chained to the
// current top, or nil if this is the first frame).
func (s *ScopeStack) Enter(isLoop bool, returnType ast.Type) *SymbolTable {
	var parent *SymbolTable
	if len(s.frames) > 0 {
		parent = s.top().table
		if returnType == nil {
			returnType = s.top().returnType
		}
	}
	table := NewSymbolTable(parent)
	s.frames = append(s.frames, &scopeFrame{table: table, isLoop: isLoop, returnType: returnType})
	return table
}

// Leave pops the current frame.
func (s *ScopeStack) Leave() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *ScopeStack) top() *scopeFrame { return s.frames[len(s.frames)-1] }

// Table returns the current frame's symbol table.
func (s *ScopeStack) Table() *SymbolTable { return s.top().table }

// ReturnType returns the enclosing function's declared return type.
func (s *ScopeStack) ReturnType() ast.Type { return s.top().returnType }

// InLoop reports whether any enclosing frame, searching innermost-out, was
// entered with isLoop set. The generator takes break/continue validity and
// targets from Builder's loop stack instead.
func (s *ScopeStack) InLoop() bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].isLoop {
			return true
		}
	}
	return false
}
