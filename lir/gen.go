package lir

import (
	"strings"

	"github.com/Geoffrey1014/svf-front-end-sub000/ast"
	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
)

// generator drives one function's AST-to-LIR translation, dispatching on
// the concrete ast.Expr/ast.Stmt type the way the AST builder dispatches on
// CST symbol codes.
type generator struct {
	b      *Builder
	scopes *ScopeStack
}

// Generate lowers one function definition to its LIR Function. Each call
// gets a fresh Builder and ScopeStack; file-level declarations must already
// be bound into the file scope the caller passes in.
func Generate(fn *ast.FunctionDef, fileScope *SymbolTable, sink *diag.Sink) *Function {
	var paramNames []string
	if fn.Params != nil {
		for _, p := range fn.Params.Params {
			paramNames = append(paramNames, p.Name())
		}
	}
	g := &generator{
		b:      NewBuilder(fn.Name(), paramNames, sink),
		scopes: NewScopeStack(),
	}
	table := g.scopes.Enter(false, fn.ReturnType)
	table.parent = fileScope
	if fn.Params != nil {
		for _, p := range fn.Params.Params {
			table.Declare(p.Name(), p.ParamType)
		}
	}
	g.genStmt(fn.Body)
	g.scopes.Leave()
	return g.b.Finish()
}

// --- expressions -----------------------------------------------------

// genExpr lowers e to an operand Component, emitting whatever statements
// are needed to compute it.
func (g *generator) genExpr(e ast.Expr) Component {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return IntLit(n.Value)
	case *ast.BoolLiteral:
		return BoolLit(n.Value)
	case *ast.CharLiteral:
		return CharLit(n.Value)
	case *ast.StringLiteral:
		t := g.b.NewStringTemp()
		g.b.Emit(AssignReg{Dst: t, Src: StringLit(n.Value)})
		return t
	case *ast.Ident:
		if c, ok := g.scopes.Table().LookupVar(n.Name_); ok {
			return c
		}
		// Not every reference is preceded by a declaring statement this
		// generator records (e.g. a bare assignment to a name with no
		// `let`); fall back to the name itself rather than rejecting it.
		return Var(n.Name_)
	case *ast.ParenExpr:
		return g.genExpr(n.Inner)
	case *ast.BinaryExpr:
		lhs := g.genExpr(n.Left)
		rhs := g.genExpr(n.Right)
		t := g.b.NewTemp()
		g.b.Emit(AssignBin{Dst: t, Lhs: lhs, Op: n.Op, Rhs: rhs})
		return t
	case *ast.UnaryExpr:
		return g.genUnary(n)
	case *ast.PointerExpr:
		return g.genPointerExpr(n)
	case *ast.FieldAccessExpr, *ast.SubscriptExpr:
		return g.genLValue(e)
	case *ast.CallExpr:
		return g.genCall(n, true)
	case *ast.AssignExpr:
		return g.genAssign(n)
	default:
		g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: unhandled expression %s", e.String())
		return IntLit(0)
	}
}

func (g *generator) genUnary(n *ast.UnaryExpr) Component {
	operand := g.genExpr(n.Operand)
	t := g.b.NewTemp()
	g.b.Emit(AssignUn{Dst: t, Op: n.Op, Operand: operand})
	return t
}

// genPointerExpr lowers prefix `&expr` / `*expr`. Address-of requires an
// lvalue operand; dereference is itself an lvalue, handled by genLValue so
// it composes as both an operand and an assignment target.
func (g *generator) genPointerExpr(n *ast.PointerExpr) Component {
	if n.Op == "&" {
		loc := g.genLValue(n.Operand)
		t := g.b.NewTemp()
		g.b.Emit(AssignAddr{Dst: t, Src: loc})
		return t
	}
	return g.genLValue(n)
}

// genCall lowers a call expression. wantResult controls whether a
// destination temp is allocated: false when the call appears as a
// standalone expression statement.
func (g *generator) genCall(n *ast.CallExpr, wantResult bool) Component {
	var args []Component
	for _, a := range n.Args {
		args = append(args, g.genExpr(a))
	}
	var dst Location
	if wantResult {
		dst = g.b.NewTemp()
	}
	g.b.Emit(MethodCall{Name: n.Callee.Name_, Args: args, Ret: dst})
	if dst == nil {
		return nil
	}
	return dst
}

// genLValue lowers an expression used as an assignment target or as the
// operand of `&`/`*`, returning the Location it denotes rather than a
// value-producing temp.
func (g *generator) genLValue(e ast.Expr) Location {
	switch n := e.(type) {
	case *ast.Ident:
		return Var(n.Name_)
	case *ast.PointerExpr: // "*expr"
		base := g.genLValue(n.Operand)
		return Deref{Base: base}
	case *ast.FieldAccessExpr:
		base := g.genLValue(n.Base)
		return Struct{Base: base, Field: n.Field}
	case *ast.SubscriptExpr:
		return g.genSubscript(n)
	case *ast.ParenExpr:
		return g.genLValue(n.Inner)
	default:
		g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: expression is not assignable: %s", e.String())
		return Var("")
	}
}

// genSubscript implements the multi-dimensional subscript address
// arithmetic: for `a[i1][i2]...[in]` with declared dimensions
// [d1,d2,...,dn] (outermost first) and element width w, it walks the
// indices innermost first, carrying a running multiplier that starts at w
// and grows by the next-outer dimension's size at each step:
//
//	t_n   = i_n * w
//	t_n-1 = i_n-1 * (w*d_n)
//	...
//	t_1   = i_1 * (w*d_n*d_n-1*...*d_2)
//	offset = t_1 + t_2 + ... + t_n
//
// Each index's contribution is an independent multiply; the multiplies are
// summed pairwise left-to-right as they are produced, rather than folded
// through a single running accumulator, so e.g. a 2-D `a[i][j]` lowers to
// `t1 = j*w; t2 = i*(w*d2); t3 = t1+t2` — two multiplies and one add, not a
// multiply-add-multiply chain.
func (g *generator) genSubscript(n *ast.SubscriptExpr) Location {
	var indices []ast.Expr
	cur := n
	for {
		indices = append(indices, cur.Index)
		next, ok := cur.Base.(*ast.SubscriptExpr)
		if !ok {
			break
		}
		cur = next
	}
	// indices was collected outermost-node-first, i.e. innermost-bracket
	// first (a[i][j] visits the j-node before the i-node); reverse to
	// source/dimension order [i1, i2, ..., in].
	for l, r := 0, len(indices)-1; l < r; l, r = l+1, r-1 {
		indices[l], indices[r] = indices[r], indices[l]
	}

	baseIdent, ok := cur.Base.(*ast.Ident)
	if !ok {
		g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: subscript base is not an identifier: %s", cur.Base.String())
		return Var("")
	}
	elemWidth, dims, ok := g.scopes.Table().LookupArray(baseIdent.Name())
	if !ok {
		g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: %s has no recorded array shape", baseIdent.Name())
		elemWidth, dims = 8, make([]int, len(indices))
	}

	lowered := make([]Component, len(indices))
	for i, idxExpr := range indices {
		lowered[i] = g.genExpr(idxExpr)
	}

	var acc Component
	multiplier := int64(elemWidth)
	for k := len(lowered) - 1; k >= 0; k-- {
		mulT := g.b.NewTemp()
		g.b.Emit(AssignBin{Dst: mulT, Lhs: lowered[k], Op: "*", Rhs: IntLit(multiplier)})
		if acc == nil {
			acc = mulT
		} else {
			addT := g.b.NewTemp()
			g.b.Emit(AssignBin{Dst: addT, Lhs: acc, Op: "+", Rhs: mulT})
			acc = addT
		}
		if k > 0 {
			multiplier *= int64(dims[k])
		}
	}

	return Array{Name: baseIdent.Name(), Index: acc}
}

// genAssign lowers `lhs op= rhs`, desugaring a compound operator to
// `lhs = lhs op rhs` before emitting the final store, and routing through
// AssignDeref when the target is a pointer dereference.
func (g *generator) genAssign(n *ast.AssignExpr) Component {
	rhs := g.genExpr(n.Rhs)
	if n.Op != "=" {
		base := strings.TrimSuffix(n.Op, "=")
		lhsVal := g.genExpr(n.Lhs)
		t := g.b.NewTemp()
		g.b.Emit(AssignBin{Dst: t, Lhs: lhsVal, Op: base, Rhs: rhs})
		rhs = t
	}
	if deref, ok := n.Lhs.(*ast.PointerExpr); ok && deref.Op == "*" {
		target := g.genLValue(deref.Operand)
		g.b.Emit(AssignDeref{Dst: target, Src: rhs})
		return rhs
	}
	loc := g.genLValue(n.Lhs)
	g.b.Emit(AssignReg{Dst: loc, Src: rhs})
	return rhs
}

// --- statements --------------------------------------------------------

func (g *generator) genStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		g.genCompound(n)
	case *ast.ExprStmt:
		if call, ok := n.Expr.(*ast.CallExpr); ok {
			g.genCall(call, false)
			return
		}
		g.genExpr(n.Expr)
	case *ast.DeclStmt:
		g.genDeclStmt(n)
	case *ast.ReturnStmt:
		if n.Value == nil {
			g.b.Emit(Return{})
			return
		}
		g.b.Emit(Return{Value: g.genExpr(n.Value)})
	case *ast.IfStmt:
		g.genIf(n)
	case *ast.WhileStmt:
		g.genWhile(n)
	case *ast.ForStmt:
		g.genFor(n)
	case *ast.LoopExpr:
		g.genLoop(n)
	case *ast.BreakStmt:
		if target, ok := g.b.BreakTarget(); ok {
			g.b.Emit(Jump{Target: target})
		} else {
			g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: break outside loop")
		}
	case *ast.ContinueStmt:
		if target, ok := g.b.ContinueTarget(); ok {
			g.b.Emit(Jump{Target: target})
		} else {
			g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: continue outside loop")
		}
	default:
		g.b.Sink.Errorf(pos(g.b.fn.Name), "lir: unhandled statement %s", s.String())
	}
}

func (g *generator) genCompound(n *ast.CompoundStmt) {
	for _, s := range n.Stmts {
		g.genStmt(s)
	}
	if n.TrailExpr != nil {
		g.genExpr(n.TrailExpr)
	}
}

func (g *generator) genDeclStmt(n *ast.DeclStmt) {
	g.scopes.Table().Declare(n.Name, n.DeclType)
	if arr, ok := n.DeclType.(*ast.ArrayType); ok {
		dims := make([]int, len(arr.Dims))
		for i, d := range arr.Dims {
			if lit, ok := d.(*ast.IntLiteral); ok {
				dims[i] = int(lit.Value)
			}
		}
		g.scopes.Table().DeclareArray(n.Name, arr.ElemWidth(), dims)
	}
	if n.Init == nil {
		return
	}
	rhs := g.genExpr(n.Init)
	g.b.Emit(AssignReg{Dst: Var(n.Name), Src: rhs})
}

// genIf implements if/else lowering: the condition is evaluated
// once, `ifZ c goto Lelse` (or Lend, when there is no else) skips the then
// branch, and — only when an else branch exists — the then branch ends
// with an unconditional jump past it.
//
//	ifZ c goto Lelse      (or Lend if no else)
//	<then>
//	goto Lend             (only emitted when else exists)
//	Lelse:
//	<else>
//	Lend:
func (g *generator) genIf(n *ast.IfStmt) {
	cond := g.genExpr(n.Cond)
	if n.Else == nil {
		lend := g.b.NewNamedLabel("if.end")
		g.b.Emit(Jump{Target: lend, Conditional: true, Condition: cond})
		g.genStmt(n.Then)
		g.b.EmitLabel(lend)
		return
	}
	lelse := g.b.NewNamedLabel("if.else")
	lend := g.b.NewNamedLabel("if.end")
	g.b.Emit(Jump{Target: lelse, Conditional: true, Condition: cond})
	g.genStmt(n.Then)
	g.b.Emit(Jump{Target: lend})
	g.b.EmitLabel(lelse)
	g.genElseClause(n.Else)
	g.b.EmitLabel(lend)
}

func (g *generator) genElseClause(s ast.Stmt) {
	if clause, ok := s.(*ast.ElseClause); ok {
		if clause.StmtVal != nil {
			g.genStmt(clause.StmtVal)
		} else if clause.ExprVal != nil {
			g.genExpr(clause.ExprVal)
		}
		return
	}
	g.genStmt(s)
}

// genWhile implements while lowering:
//
//	Lcond:
//	ifZ c goto Lend
//	<body>
//	goto Lcond
//	Lend:
//
// continue targets Lcond (re-evaluate the condition); break targets Lend.
func (g *generator) genWhile(n *ast.WhileStmt) {
	lcond := g.b.NewNamedLabel("while.cond")
	lend := g.b.NewNamedLabel("while.end")
	g.b.EmitLabel(lcond)
	cond := g.genExpr(n.Cond)
	g.b.Emit(Jump{Target: lend, Conditional: true, Condition: cond})
	g.b.PushLoop(lcond, lend)
	g.genStmt(n.Body)
	g.b.PopLoop()
	g.b.Emit(Jump{Target: lcond})
	g.b.EmitLabel(lend)
}

// genFor implements for lowering with explicit body/update labels and
// continue targeting the condition check (re-evaluating it, not skipping
// straight to the update), matching genWhile's convention:
//
//	<init>
//	Lcond:
//	ifZ c goto Lend
//	goto Lbody
//	Lbody:
//	<body>
//	Linc:
//	<update>
//	goto Lcond
//	Lend:
func (g *generator) genFor(n *ast.ForStmt) {
	if n.Init != nil {
		g.genStmt(n.Init)
	}
	lcond := g.b.NewNamedLabel("for.cond")
	lbody := g.b.NewNamedLabel("for.body")
	linc := g.b.NewNamedLabel("for.inc")
	lend := g.b.NewNamedLabel("for.end")
	g.b.EmitLabel(lcond)
	if n.Cond != nil {
		cond := g.genExpr(n.Cond)
		g.b.Emit(Jump{Target: lend, Conditional: true, Condition: cond})
	}
	g.b.Emit(Jump{Target: lbody})
	g.b.EmitLabel(lbody)
	g.b.PushLoop(lcond, lend)
	g.genStmt(n.Body)
	g.b.PopLoop()
	g.b.EmitLabel(linc)
	if n.Update != nil {
		g.genExpr(n.Update)
	}
	g.b.Emit(Jump{Target: lcond})
	g.b.EmitLabel(lend)
}

// genLoop lowers the bare `loop { body }` form: an unconditional back edge
// with no condition check, as LoopExpr's doc comment describes (an
// unconditional backward jump to the loop start). Unlike genWhile there is
// no condition to test, so the loop start label is unconditionally
// revisited; break/continue targets work exactly as in genWhile.
func (g *generator) genLoop(n *ast.LoopExpr) {
	lstart := g.b.NewNamedLabel("loop.start")
	lend := g.b.NewNamedLabel("loop.end")
	g.b.EmitLabel(lstart)
	g.b.PushLoop(lstart, lend)
	g.genStmt(n.Body)
	g.b.PopLoop()
	g.b.Emit(Jump{Target: lstart})
	g.b.EmitLabel(lend)
}
