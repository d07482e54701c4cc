package lir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geoffrey1014/svf-front-end-sub000/ast"
	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
)

var zeroPos = ast.Position{}

func ident(name string) *ast.Ident { return ast.NewIdent(zeroPos, name) }

func intLit(v int64) *ast.IntLiteral { return ast.NewIntLiteral(zeroPos, v) }

// buildFunction wires a minimal FunctionDef with an i32 return type and the
// given params/body, then generates its LIR.
func buildFunction(name string, params []*ast.ParamDecl, body *ast.CompoundStmt) *Function {
	pl := ast.NewParamList(zeroPos)
	pl.Params = params
	fn := ast.NewFunctionDef(zeroPos, ident(name), pl,
		ast.NewPrimitiveType(zeroPos, ast.I32), body)
	return Generate(fn, NewSymbolTable(nil), &diag.Sink{})
}

func stmtStrings(fn *Function) []string {
	var out []string
	for _, s := range fn.Stmts {
		out = append(out, s.String())
	}
	return out
}

// Scenario: a[i][j] with a declared as i32[3][4] (i32's width is 4) walks
// innermost index first: t1 = j*4 (elemWidth); t2 = i*(4*4) (elemWidth
// scaled by the inner dimension's size); t3 = t1+t2.
func TestGenSubscriptTwoDimensional(t *testing.T) {
	body := ast.NewCompoundStmt(zeroPos)

	arrType := ast.NewArrayType(zeroPos, ast.NewPrimitiveType(zeroPos, ast.I32),
		[]ast.Expr{intLit(3), intLit(4)})

	sub := ast.NewSubscriptExpr(zeroPos,
		ast.NewSubscriptExpr(zeroPos, ident("a"), ident("i")), ident("j"))
	assign := ast.NewAssignExpr(zeroPos, sub, "=", intLit(1))

	// CompoundStmt.PushFront mirrors the builder's pop-and-prepend
	// discipline: children arrive off the stack in reverse source order,
	// so the later statement is pushed to the front first.
	body.PushFront(ast.NewExprStmt(zeroPos, assign))
	body.PushFront(ast.NewDeclStmt(zeroPos, true, "a", arrType, nil))

	fn := buildFunction("f", nil, body)
	lines := stmtStrings(fn)

	require.Greater(t, len(lines), 3)
	assert.Contains(t, lines, "#_t0 = j * 4")
	assert.Contains(t, lines, "#_t1 = i * 16")
	assert.Contains(t, lines, "#_t2 = #_t0 + #_t1")
	assert.Contains(t, lines, "a[#_t2] = 1")
}

// Scenario: if (c) { x = 1; } else { x = 2; } lowers to the exact
// ifZ/goto/label shape documented on genIf.
func TestGenIfElse(t *testing.T) {
	then := ast.NewCompoundStmt(zeroPos)
	then.PushFront(ast.NewExprStmt(zeroPos, ast.NewAssignExpr(zeroPos, ident("x"), "=", intLit(1))))
	els := ast.NewCompoundStmt(zeroPos)
	els.PushFront(ast.NewExprStmt(zeroPos, ast.NewAssignExpr(zeroPos, ident("x"), "=", intLit(2))))

	ifStmt := ast.NewIfStmt(zeroPos, ident("c"), then, els)
	body := ast.NewCompoundStmt(zeroPos)
	body.PushFront(ifStmt)

	fn := buildFunction("f", nil, body)
	lines := stmtStrings(fn)

	require.Len(t, lines, 6)
	assert.Equal(t, "ifZ c goto if.else.L0", lines[0])
	assert.Equal(t, "x = 1", lines[1])
	assert.Equal(t, "goto if.end.L1", lines[2])
	assert.Equal(t, "if.else.L0:\nEMPTY", lines[3])
	assert.Equal(t, "x = 2", lines[4])
	assert.Equal(t, "if.end.L1:\nEMPTY", lines[5])
}

// Scenario: for (i = 0; i < n; i = i + 1) { x = x + i; continue; } — two
// jumps per iteration (conditional exit, unconditional fall-in to the body
// label), and continue must target the condition check, not the update
// clause, matching genWhile's convention.
func TestGenForLoop(t *testing.T) {
	init := ast.NewExprStmt(zeroPos, ast.NewAssignExpr(zeroPos, ident("i"), "=", intLit(0)))
	cond := ast.NewBinaryExpr(zeroPos, ident("i"), "<", ident("n"))
	update := ast.NewAssignExpr(zeroPos, ident("i"), "=",
		ast.NewBinaryExpr(zeroPos, ident("i"), "+", intLit(1)))
	loopBody := ast.NewCompoundStmt(zeroPos)
	loopBody.PushFront(ast.NewContinueStmt(zeroPos))
	loopBody.PushFront(ast.NewExprStmt(zeroPos,
		ast.NewAssignExpr(zeroPos, ident("x"), "=", ast.NewBinaryExpr(zeroPos, ident("x"), "+", ident("i")))))

	forStmt := ast.NewForStmt(zeroPos, init, cond, update, loopBody)
	body := ast.NewCompoundStmt(zeroPos)
	body.PushFront(forStmt)

	fn := buildFunction("f", nil, body)
	lines := stmtStrings(fn)

	assert.Equal(t, "i = 0", lines[0])
	assert.Equal(t, "for.cond.L0:\nEMPTY", lines[1])
	assert.Equal(t, "#_t0 = i < n", lines[2])
	assert.Equal(t, "ifZ #_t0 goto for.end.L3", lines[3])
	assert.Equal(t, "goto for.body.L1", lines[4])
	assert.Equal(t, "for.body.L1:\nEMPTY", lines[5])
	assert.Equal(t, "#_t1 = x + i", lines[6])
	assert.Equal(t, "x = #_t1", lines[7])
	assert.Equal(t, "goto for.cond.L0", lines[8], "continue must target the condition check")
	assert.Equal(t, "for.inc.L2:\nEMPTY", lines[9])
	assert.Equal(t, "#_t2 = i + 1", lines[10])
	assert.Equal(t, "i = #_t2", lines[11])
	assert.Equal(t, "goto for.cond.L0", lines[12])
	assert.Equal(t, "for.end.L3:\nEMPTY", lines[13])
}

func TestGenReturnWithAndWithoutValue(t *testing.T) {
	body := ast.NewCompoundStmt(zeroPos)
	body.PushFront(ast.NewReturnStmt(zeroPos, intLit(42)))
	fn := buildFunction("f", nil, body)
	assert.Equal(t, "return 42", fn.Stmts[0].String())

	body2 := ast.NewCompoundStmt(zeroPos)
	body2.PushFront(ast.NewReturnStmt(zeroPos, nil))
	fn2 := buildFunction("g", nil, body2)
	assert.Equal(t, "return ", fn2.Stmts[0].String())
}
