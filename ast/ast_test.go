package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geoffrey1014/svf-front-end-sub000/ast"
	"github.com/Geoffrey1014/svf-front-end-sub000/cst"
	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
)

func ident(name string) *cst.FakeNode {
	return &cst.FakeNode{KindName: ast.KindIdentifier, Named: true, TextValue: name}
}

func primitive(name string) *cst.FakeNode {
	return &cst.FakeNode{KindName: ast.KindPrimitiveType, Named: true, TextValue: name}
}

func intLit(text string) *cst.FakeNode {
	return &cst.FakeNode{KindName: ast.KindIntegerLiteral, Named: true, TextValue: text}
}

// buildAddFunction assembles the CST for:
//
//	fn add(a: i32, b: i32) -> i32 { return a + b; }
func buildAddFunction() *cst.FakeNode {
	paramA := &cst.FakeNode{
		KindName: ast.KindParameter, Named: true,
		Children: []*cst.FakeNode{ident("a"), primitive("i32")},
	}
	paramB := &cst.FakeNode{
		KindName: ast.KindParameter, Named: true,
		Children: []*cst.FakeNode{ident("b"), primitive("i32")},
	}
	params := &cst.FakeNode{
		KindName: ast.KindParameters, Named: true,
		Children: []*cst.FakeNode{paramA, paramB},
	}
	addExpr := &cst.FakeNode{
		KindName: ast.KindBinaryExpression, Named: true,
		Children:  []*cst.FakeNode{ident("a"), ident("b")},
		TextValue: "a + b",
	}
	returnStmt := &cst.FakeNode{
		KindName: ast.KindReturnExpression, Named: true,
		Children: []*cst.FakeNode{addExpr},
	}
	body := &cst.FakeNode{
		KindName: ast.KindBlock, Named: true,
		Children: []*cst.FakeNode{returnStmt},
	}
	fn := &cst.FakeNode{
		KindName: ast.KindFunctionItem, Named: true,
		Children: []*cst.FakeNode{ident("add"), params, primitive("i32"), body},
	}
	return &cst.FakeNode{
		KindName: ast.KindSourceFile, Named: true,
		Children: []*cst.FakeNode{fn},
	}
}

func TestBuildLowersFunctionDefinition(t *testing.T) {
	b := ast.NewBuilder(nil)
	tu := b.Build(buildAddFunction())

	require.NotNil(t, tu)
	require.Empty(t, b.Sink.Messages)
	require.Len(t, tu.Functions, 1)

	fn := tu.Functions[0]
	assert.Equal(t, "add", fn.Name())
	require.Len(t, fn.Params.Params, 2)
	assert.Equal(t, "a", fn.Params.Params[0].NameIdent.Name())
	assert.Equal(t, "b", fn.Params.Params[1].NameIdent.Name())

	require.Len(t, fn.Body.Stmts, 1)
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)

	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)

	lhs, ok := bin.Left.(*ast.Ident)
	require.True(t, ok)
	assert.Equal(t, "a", lhs.Name())
}

func TestBuildReportsUnknownKind(t *testing.T) {
	root := &cst.FakeNode{KindName: "mystery_node", Named: true}
	sink := &diag.Sink{}
	b := ast.NewBuilder(sink)

	tu := b.Build(root)

	assert.Nil(t, tu)
	require.Len(t, sink.Messages, 1)
	assert.Contains(t, sink.Messages[0], "Unknown CST node kind")
}

func TestExitArrayTypeLowersNestedArrayWithoutDiagnostics(t *testing.T) {
	// [[i32; 3]; 2]: grammar builds array types inside-out, so the inner
	// array_type (dimension 3) is lowered before the outer one (dimension 2).
	innerArrayType := &cst.FakeNode{
		KindName: ast.KindArrayType, Named: true,
		Children: []*cst.FakeNode{primitive("i32"), intLit("3")},
	}
	outerArrayType := &cst.FakeNode{
		KindName: ast.KindArrayType, Named: true,
		Children: []*cst.FakeNode{innerArrayType, intLit("2")},
	}

	b := ast.NewBuilder(nil)
	cst.PostOrder(outerArrayType, b.Dispatch)

	require.Empty(t, b.Sink.Messages)
}

func TestBuildReportsMalformedBinaryExpr(t *testing.T) {
	// A binary_expression with only one operand child is invalid.
	malformed := &cst.FakeNode{
		KindName: ast.KindBinaryExpression, Named: true,
		Children:  []*cst.FakeNode{ident("a")},
		TextValue: "a +",
	}
	sink := &diag.Sink{}
	b := ast.NewBuilder(sink)

	cst.PostOrder(malformed, b.Dispatch)

	require.Len(t, sink.Messages, 1)
	assert.Contains(t, sink.Messages[0], "Invalid binary expression")
}

// wrapReturnedExpr builds `fn f() { return <expr>; }` around expr so its
// lowered form can be inspected via the function body's return statement.
func wrapReturnedExpr(expr *cst.FakeNode) *cst.FakeNode {
	returnStmt := &cst.FakeNode{KindName: ast.KindReturnExpression, Named: true, Children: []*cst.FakeNode{expr}}
	body := &cst.FakeNode{KindName: ast.KindBlock, Named: true, Children: []*cst.FakeNode{returnStmt}}
	params := &cst.FakeNode{KindName: ast.KindParameters, Named: true}
	fn := &cst.FakeNode{
		KindName: ast.KindFunctionItem, Named: true,
		Children: []*cst.FakeNode{ident("f"), params, body},
	}
	return &cst.FakeNode{KindName: ast.KindSourceFile, Named: true, Children: []*cst.FakeNode{fn}}
}

func TestDereferenceAndAddressOfDisambiguateByKind(t *testing.T) {
	// "*p" is a unary_expression with operator "*"; "&p" is a distinct
	// reference_expression node. Both must lower to *ast.PointerExpr with
	// the right operator, not to *ast.UnaryExpr.
	deref := &cst.FakeNode{KindName: ast.KindUnaryExpression, Named: true, Children: []*cst.FakeNode{ident("p")}, TextValue: "*p"}
	b := ast.NewBuilder(nil)
	tu := b.Build(wrapReturnedExpr(deref))
	require.Empty(t, b.Sink.Messages)
	require.NotNil(t, tu)
	ret := tu.Functions[0].Body.Stmts[0].(*ast.ReturnStmt)
	ptrExpr, ok := ret.Value.(*ast.PointerExpr)
	require.True(t, ok, "expected *ast.PointerExpr, got %T", ret.Value)
	assert.Equal(t, "*", ptrExpr.Op)

	addrOf := &cst.FakeNode{KindName: ast.KindReferenceExpression, Named: true, Children: []*cst.FakeNode{ident("p")}, TextValue: "&p"}
	b2 := ast.NewBuilder(nil)
	tu2 := b2.Build(wrapReturnedExpr(addrOf))
	require.Empty(t, b2.Sink.Messages)
	require.NotNil(t, tu2)
	ret2 := tu2.Functions[0].Body.Stmts[0].(*ast.ReturnStmt)
	ptrExpr2, ok := ret2.Value.(*ast.PointerExpr)
	require.True(t, ok, "expected *ast.PointerExpr, got %T", ret2.Value)
	assert.Equal(t, "&", ptrExpr2.Op)
}
