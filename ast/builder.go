package ast

import (
	"strconv"
	"strings"

	"github.com/Geoffrey1014/svf-front-end-sub000/cst"
	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
)

// Builder lowers a CST to an AST by dispatching on cst-node-exit events and
// maintaining an explicit working stack of partially built AST nodes.
//
// The stack is owned by one Builder instance per file and is never shared
// across files or goroutines. Every handler pops its children off the top
// in reverse source order, downcasts with a type assertion, and on
// mismatch calls into diag and leaves the stack alone so the parent
// handler sees a missing operand and reports its own diagnostic.
type Builder struct {
	stack []Node
	Sink  *diag.Sink
}

// NewBuilder creates an empty builder. Pass a non-nil sink to additionally
// collect diagnostics for programmatic inspection (tests, CLI summaries).
func NewBuilder(sink *diag.Sink) *Builder {
	if sink == nil {
		sink = &diag.Sink{}
	}
	return &Builder{Sink: sink}
}

func (b *Builder) errf(n cst.Node, format string, args ...interface{}) {
	b.Sink.Errorf(posOf(n), format, args...)
}

func (b *Builder) push(n Node) { b.stack = append(b.stack, n) }

func (b *Builder) peek() Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) pop() Node {
	if len(b.stack) == 0 {
		return nil
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

// popExpr pops and downcasts to Expr, or returns nil without popping on a
// type mismatch ("peek, attempt downcast" optional-child
// policy, ).
func (b *Builder) popExpr() Expr {
	if e, ok := b.peek().(Expr); ok {
		b.pop()
		return e
	}
	return nil
}

func (b *Builder) popStmt() Stmt {
	if s, ok := b.peek().(Stmt); ok {
		b.pop()
		return s
	}
	return nil
}

func (b *Builder) popType() Type {
	if t, ok := b.peek().(Type); ok {
		b.pop()
		return t
	}
	return nil
}

func (b *Builder) popDeclarator() Declarator {
	if d, ok := b.peek().(Declarator); ok {
		b.pop()
		return d
	}
	return nil
}

func (b *Builder) popIdent() *Ident {
	if id, ok := b.peek().(*Ident); ok {
		b.pop()
		return id
	}
	return nil
}

// popMutableSpec reports whether the stack top is a MutableSpec marker,
// popping it if so.
func (b *Builder) popMutableSpec() bool {
	if _, ok := b.peek().(*MutableSpec); ok {
		b.pop()
		return true
	}
	return false
}

// Build drives a post-order walk of the CST and returns the resulting
// translation unit, or nil if the root itself could not be lowered.
func (b *Builder) Build(root cst.Node) *TranslationUnit {
	cst.PostOrder(root, b.Dispatch)
	tu, _ := b.pop().(*TranslationUnit)
	return tu
}

// Dispatch is the exit-event handler, dispatching on the CST node's
// grammar node-type name (Kind()). Kind strings are part of the grammar
// itself, so this dispatch table works unmodified against whichever
// compiled parser table main.go's grammar happens to generate.
func (b *Builder) Dispatch(n cst.Node) {
	switch n.Kind() {
	case KindIdentifier:
		b.exitIdentifier(n)
	case KindPrimitiveType:
		b.exitPrimitiveType(n)
	case KindArrayType:
		b.exitArrayType(n)
	case KindParameter:
		b.exitParameter(n)
	case KindLetDeclaration:
		b.exitDeclaration(n)
	case KindParameters:
		b.exitParamList(n)
	case KindFunctionDeclarator:
		b.exitFunctionDeclarator(n)
	case KindBinaryExpression:
		b.exitBinaryExpr(n)
	case KindIntegerLiteral:
		b.exitLiteralNumber(n)
	case KindStringLiteral:
		b.exitLiteralString(n)
	case KindCharLiteral:
		b.exitLiteralChar(n)
	case KindBooleanLiteral:
		b.exitLiteralBool(n)
	case KindReturnExpression:
		b.exitReturnStatement(n)
	case KindBlock:
		b.exitCompoundStatement(n)
	case KindFunctionItem:
		b.exitFunctionDefinition(n)
	case KindArguments:
		b.exitArgList(n)
	case KindCallExpression:
		b.exitCallExpr(n)
	case KindAssignmentExpression, KindCompoundAssignmentExpr:
		b.exitAssignExpr(n)
	case KindExpressionStatement:
		b.exitExprStmt(n)
	case KindSourceFile:
		b.exitTransUnit(n)
	case KindMutableSpecifier:
		b.exitMutableSpec(n)
	case KindIfExpression:
		b.exitIfExpr(n)
	case KindElseClause:
		b.exitElseClause(n)
	case KindUnaryExpression:
		// "*x" (pointer dereference) and plain unary ops ("-x", "!x", "~x")
		// are both unary_expression nodes in this grammar; only the
		// operator text tells them apart.
		if operatorText(n, 0) == "*" {
			b.exitPointerExprWithOp(n, "*")
			return
		}
		b.exitUnaryExpr(n)
	case KindReferenceExpression:
		b.exitPointerExprWithOp(n, "&")
	case KindForExpression:
		b.exitForExpr(n)
	case KindRangeExpression:
		b.exitRangeExpr(n)
	case KindWhileExpression:
		b.exitWhileExpr(n)
	case KindLoopExpression:
		b.exitLoopExpr(n)
	case KindBreakExpression:
		b.push(NewBreakStmt(posOf(n)))
	case KindContinueExpression:
		b.push(NewContinueStmt(posOf(n)))
	case KindFieldExpression:
		b.exitFieldAccess(n)
	case KindIndexExpression:
		b.exitSubscriptExpr(n)
	case KindParenthesizedExpression:
		b.exitParenExpr(n)
	case KindPointerType:
		b.exitPointerType(n)
	default:
		b.errf(n, "Unknown CST node kind: %q", n.Kind())
	}
}

func (b *Builder) exitIdentifier(n cst.Node) {
	b.push(NewIdent(posOf(n), n.Text()))
}

func (b *Builder) exitPrimitiveType(n cst.Node) {
	text := n.Text()
	kind, ok := primitiveByName[text]
	if !ok {
		b.errf(n, "Unknown primitive type %q", text)
		return
	}
	b.push(NewPrimitiveType(posOf(n), kind))
}

var primitiveByName = map[string]Primitive{
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "i128": I128,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64, "u128": U128,
	"f32": F32, "f64": F64, "bool": Bool, "char": Char,
	"str": StringType, "string": StringType, "void": Void,
}

func (b *Builder) exitArrayType(n cst.Node) {
	size := b.popExpr()
	elem := b.popType()
	if elem == nil || size == nil {
		b.errf(n, "Invalid array type or size")
		return
	}
	// Dimensions nest outermost-first: if elem is
	// already an ArrayType, prepend this dimension to keep outermost-first
	// order as the grammar builds array types inside-out.
	if inner, ok := elem.(*ArrayType); ok {
		dims := append([]Expr{size}, inner.Dims...)
		b.push(NewArrayType(posOf(n), inner.Elem, dims))
		return
	}
	b.push(NewArrayType(posOf(n), elem, []Expr{size}))
}

func (b *Builder) exitPointerType(n cst.Node) {
	elem := b.popType()
	if elem == nil {
		b.errf(n, "Invalid pointer type")
		return
	}
	b.push(NewPointerType(posOf(n), elem))
}

func (b *Builder) exitMutableSpec(n cst.Node) {
	b.push(NewMutableSpec(posOf(n)))
}

func (b *Builder) exitParameter(n cst.Node) {
	t := b.popType()
	name := b.popIdent()
	b.popMutableSpec()
	if t == nil || name == nil {
		b.errf(n, "Invalid parameter type or name")
		return
	}
	b.push(NewParamDecl(posOf(n), name, t))
}

func (b *Builder) exitDeclaration(n cst.Node) {
	var init Expr
	if n.ChildByFieldName("value") != nil {
		init = b.popExpr()
		if init == nil {
			b.errf(n, "Invalid declaration initializer")
			return
		}
	}
	var declType Type
	if typeField := n.ChildByFieldName("type"); typeField != nil {
		declType = b.popType()
		if declType == nil {
			b.errf(n, "Invalid declaration type")
			return
		}
	}
	name := b.popIdent()
	if name == nil {
		b.errf(n, "Invalid declaration name")
		return
	}
	mutable := b.popMutableSpec()
	b.push(NewDeclStmt(posOf(n), mutable, name.Name(), declType, init))
}

func (b *Builder) exitParamList(n cst.Node) {
	list := NewParamList(posOf(n))
	for {
		pd, ok := b.peek().(*ParamDecl)
		if !ok {
			break
		}
		b.pop()
		list.Params = append([]*ParamDecl{pd}, list.Params...)
	}
	b.push(list)
}

// exitFunctionDeclarator is intentionally a no-op: exitFunctionDefinition
// bypasses it, consuming Ident+ParamList directly. See
// FunctionDeclarator's doc comment.
func (b *Builder) exitFunctionDeclarator(n cst.Node) {}

func (b *Builder) exitFunctionDefinition(n cst.Node) {
	body, ok := b.peek().(*CompoundStmt)
	if !ok {
		b.errf(n, "Invalid function definition: missing body")
		return
	}
	b.pop()

	var returnType Type
	if t, ok := b.peek().(Type); ok {
		b.pop()
		returnType = t
	}
	if returnType == nil {
		returnType = NewPrimitiveType(posOf(n), Unit)
	}

	params, ok := b.peek().(*ParamList)
	if !ok {
		b.errf(n, "Invalid function definition: missing parameter list")
		return
	}
	b.pop()

	name := b.popIdent()
	if name == nil {
		b.errf(n, "Invalid function definition: missing name")
		return
	}
	b.push(NewFunctionDef(posOf(n), name, params, returnType, body))
}

func (b *Builder) exitBinaryExpr(n cst.Node) {
	right := b.popExpr()
	left := b.popExpr()
	if left == nil || right == nil {
		b.errf(n, "Invalid binary expression")
		return
	}
	op := operatorText(n, 1)
	b.push(NewBinaryExpr(posOf(n), left, op, right))
}

func (b *Builder) exitUnaryExpr(n cst.Node) {
	operand := b.popExpr()
	if operand == nil {
		b.errf(n, "Invalid unary expression")
		return
	}
	op := operatorText(n, 0)
	b.push(NewUnaryExpr(posOf(n), op, operand))
}

// operatorText recovers the operator token for a binary/unary/assign
// expression. The operator token is anonymous in the underlying grammar
// and not reachable through named-child access, so it is read directly
// off the node's own source text, which contains exactly "<left> op
// <right>" (or "op <operand>").
func operatorText(n cst.Node, _ int) string {
	return sniffOperator(n.Text())
}

var knownOperators = []string{
	"<<=", ">>=", "==", "!=", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "!", "~",
}

func sniffOperator(text string) string {
	for _, op := range knownOperators {
		if strings.Contains(text, op) {
			return op
		}
	}
	return ""
}

func (b *Builder) exitReturnStatement(n cst.Node) {
	if v := b.popExpr(); v != nil {
		b.push(NewReturnStmt(posOf(n), v))
		return
	}
	if n.NamedChildCount() == 0 {
		b.push(NewReturnStmt(posOf(n), nil))
		return
	}
	b.errf(n, "Invalid return statement")
}

func (b *Builder) exitCompoundStatement(n cst.Node) {
	node := NewCompoundStmt(posOf(n))
	if e := b.popExpr(); e != nil {
		node.TrailExpr = e
	}
	for {
		s := b.popStmt()
		if s == nil {
			break
		}
		node.PushFront(s)
	}
	b.push(node)
}

func (b *Builder) exitLiteralNumber(n cst.Node) {
	text := n.Text()
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		b.errf(n, "Invalid integer literal %q: %v", text, err)
		return
	}
	b.push(NewIntLiteral(posOf(n), v))
}

func (b *Builder) exitLiteralString(n cst.Node) {
	b.push(NewStringLiteral(posOf(n), strings.Trim(n.Text(), `"`)))
}

func (b *Builder) exitLiteralChar(n cst.Node) {
	text := strings.Trim(n.Text(), "'")
	if len(text) == 0 {
		b.errf(n, "Invalid char literal")
		return
	}
	b.push(NewCharLiteral(posOf(n), rune(text[0])))
}

func (b *Builder) exitLiteralBool(n cst.Node) {
	b.push(NewBoolLiteral(posOf(n), n.Text() == "true"))
}

func (b *Builder) exitArgList(n cst.Node) {
	count := n.NamedChildCount()
	args := make([]Expr, count)
	for i := count - 1; i >= 0; i-- {
		args[i] = b.popExpr()
	}
	b.push(NewArgList(posOf(n), args))
}

func (b *Builder) exitCallExpr(n cst.Node) {
	args, ok := b.peek().(*ArgList)
	if !ok {
		b.errf(n, "Invalid call expression: missing argument list")
		return
	}
	b.pop()
	callee := b.popIdent()
	if callee == nil {
		b.errf(n, "Invalid call expression: missing callee")
		return
	}
	b.push(NewCallExpr(posOf(n), callee, args))
}

func (b *Builder) exitAssignExpr(n cst.Node) {
	rhs := b.popExpr()
	lhs := b.popExpr()
	if lhs == nil || rhs == nil {
		b.errf(n, "Invalid assign expression")
		return
	}
	// A plain assignment_expression is always "="; only a compound
	// assignment carries its operator in the text ("+=", "<<=", ...).
	op := "="
	if n.Kind() == KindCompoundAssignmentExpr {
		op = operatorText(n, 1)
	}
	b.push(NewAssignExpr(posOf(n), lhs, op, rhs))
}

func (b *Builder) exitIfExpr(n cst.Node) {
	var elseClause *ElseClause
	if n.NamedChildCount() == 3 {
		ec, ok := b.peek().(*ElseClause)
		if ok {
			b.pop()
			elseClause = ec
		}
	}
	then := b.popStmt()
	cond := b.popExpr()
	if cond == nil || then == nil {
		b.errf(n, "Invalid if expression")
		return
	}
	var elseStmt Stmt
	if elseClause != nil {
		if elseClause.StmtVal != nil {
			elseStmt = elseClause.StmtVal
		} else if elseClause.ExprVal != nil {
			elseStmt = NewExprStmt(elseClause.Pos(), elseClause.ExprVal)
		}
	}
	b.push(NewIfStmt(posOf(n), cond, then, elseStmt))
}

func (b *Builder) exitElseClause(n cst.Node) {
	if e := b.popExpr(); e != nil {
		b.push(NewElseClauseExpr(posOf(n), e))
		return
	}
	if s := b.popStmt(); s != nil {
		b.push(NewElseClauseStmt(posOf(n), s))
		return
	}
	b.errf(n, "Invalid else clause")
}

func (b *Builder) exitForExpr(n cst.Node) {
	body := b.popStmt()
	cond := b.popExpr()
	ident := b.popIdent()
	if ident == nil || cond == nil || body == nil {
		b.errf(n, "Invalid for expression")
		return
	}
	init := NewExprStmt(ident.Pos(), ident)
	b.push(NewForStmt(posOf(n), init, cond, nil, body))
}

func (b *Builder) exitWhileExpr(n cst.Node) {
	body := b.popStmt()
	cond := b.popExpr()
	if cond == nil || body == nil {
		b.errf(n, "Invalid while expression")
		return
	}
	b.push(NewWhileStmt(posOf(n), cond, body))
}

func (b *Builder) exitLoopExpr(n cst.Node) {
	body := b.popStmt()
	if body == nil {
		b.errf(n, "Invalid loop expression")
		return
	}
	b.push(NewLoopExpr(posOf(n), body))
}

func (b *Builder) exitRangeExpr(n cst.Node) {
	end := b.popExpr()
	start := b.popExpr()
	if start == nil || end == nil {
		b.errf(n, "Invalid range expression")
		return
	}
	b.push(NewRangeExpr(posOf(n), start, end))
}

func (b *Builder) exitExprStmt(n cst.Node) {
	e := b.popExpr()
	if e == nil {
		b.errf(n, "Invalid expression statement")
		return
	}
	b.push(NewExprStmt(posOf(n), e))
}

func (b *Builder) exitFieldAccess(n cst.Node) {
	fieldNode := n.ChildByFieldName("field")
	base := b.popExpr()
	if base == nil || fieldNode == nil {
		b.errf(n, "Invalid field access")
		return
	}
	arrow := strings.Contains(n.Text(), "->")
	b.push(NewFieldAccessExpr(posOf(n), base, fieldNode.Text(), arrow))
}

func (b *Builder) exitSubscriptExpr(n cst.Node) {
	index := b.popExpr()
	base := b.popExpr()
	if base == nil || index == nil {
		b.errf(n, "Invalid subscript expression")
		return
	}
	b.push(NewSubscriptExpr(posOf(n), base, index))
}

// exitPointerExprWithOp lowers a dereference ("*x", op "*") or address-of
// ("&x", op "&") expression. The two come from distinct grammar node kinds
// (unary_expression vs. reference_expression) so the caller in Dispatch
// already knows which operator applies; no text sniffing is needed here.
func (b *Builder) exitPointerExprWithOp(n cst.Node, op string) {
	operand := b.popExpr()
	if operand == nil {
		b.errf(n, "Invalid pointer expression")
		return
	}
	b.push(NewPointerExpr(posOf(n), op, operand))
}

func (b *Builder) exitParenExpr(n cst.Node) {
	inner := b.popExpr()
	if inner == nil {
		b.errf(n, "Invalid parenthesized expression")
		return
	}
	b.push(NewParenExpr(posOf(n), inner))
}

func (b *Builder) exitTransUnit(n cst.Node) {
	node := NewTranslationUnit(posOf(n))
	count := n.NamedChildCount()
	items := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		item := b.pop()
		if item == nil {
			b.errf(n, "Invalid child in translation unit")
			continue
		}
		items = append(items, item)
	}
	// items were popped in reverse source order; restore source order.
	for i := len(items) - 1; i >= 0; i-- {
		if !node.Add(items[i]) {
			b.errf(n, "Invalid child in translation unit: %s", items[i].String())
		}
	}
	b.push(node)
}
