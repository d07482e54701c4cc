package ast

// Grammar node kinds the builder's dispatch table switches on. These are
// the grammar's own node-type name strings (what cst.Node.Kind() returns),
// not generated integer symbol ids: integer ids are only stable within one
// compiled parser table and drift across grammars, and even across
// regenerations of the same grammar, while the type-name string a grammar
// assigns a given construct (e.g. "binary_expression", "if_expression")
// is the part every generated parser keeps stable across versions. Naming
// these after the grammar this front end actually loads (the Rust grammar
// bundled with go-tree-sitter — see main.go's parse function) keeps the
// taxonomy's "mut"/"loop"/range-expr/for-in vocabulary honest: those are
// Rust constructs, not C ones.
const (
	KindIdentifier          = "identifier"
	KindPrimitiveType       = "primitive_type"
	KindMutableSpecifier    = "mutable_specifier"
	KindIntegerLiteral      = "integer_literal"
	KindFunctionItem        = "function_item"
	KindLetDeclaration      = "let_declaration"
	KindParameter           = "parameter"
	KindParameters          = "parameters"
	KindFunctionDeclarator  = "function_declarator"
	KindArrayType           = "array_type"
	KindExpressionStatement = "expression_statement"
	KindSourceFile          = "source_file"
	KindUnaryExpression     = "unary_expression"
	KindReferenceExpression = "reference_expression"
	KindRangeExpression     = "range_expression"
	KindAssignmentExpression = "assignment_expression"
	KindCompoundAssignmentExpr = "compound_assignment_expr"
	KindCallExpression      = "call_expression"
	KindArguments           = "arguments"
	KindBinaryExpression    = "binary_expression"
	KindReturnExpression    = "return_expression"
	KindBlock               = "block"
	KindIfExpression        = "if_expression"
	KindElseClause          = "else_clause"
	KindForExpression       = "for_expression"

	KindStringLiteral    = "string_literal"
	KindCharLiteral      = "char_literal"
	KindBooleanLiteral   = "boolean_literal"
	KindWhileExpression  = "while_expression"
	KindLoopExpression   = "loop_expression"
	KindBreakExpression  = "break_expression"
	KindContinueExpression = "continue_expression"
	KindFieldExpression  = "field_expression"
	KindIndexExpression  = "index_expression"
	KindParenthesizedExpression = "parenthesized_expression"
	KindPointerType      = "pointer_type"

	// Reserved: named in the handler set but not yet wired to a
	// Builder.exitXxx case.
	KindReferenceType  = "reference_type"
	KindStructItem     = "struct_item"
	KindTypeItem       = "type_item"
	KindTypeIdentifier = "type_identifier"
	KindAbstractPointerType = "abstract_pointer_type"
	KindModItem        = "mod_item"
	KindUseDeclaration = "use_declaration"
)
