package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Geoffrey1014/svf-front-end-sub000/cst"
)

// buildTree constructs: root(binary_expr) -> [lhs(ident "a"), rhs(ident "b")],
// plus one anonymous "+" token sandwiched between them that Walk/PostOrder
// must skip since they only recurse into named children.
func buildTree() *cst.FakeNode {
	lhs := &cst.FakeNode{Sym: 1, KindName: "identifier", Named: true, TextValue: "a"}
	plus := &cst.FakeNode{Sym: 2, KindName: "+", Named: false, TextValue: "+"}
	rhs := &cst.FakeNode{Sym: 1, KindName: "identifier", Named: true, TextValue: "b"}
	root := &cst.FakeNode{
		Sym:      3,
		KindName: "binary_expr",
		Named:    true,
		Children: []*cst.FakeNode{lhs, plus, rhs},
		Fields: map[string]*cst.FakeNode{
			"left":  lhs,
			"right": rhs,
		},
		TextValue: "a + b",
	}
	return root
}

func TestFakeNodeNamedChildSkipsAnonymous(t *testing.T) {
	root := buildTree()

	assert.Equal(t, 2, root.NamedChildCount())
	assert.Equal(t, "a", root.NamedChild(0).Text())
	assert.Equal(t, "b", root.NamedChild(1).Text())
	assert.Nil(t, root.NamedChild(2))
}

func TestFakeNodeChildByFieldName(t *testing.T) {
	root := buildTree()

	assert.Equal(t, "a", root.ChildByFieldName("left").Text())
	assert.Equal(t, "b", root.ChildByFieldName("right").Text())
	assert.Nil(t, root.ChildByFieldName("missing"))
}

func TestWalkVisitsOnlyNamedDescendants(t *testing.T) {
	var visited []string
	cst.Inspect(buildTree(), func(n cst.Node) bool {
		visited = append(visited, n.Text())
		return true
	})

	assert.Equal(t, []string{"a + b", "a", "b"}, visited)
}

func TestInspectStopsDescentWhenFalse(t *testing.T) {
	var visited []string
	cst.Inspect(buildTree(), func(n cst.Node) bool {
		visited = append(visited, n.Text())
		return n.Kind() != "binary_expr"
	})

	assert.Equal(t, []string{"a + b"}, visited)
}

func TestPostOrderFiresChildrenBeforeParent(t *testing.T) {
	var order []string
	cst.PostOrder(buildTree(), func(n cst.Node) {
		order = append(order, n.Text())
	})

	assert.Equal(t, []string{"a", "b", "a + b"}, order)
}

func TestWalkOnNilNodeIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		cst.Inspect(nil, func(cst.Node) bool { return true })
	})
}
