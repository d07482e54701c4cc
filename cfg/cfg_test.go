package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geoffrey1014/svf-front-end-sub000/lir"
)

// buildIfElseFunction mirrors lir's TestGenIfElse fixture: ifZ c goto
// if.else; x=1; goto if.end; if.else: x=2; if.end:
func buildIfElseFunction() *lir.Function {
	return &lir.Function{
		Name: "f",
		Stmts: []lir.Stmt{
			lir.Jump{Target: "if.else", Conditional: true, Condition: lir.Var("c")},
			lir.AssignReg{Dst: lir.Var("x"), Src: lir.IntLit(1)},
			lir.Jump{Target: "if.end"},
			lir.Label("if.else", lir.Empty{}),
			lir.AssignReg{Dst: lir.Var("x"), Src: lir.IntLit(2)},
			lir.Label("if.end", lir.Empty{}),
		},
	}
}

func TestBuildDiamond(t *testing.T) {
	fn := buildIfElseFunction()
	g := Build(fn)

	require.Len(t, g.BlocksList, 4)
	labels := []string{g.BlocksList[0].Label, g.BlocksList[1].Label, g.BlocksList[2].Label, g.BlocksList[3].Label}
	assert.Equal(t, []string{"BB_0", "BB_1", "BB_if.else", "BB_if.end"}, labels)

	entry, b0, b1, belse, bend := g.Entry, g.BlocksList[0], g.BlocksList[1], g.BlocksList[2], g.BlocksList[3]
	assert.ElementsMatch(t, []*BasicBlock{b0}, entry.Successors())

	// b0 ends in a conditional jump: successors are the jump target and
	// the fallthrough block.
	assert.ElementsMatch(t, []*BasicBlock{belse, b1}, b0.Successors())
	// b1 ends in an unconditional jump to if.end.
	assert.ElementsMatch(t, []*BasicBlock{bend}, b1.Successors())
	// belse falls through to bend.
	assert.ElementsMatch(t, []*BasicBlock{bend}, belse.Successors())
	// bend is the last block: falls through to the synthetic exit.
	assert.ElementsMatch(t, []*BasicBlock{g.Exit}, bend.Successors())

	assert.ElementsMatch(t, []*BasicBlock{b0}, belse.Predecessors())
	assert.ElementsMatch(t, []*BasicBlock{b1, belse}, bend.Predecessors())
}

func TestDotRenderingIncludesAllBlocks(t *testing.T) {
	fn := buildIfElseFunction()
	g := Build(fn)
	out := g.Dot("f")
	assert.Contains(t, out, "digraph f {")
	assert.Contains(t, out, "BB_entry")
	assert.Contains(t, out, "BB_exit")
	assert.Contains(t, out, "BB_if.else")
	assert.Contains(t, out, "BB_if.end")
}

func TestBuildEmptyFunction(t *testing.T) {
	g := Build(&lir.Function{Name: "empty"})
	assert.Empty(t, g.BlocksList)
	assert.ElementsMatch(t, []*BasicBlock{g.Exit}, g.Entry.Successors())
}
