package ssa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geoffrey1014/svf-front-end-sub000/cfg"
	"github.com/Geoffrey1014/svf-front-end-sub000/lir"
)

// diamond builds: ifZ c goto L.else; x=1; goto L.end; L.else: x=2; L.end: y=x
func diamond() *cfg.CFG {
	fn := &lir.Function{
		Name: "f",
		Stmts: []lir.Stmt{
			lir.Jump{Target: "L.else", Conditional: true, Condition: lir.Var("c")},
			lir.AssignReg{Dst: lir.Var("x"), Src: lir.IntLit(1)},
			lir.Jump{Target: "L.end"},
			lir.Label("L.else", lir.Empty{}),
			lir.AssignReg{Dst: lir.Var("x"), Src: lir.IntLit(2)},
			lir.Label("L.end", lir.Empty{}),
			lir.AssignReg{Dst: lir.Var("y"), Src: lir.Var("x")},
		},
	}
	return cfg.Build(fn)
}

func TestDominatorsDiamond(t *testing.T) {
	g := diamond()
	idom := Dominators(g)

	b0, b1, belse, bend := g.BlocksList[0], g.BlocksList[1], g.BlocksList[2], g.BlocksList[3]

	assert.Equal(t, g.Entry, idom[g.Entry], "entry must dominate itself")
	assert.Equal(t, g.Entry, idom[b0])
	assert.Equal(t, b0, idom[b1])
	assert.Equal(t, b0, idom[belse])
	assert.Equal(t, b0, idom[bend])
}

func TestDominanceFrontierDiamond(t *testing.T) {
	g := diamond()
	idom := Dominators(g)
	df := DominanceFrontier(g, idom)

	b1, belse, bend := g.BlocksList[1], g.BlocksList[2], g.BlocksList[3]

	assert.ElementsMatch(t, []*cfg.BasicBlock{bend}, df[b1])
	assert.ElementsMatch(t, []*cfg.BasicBlock{bend}, df[belse])
	assert.Empty(t, df[bend])
}

func TestInsertPhisAndRenamePlacesPhiAtMerge(t *testing.T) {
	g := diamond()
	res := Convert(g, nil)
	require.NotNil(t, res)

	bend := g.BlocksList[3]
	require.NotEmpty(t, bend.Stmts)

	phi, ok := bend.Stmts[0].(lir.Phi)
	require.True(t, ok, "expected a phi as the first statement of the merge block, got %s", bend.Stmts[0])
	require.Len(t, phi.Args, 2)

	for _, a := range phi.Args {
		assert.NotNil(t, a.Value, "phi argument for %s was never filled in by renaming", a.PredecessorBB)
	}

	// y = x should now read the renamed phi result, not "x".
	assignY := bend.Stmts[len(bend.Stmts)-1]
	assignReg, ok := assignY.(lir.AssignReg)
	require.True(t, ok)
	srcVar, ok := assignReg.Src.(lir.Var)
	require.True(t, ok)
	assert.Equal(t, string(phi.Dst.(lir.Var)), string(srcVar))
}
