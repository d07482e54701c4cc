package ssa

import "github.com/Geoffrey1014/svf-front-end-sub000/cfg"

// Result bundles one function's completed SSA construction: the graph
// itself (now carrying phi statements and renamed Vars), plus the
// dominator and dominance-frontier maps a caller might want to inspect or
// render.
type Result struct {
	Graph     *cfg.CFG
	Idom      map[*cfg.BasicBlock]*cfg.BasicBlock
	Frontier  map[*cfg.BasicBlock][]*cfg.BasicBlock
}

// Convert runs the full pipeline — dominators, dominance frontiers, phi
// placement, then renaming — over g in place and returns the intermediate
// maps alongside it.
func Convert(g *cfg.CFG, params []string) *Result {
	idom := Dominators(g)
	df := DominanceFrontier(g, idom)
	InsertPhis(g.BlocksList, df)
	Rename(g.Entry, idom, params)
	return &Result{Graph: g, Idom: idom, Frontier: df}
}
