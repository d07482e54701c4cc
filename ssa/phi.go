package ssa

import (
	"github.com/Geoffrey1014/svf-front-end-sub000/cfg"
	"github.com/Geoffrey1014/svf-front-end-sub000/lir"
)

// InsertPhis places phi statements at the head of every block in the
// iterated dominance frontier of each variable's definition sites
// (Cytron et al.'s worklist algorithm), one phi per variable per block,
// with one placeholder argument slot per predecessor edge. Renaming
// (Rename) fills in each slot's value; InsertPhis only decides placement.
//
// Only plain scalar lir.Var locations are promoted to SSA. Array, Deref,
// and Struct locations are left as ordinary memory operations, matching
// how a real register promotion pass only lifts locals that are never
// address-taken or aggregate.
func InsertPhis(blocks []*cfg.BasicBlock, df map[*cfg.BasicBlock][]*cfg.BasicBlock) {
	defSites := map[string]map[*cfg.BasicBlock]bool{}
	for _, b := range blocks {
		for _, s := range b.Stmts {
			name := definedVar(s)
			if name == "" {
				continue
			}
			if defSites[name] == nil {
				defSites[name] = map[*cfg.BasicBlock]bool{}
			}
			defSites[name][b] = true
		}
	}

	for name, sites := range defSites {
		hasPhi := map[*cfg.BasicBlock]bool{}
		var worklist []*cfg.BasicBlock
		for b := range sites {
			worklist = append(worklist, b)
		}
		for len(worklist) > 0 {
			b := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
			for _, d := range df[b] {
				if hasPhi[d] {
					continue
				}
				insertPhi(d, name)
				hasPhi[d] = true
				if !sites[d] {
					worklist = append(worklist, d)
				}
			}
		}
	}
}

func insertPhi(b *cfg.BasicBlock, name string) {
	args := make([]lir.PhiArg, len(b.Predecessors()))
	for i, p := range b.Predecessors() {
		args[i] = lir.PhiArg{PredecessorBB: p.Label}
	}
	phi := lir.Phi{Dst: lir.Var(name), Args: args}
	b.Stmts = append([]lir.Stmt{phi}, b.Stmts...)
}

// definedVar returns the scalar variable name a statement defines, or ""
// if it defines none or its destination is not a plain lir.Var.
func definedVar(s lir.Stmt) string {
	var dst lir.Location
	switch v := s.(type) {
	case lir.AssignReg:
		dst = v.Dst
	case lir.AssignBin:
		dst = v.Dst
	case lir.AssignUn:
		dst = v.Dst
	case lir.AssignAddr:
		dst = v.Dst
	case lir.MethodCall:
		dst = v.Ret
	case lir.Phi:
		dst = v.Dst
	default:
		return ""
	}
	if v, ok := dst.(lir.Var); ok {
		return string(v)
	}
	return ""
}
