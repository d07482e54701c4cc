// Package ssa converts a function's CFG (package cfg) into static single
// assignment form: dominator computation, dominance-frontier computation,
// phi-placement, and dominator-tree renaming.
//
// Implements the iterative Cooper-Harvey-Kennedy dominator algorithm and
// the Cytron et al. dominance-frontier computation by name.
package ssa

import "github.com/Geoffrey1014/svf-front-end-sub000/cfg"

// reversePostorder numbers every block reachable from entry, entry first.
func reversePostorder(entry *cfg.BasicBlock) ([]*cfg.BasicBlock, map[*cfg.BasicBlock]int) {
	var order []*cfg.BasicBlock
	visited := map[*cfg.BasicBlock]bool{}

	var visit func(b *cfg.BasicBlock)
	visit = func(b *cfg.BasicBlock) {
		if visited[b] {
			return
		}
		visited[b] = true
		for _, s := range b.Successors() {
			visit(s)
		}
		order = append(order, b)
	}
	visit(entry)

	// order is postorder; reverse it in place.
	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}
	index := make(map[*cfg.BasicBlock]int, len(order))
	for i, b := range order {
		index[b] = i
	}
	return order, index
}

// Dominators computes the immediate dominator of every block reachable
// from g.Entry, using the iterative Cooper-Harvey-Kennedy algorithm (a
// fixpoint over reverse-postorder-numbered blocks, intersecting along
// processed predecessors).
func Dominators(g *cfg.CFG) map[*cfg.BasicBlock]*cfg.BasicBlock {
	rpo, index := reversePostorder(g.Entry)
	idom := make(map[*cfg.BasicBlock]*cfg.BasicBlock, len(rpo))
	idom[g.Entry] = g.Entry

	changed := true
	for changed {
		changed = false
		for _, b := range rpo[1:] {
			var newIdom *cfg.BasicBlock
			for _, p := range b.Predecessors() {
				if idom[p] == nil {
					continue
				}
				if newIdom == nil {
					newIdom = p
					continue
				}
				newIdom = intersect(newIdom, p, idom, index)
			}
			if newIdom != nil && idom[b] != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}
	return idom
}

func intersect(a, b *cfg.BasicBlock, idom map[*cfg.BasicBlock]*cfg.BasicBlock, index map[*cfg.BasicBlock]int) *cfg.BasicBlock {
	for a != b {
		for index[a] > index[b] {
			a = idom[a]
		}
		for index[b] > index[a] {
			b = idom[b]
		}
	}
	return a
}

// Tree builds the dominator tree's children map from an idom map, used by
// renaming to walk blocks in dominance order. The entry block's self-entry
// (idom[entry] == entry, the algorithm's base case) is skipped here so it
// is not recorded as its own child — renaming's preorder walk starts at
// entry directly and would otherwise recurse into itself forever.
func Tree(idom map[*cfg.BasicBlock]*cfg.BasicBlock) map[*cfg.BasicBlock][]*cfg.BasicBlock {
	children := map[*cfg.BasicBlock][]*cfg.BasicBlock{}
	for b, d := range idom {
		if b == d {
			continue
		}
		children[d] = append(children[d], b)
	}
	return children
}
