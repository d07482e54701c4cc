package ssa

import "github.com/Geoffrey1014/svf-front-end-sub000/cfg"

// DominanceFrontier computes the dominance frontier of every block
// reachable from g.Entry (Cytron et al.): for each join point b, walk each
// predecessor p up its idom chain until reaching idom[b], adding b to the
// frontier of every block visited along the way.
func DominanceFrontier(g *cfg.CFG, idom map[*cfg.BasicBlock]*cfg.BasicBlock) map[*cfg.BasicBlock][]*cfg.BasicBlock {
	df := map[*cfg.BasicBlock][]*cfg.BasicBlock{}
	all := append([]*cfg.BasicBlock{g.Entry}, reachableExcludingEntry(g, idom)...)

	for _, b := range all {
		preds := b.Predecessors()
		if len(preds) < 2 {
			continue
		}
		for _, p := range preds {
			runner := p
			for runner != idom[b] && runner != nil {
				if !contains(df[runner], b) {
					df[runner] = append(df[runner], b)
				}
				runner = idom[runner]
			}
		}
	}
	return df
}

func reachableExcludingEntry(g *cfg.CFG, idom map[*cfg.BasicBlock]*cfg.BasicBlock) []*cfg.BasicBlock {
	var out []*cfg.BasicBlock
	for b := range idom {
		if b == g.Entry {
			continue
		}
		out = append(out, b)
	}
	return out
}

func contains(list []*cfg.BasicBlock, b *cfg.BasicBlock) bool {
	for _, x := range list {
		if x == b {
			return true
		}
	}
	return false
}
