// Package cfg builds a control-flow graph out of one function's LIR
// statement list: basic-block partitioning by leader identification, then
// edge insertion from each block's terminating jump.
//
// The LIR builder (package lir) only labels block-boundary statements,
// not every statement, so leaders are identified by slice index instead
// of by a per-statement label lookup, and instructions following a jump
// become leaders by index rather than by table key.
package cfg

import "github.com/Geoffrey1014/svf-front-end-sub000/lir"

// BasicBlock is one CFG node: a contiguous run of LIR statements sharing a
// single entry point and a single exit.
type BasicBlock struct {
	Label string
	Stmts []lir.Stmt

	preds []*BasicBlock
	succs []*BasicBlock
}

func newBasicBlock(label string) *BasicBlock {
	return &BasicBlock{Label: label}
}

func (b *BasicBlock) addStmt(s lir.Stmt) { b.Stmts = append(b.Stmts, s) }

// addSuccessor records edge b -> to, and the matching predecessor edge on
// to, skipping duplicates.
func (b *BasicBlock) addSuccessor(to *BasicBlock) {
	for _, s := range b.succs {
		if s == to {
			return
		}
	}
	b.succs = append(b.succs, to)
	to.preds = append(to.preds, b)
}

// Successors returns b's outgoing edges in the order they were inserted.
func (b *BasicBlock) Successors() []*BasicBlock { return b.succs }

// Predecessors returns b's incoming edges in the order they were inserted.
func (b *BasicBlock) Predecessors() []*BasicBlock { return b.preds }
