package cfg

import (
	"fmt"

	"github.com/Geoffrey1014/svf-front-end-sub000/lir"
)

// CFG is one function's control-flow graph: a synthetic entry and exit
// block bracketing the real basic blocks formed from its LIR.
type CFG struct {
	Entry *BasicBlock
	Exit  *BasicBlock

	Blocks     map[string]*BasicBlock
	BlocksList []*BasicBlock // insertion order
}

func newCFG() *CFG {
	return &CFG{
		Entry:  newBasicBlock("BB_entry"),
		Exit:   newBasicBlock("BB_exit"),
		Blocks: map[string]*BasicBlock{},
	}
}

func (c *CFG) addBlock(b *BasicBlock) {
	c.Blocks[b.Label] = b
	c.BlocksList = append(c.BlocksList, b)
}

// Build partitions fn's statement list into basic blocks by leader
// identification, then inserts edges from each block's terminating
// statement.
func Build(fn *lir.Function) *CFG {
	c := newCFG()
	if len(fn.Stmts) == 0 {
		c.Entry.addSuccessor(c.Exit)
		return c
	}

	labelIndex := map[string]int{}
	for i, s := range fn.Stmts {
		if l, ok := s.(lir.LabeledStmt); ok {
			labelIndex[l.Label] = i
		}
	}

	leaders := identifyLeaders(fn.Stmts, labelIndex)

	// Partition into blocks.
	var current *BasicBlock
	for i, s := range fn.Stmts {
		if leaders[i] {
			current = newBasicBlock(blockLabel(fn.Stmts, i))
			c.addBlock(current)
		}
		current.addStmt(s)
	}

	c.Entry.addSuccessor(c.BlocksList[0])

	// Connect blocks per the last statement of each.
	for i, block := range c.BlocksList {
		last := block.Stmts[len(block.Stmts)-1]
		target, conditional, isJump := lir.IsJump(unwrap(last))
		switch {
		case isJump:
			if idx, ok := labelIndex[target]; ok {
				block.addSuccessor(c.blockContaining(idx))
			}
			if conditional && i+1 < len(c.BlocksList) {
				block.addSuccessor(c.BlocksList[i+1])
			}
		case i+1 == len(c.BlocksList):
			block.addSuccessor(c.Exit)
		default:
			block.addSuccessor(c.BlocksList[i+1])
		}
	}
	return c
}

// unwrap strips a LabeledStmt wrapper so isJump inspects the underlying
// statement (a label on a jump is still a jump).
func unwrap(s lir.Stmt) lir.Stmt {
	if l, ok := s.(lir.LabeledStmt); ok {
		return l.Stmt
	}
	return s
}

func identifyLeaders(stmts []lir.Stmt, labelIndex map[string]int) map[int]bool {
	leaders := map[int]bool{0: true}
	for i, s := range stmts {
		target, _, isJump := lir.IsJump(unwrap(s))
		if !isJump {
			continue
		}
		if idx, ok := labelIndex[target]; ok {
			leaders[idx] = true
		}
		if i+1 < len(stmts) {
			leaders[i+1] = true
		}
	}
	return leaders
}

// blockLabel names the block starting at index i after its statement's own
// label, if it has one, or synthesizes BB_<i> for an unlabeled leader
// (e.g. the fallthrough target right after a conditional jump).
func blockLabel(stmts []lir.Stmt, i int) string {
	if l, ok := stmts[i].(lir.LabeledStmt); ok {
		return "BB_" + l.Label
	}
	return fmt.Sprintf("BB_%d", i)
}

// blockContaining finds the block a given statement index falls in. Blocks
// are contiguous index ranges in BlocksList order, so this is a linear
// scan; function bodies are small enough that this is not worth indexing.
func (c *CFG) blockContaining(idx int) *BasicBlock {
	count := 0
	for _, b := range c.BlocksList {
		if idx < count+len(b.Stmts) {
			return b
		}
		count += len(b.Stmts)
	}
	return nil
}
