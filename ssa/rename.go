package ssa

import (
	"fmt"

	"github.com/Geoffrey1014/svf-front-end-sub000/cfg"
	"github.com/Geoffrey1014/svf-front-end-sub000/lir"
)

// renamer carries the per-variable name stacks and fresh-name counters
// renaming needs as it walks the dominator tree.
type renamer struct {
	counts map[string]int
	stacks map[string][]string
	tree   map[*cfg.BasicBlock][]*cfg.BasicBlock
	// orig maps each fresh SSA name back to the variable it renames;
	// visited marks blocks whose phis already carry their SSA names.
	orig    map[string]string
	visited map[*cfg.BasicBlock]bool
}

// Rename converts every scalar lir.Var def/use in the CFG to a fresh
// `name_N` SSA name, walking the dominator tree in preorder so a use
// always resolves to the definition that dominates it. params are seeded
// with their `_0` name before the entry block is visited, since they are
// defined on function entry with no explicit LIR statement.
func Rename(entry *cfg.BasicBlock, idom map[*cfg.BasicBlock]*cfg.BasicBlock, params []string) {
	r := &renamer{
		counts:  map[string]int{},
		stacks:  map[string][]string{},
		tree:    Tree(idom),
		orig:    map[string]string{},
		visited: map[*cfg.BasicBlock]bool{},
	}
	for _, p := range params {
		r.push(p)
	}
	r.visit(entry)
}

func (r *renamer) push(name string) string {
	fresh := fmt.Sprintf("%s_%d", name, r.counts[name])
	r.counts[name]++
	r.stacks[name] = append(r.stacks[name], fresh)
	r.orig[fresh] = name
	return fresh
}

func (r *renamer) top(name string) (string, bool) {
	st := r.stacks[name]
	if len(st) == 0 {
		return "", false
	}
	return st[len(st)-1], true
}

func (r *renamer) pop(name string) {
	st := r.stacks[name]
	r.stacks[name] = st[:len(st)-1]
}

func (r *renamer) visit(b *cfg.BasicBlock) {
	var pushed []string
	r.visited[b] = true

	for i, s := range b.Stmts {
		renamed, defName := r.renameStmt(s)
		b.Stmts[i] = renamed
		if defName != "" {
			pushed = append(pushed, defName)
		}
	}

	for _, s := range b.Successors() {
		for i, stmt := range s.Stmts {
			phi, ok := stmt.(lir.Phi)
			if !ok {
				continue
			}
			for j, arg := range phi.Args {
				if arg.PredecessorBB != b.Label {
					continue
				}
				dstName := string(phi.Dst.(lir.Var))
				if r.visited[s] {
					dstName = r.orig[dstName]
				}
				if cur, ok := r.top(dstName); ok {
					phi.Args[j].Value = lir.Var(cur)
				}
			}
			s.Stmts[i] = phi
		}
	}

	for _, child := range r.tree[b] {
		r.visit(child)
	}

	for _, name := range pushed {
		r.pop(baseName(name))
	}
}

// baseName strips the trailing "_N" SSA suffix a push added, so it can be
// popped off the right stack.
func baseName(ssaName string) string {
	for i := len(ssaName) - 1; i >= 0; i-- {
		if ssaName[i] == '_' {
			return ssaName[:i]
		}
	}
	return ssaName
}

// renameStmt substitutes every scalar-Var use in s with its current SSA
// name, renames s's own scalar def (if any) to a fresh name, and returns
// the fresh def name so the caller can pop it on dominator-subtree exit.
func (r *renamer) renameStmt(s lir.Stmt) (lir.Stmt, string) {
	switch v := s.(type) {
	case lir.AssignReg:
		v.Src = r.subComponent(v.Src)
		fresh := r.renameDst(&v.Dst)
		return v, fresh
	case lir.AssignBin:
		v.Lhs = r.subComponent(v.Lhs)
		v.Rhs = r.subComponent(v.Rhs)
		fresh := r.renameDst(&v.Dst)
		return v, fresh
	case lir.AssignUn:
		v.Operand = r.subComponent(v.Operand)
		fresh := r.renameDst(&v.Dst)
		return v, fresh
	case lir.AssignAddr:
		v.Src = r.subLocation(v.Src)
		fresh := r.renameDst(&v.Dst)
		return v, fresh
	case lir.AssignDeref:
		v.Dst = r.subLocation(v.Dst)
		v.Src = r.subComponent(v.Src)
		return v, ""
	case lir.Jump:
		if v.Condition != nil {
			v.Condition = r.subComponent(v.Condition)
		}
		return v, ""
	case lir.MethodCall:
		for i, a := range v.Args {
			v.Args[i] = r.subComponent(a)
		}
		fresh := r.renameDst(&v.Ret)
		return v, fresh
	case lir.Return:
		if v.Value != nil {
			v.Value = r.subComponent(v.Value)
		}
		return v, ""
	case lir.Phi:
		if name, ok := v.Dst.(lir.Var); ok {
			fresh := r.push(string(name))
			v.Dst = lir.Var(fresh)
			return v, fresh
		}
		return v, ""
	case lir.LabeledStmt:
		inner, defName := r.renameStmt(v.Stmt)
		v.Stmt = inner
		return v, defName
	default:
		return s, ""
	}
}

// renameDst renames *dst to a fresh SSA name in place if it is a plain
// scalar Var, leaving composite locations (Array/Deref/Struct) untouched.
// It returns the fresh name, or "" if dst was nil or not a scalar Var.
func (r *renamer) renameDst(dst *lir.Location) string {
	if *dst == nil {
		return ""
	}
	name, ok := (*dst).(lir.Var)
	if !ok {
		*dst = r.subLocation(*dst)
		return ""
	}
	fresh := r.push(string(name))
	*dst = lir.Var(fresh)
	return fresh
}

func (r *renamer) subComponent(c lir.Component) lir.Component {
	if loc, ok := c.(lir.Location); ok {
		return r.subLocation(loc)
	}
	return c
}

func (r *renamer) subLocation(loc lir.Location) lir.Location {
	switch v := loc.(type) {
	case lir.Var:
		if cur, ok := r.top(string(v)); ok {
			return lir.Var(cur)
		}
		return v
	default:
		return loc
	}
}
