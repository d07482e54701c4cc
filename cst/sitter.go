package cst

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// sitterNode adapts *sitter.Node to the Node interface.
type sitterNode struct {
	n   *sitter.Node
	src []byte
}

// NewSitterNode wraps a tree-sitter root or subtree node together with the
// source bytes it was parsed from (needed to slice out node text).
func NewSitterNode(n *sitter.Node, src []byte) Node {
	if n == nil {
		return nil
	}
	return &sitterNode{n: n, src: src}
}

func (s *sitterNode) Symbol() int { return int(s.n.Symbol()) }
func (s *sitterNode) Kind() string { return s.n.Type() }
func (s *sitterNode) IsNamed() bool { return s.n.IsNamed() }
func (s *sitterNode) StartByte() uint32 { return s.n.StartByte() }
func (s *sitterNode) EndByte() uint32 { return s.n.EndByte() }

func (s *sitterNode) StartPoint() Point {
	p := s.n.StartPoint()
	return Point{Row: p.Row, Column: p.Column}
}

func (s *sitterNode) NamedChildCount() int { return int(s.n.NamedChildCount()) }

func (s *sitterNode) NamedChild(i int) Node {
	c := s.n.NamedChild(i)
	if c == nil {
		return nil
	}
	return &sitterNode{n: c, src: s.src}
}

func (s *sitterNode) ChildByFieldName(name string) Node {
	c := s.n.ChildByFieldName(name)
	if c == nil {
		return nil
	}
	return &sitterNode{n: c, src: s.src}
}

func (s *sitterNode) Text() string {
	return string(s.src[s.n.StartByte():s.n.EndByte()])
}
