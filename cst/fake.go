package cst

// FakeNode is a hand-built CST node used by ast package tests, since no
// tree-sitter grammar binary can be compiled in this environment. The CST
// is treated as an opaque oracle, so any conforming implementation — real
// or fake — works the same way from the builder's point of view.
type FakeNode struct {
	Sym       int
	KindName  string
	Named     bool
	Start     uint32
	End       uint32
	Point     Point
	Children  []*FakeNode
	Fields    map[string]*FakeNode
	TextValue string
}

func (f *FakeNode) Symbol() int        { return f.Sym }
func (f *FakeNode) Kind() string       { return f.KindName }
func (f *FakeNode) IsNamed() bool      { return f.Named }
func (f *FakeNode) StartByte() uint32  { return f.Start }
func (f *FakeNode) EndByte() uint32    { return f.End }
func (f *FakeNode) StartPoint() Point  { return f.Point }
func (f *FakeNode) Text() string       { return f.TextValue }

func (f *FakeNode) NamedChildCount() int {
	n := 0
	for _, c := range f.Children {
		if c.Named {
			n++
		}
	}
	return n
}

func (f *FakeNode) NamedChild(i int) Node {
	idx := 0
	for _, c := range f.Children {
		if !c.Named {
			continue
		}
		if idx == i {
			return c
		}
		idx++
	}
	return nil
}

func (f *FakeNode) ChildByFieldName(name string) Node {
	c, ok := f.Fields[name]
	if !ok {
		return nil
	}
	return c
}
