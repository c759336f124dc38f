package gosiebox

import "image/color"

// Node is one entry of a scene tree. Its local transform is Rest*Anim:
// Rest places the part in its parent, Anim moves it about that place.
type Node struct {
	Name     string
	Mesh     *Mesh
	Rest     *Matrix
	Anim     *Matrix
	Children []*Node

	// Emissive faces ignore lighting and are drawn at Glow brightness.
	Emissive bool
	Glow     float64
	Hidden   bool
	// Tint, when set, replaces every face colour.
	Tint *color.RGBA
}

func NewNode(name string, mesh *Mesh) *Node {
	return &Node{
		Name: name,
		Mesh: mesh,
		Rest: IdentMatrix(),
		Anim: IdentMatrix(),
	}
}

// At sets the rest translation and returns n.
func (n *Node) At(x, y, z float64) *Node {
	n.Rest = TransMatrix(x, y, z)
	return n
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node named name, depth first.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Local is the node transform relative to its parent.
func (n *Node) Local() *Matrix {
	return n.Rest.MultiplyBy(n.Anim)
}

// Walk visits n and its visible descendants with their accumulated
// transforms. Hidden nodes prune their subtree.
func (n *Node) Walk(parent *Matrix, fn func(n *Node, world *Matrix)) {
	if n == nil || n.Hidden {
		return
	}
	world := parent.MultiplyBy(n.Local())
	fn(n, world)
	for _, c := range n.Children {
		c.Walk(world, fn)
	}
}
