package scene

import (
	"github.com/google/uuid"
)

// Graph is a flat, ordered scene container
// Draw order is insertion order; removal keeps the relative order of the rest
type Graph struct {
	nodes []Node
	index map[uuid.UUID]int
}

func New() *Graph {
	return &Graph{
		index: make(map[uuid.UUID]int),
	}
}

// Add appends n to the draw order, a node already present is left in place
func (g *Graph) Add(n Node) {
	if n == nil {
		return
	}
	if _, ok := g.index[n.ID()]; ok {
		return
	}
	g.index[n.ID()] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// Remove drops n, absent nodes are ignored
func (g *Graph) Remove(n Node) {
	if n == nil {
		return
	}
	i, ok := g.index[n.ID()]
	if !ok {
		return
	}
	delete(g.index, n.ID())
	copy(g.nodes[i:], g.nodes[i+1:])
	g.nodes[len(g.nodes)-1] = nil
	g.nodes = g.nodes[:len(g.nodes)-1]
	for j := i; j < len(g.nodes); j++ {
		g.index[g.nodes[j].ID()] = j
	}
}

func (g *Graph) Contains(n Node) bool {
	if n == nil {
		return false
	}
	_, ok := g.index[n.ID()]
	return ok
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns a snapshot in draw order
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}
