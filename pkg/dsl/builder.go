package dsl

import (
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

// Builder accumulates nodes and edges and compiles them into a graph.
type Builder struct {
	nodes map[domain.NodeID]*NodeBuilder
	order []domain.NodeID
	root  *domain.NodeID
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[domain.NodeID]*NodeBuilder),
	}
}

// Node creates (or returns) the builder for the given node ID.
func (b *Builder) Node(id domain.NodeID) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{id: id}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Root declares the entry node explicitly, overriding inference.
func (b *Builder) Root(id domain.NodeID) *Builder {
	b.root = &id
	return b
}

// Build compiles the accumulated definitions into a finalized graph.
func (b *Builder) Build() (*domain.Graph, error) {
	g := domain.NewGraph()

	for _, id := range b.order {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
		for _, a := range b.nodes[id].answers {
			if err := g.AddAnswer(id, a); err != nil {
				return nil, err
			}
		}
	}

	// Edges are added after all nodes so forward references work.
	for _, id := range b.order {
		for _, e := range b.nodes[id].edges {
			if err := g.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}

	if b.root != nil {
		if err := g.SetRoot(*b.root); err != nil {
			return nil, err
		}
	}

	if err := g.Finalize(); err != nil {
		return nil, err
	}

	return g, nil
}

// Loader compiles the graph and wraps it in a memory loader.
func (b *Builder) Loader() (*memory.Loader, error) {
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return memory.NewLoader(g), nil
}

// NodeBuilder provides a fluent API for configuring a single node.
type NodeBuilder struct {
	id      domain.NodeID
	answers []string
	edges   []domain.Edge
}

// Answer appends an answer to the node's answer list.
func (n *NodeBuilder) Answer(text string) *NodeBuilder {
	n.answers = append(n.answers, text)
	return n
}

// Edge adds an outgoing edge to the target node, triggered by the given
// keywords. Keyword order is preserved for tie-breaking.
func (n *NodeBuilder) Edge(target domain.NodeID, keywords ...string) *NodeBuilder {
	n.edges = append(n.edges, domain.Edge{
		Parent:   n.id,
		Child:    target,
		Keywords: keywords,
	})
	return n
}
