package domain

import "fmt"

// NodeID is a stable numeric handle into the graph arena.
type NodeID int

// Edge is a directed transition between two nodes. The keywords are the
// trigger phrases scored against user input; their order is significant
// because the engine breaks distance ties by enumeration order.
type Edge struct {
	Parent   NodeID   `json:"parent" yaml:"parent"`
	Child    NodeID   `json:"child" yaml:"child"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// node is an arena entry. The outgoing slice is the only ownership relation
// in the graph: destroying the arena destroys the edges, nothing else.
type node struct {
	id       NodeID
	answers  []string
	outgoing []Edge
}

// Graph is the dialogue graph arena. Nodes are stored by ID; edges live in
// their source node's outgoing list. The incoming index is a pure relation
// rebuilt alongside the arena for introspection, never for traversal.
//
// A Graph is built once (AddNode/AddAnswer/AddEdge, then Finalize) and is
// read-only afterwards. It supports general directed graphs, cycles
// included.
type Graph struct {
	nodes    map[NodeID]*node
	order    []NodeID
	incoming map[NodeID][]Edge

	root      NodeID
	rootSet   bool
	finalized bool
}

// NewGraph creates an empty graph arena.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[NodeID]*node),
		incoming: make(map[NodeID][]Edge),
	}
}

// AddNode registers a new node in the arena.
func (g *Graph) AddNode(id NodeID) error {
	if g.finalized {
		return fmt.Errorf("%w: graph is finalized", ErrInvalidGraph)
	}
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %w: node %d", ErrInvalidGraph, ErrDuplicateNode, id)
	}
	g.nodes[id] = &node{id: id}
	g.order = append(g.order, id)
	return nil
}

// AddAnswer appends an answer to a node's answer list. Duplicates are
// allowed; order is preserved.
func (g *Graph) AddAnswer(id NodeID, text string) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %w: node %d", ErrInvalidGraph, ErrUnknownNode, id)
	}
	n.answers = append(n.answers, text)
	return nil
}

// AddEdge transfers the edge into its parent node's outgoing list and
// records the incoming relation on the child. Both endpoints must already
// exist in the arena.
func (g *Graph) AddEdge(e Edge) error {
	if g.finalized {
		return fmt.Errorf("%w: graph is finalized", ErrInvalidGraph)
	}
	parent, ok := g.nodes[e.Parent]
	if !ok {
		return fmt.Errorf("%w: %w: edge parent %d", ErrInvalidGraph, ErrUnknownNode, e.Parent)
	}
	if _, ok := g.nodes[e.Child]; !ok {
		return fmt.Errorf("%w: %w: edge child %d", ErrInvalidGraph, ErrUnknownNode, e.Child)
	}
	parent.outgoing = append(parent.outgoing, e)
	g.incoming[e.Child] = append(g.incoming[e.Child], e)
	return nil
}

// SetRoot declares the entry node explicitly, overriding inference.
func (g *Graph) SetRoot(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %w: root %d", ErrInvalidGraph, ErrUnknownNode, id)
	}
	g.root = id
	g.rootSet = true
	return nil
}

// Finalize freezes the graph and checks structural invariants:
//
//   - at least one node exists
//   - a root is resolvable (explicit, or the unique node with no incoming
//     edges)
//
// Answer lists are not checked here; an empty one surfaces as ErrNoAnswers
// when the cursor lands on the node (use the validate command to catch it
// earlier). After Finalize the graph is safe to traverse and must not be
// mutated.
func (g *Graph) Finalize() error {
	if len(g.order) == 0 {
		return fmt.Errorf("%w: graph has no nodes", ErrInvalidGraph)
	}

	if !g.rootSet {
		var roots []NodeID
		for _, id := range g.order {
			if len(g.incoming[id]) == 0 {
				roots = append(roots, id)
			}
		}
		switch len(roots) {
		case 1:
			g.root = roots[0]
			g.rootSet = true
		case 0:
			return fmt.Errorf("%w: %w: every node has incoming edges", ErrInvalidGraph, ErrNoRoot)
		default:
			return fmt.Errorf("%w: %w: candidates %v", ErrInvalidGraph, ErrAmbiguousRoot, roots)
		}
	}

	g.finalized = true
	return nil
}

// Finalized reports whether Finalize has completed successfully.
func (g *Graph) Finalized() bool {
	return g.finalized
}

// Root returns the entry/fallback node handle. Only meaningful after
// Finalize (or SetRoot).
func (g *Graph) Root() NodeID {
	return g.root
}

// Has reports whether the arena contains the given node.
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.order)
}

// NodeIDs returns all node handles in insertion order.
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// Outgoing returns the node's outgoing edges in insertion order. The
// returned slice is a read-only view; callers must not mutate it.
func (g *Graph) Outgoing(id NodeID) []Edge {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.outgoing
}

// Incoming returns the edges pointing at the node, in the order they were
// added. This is introspection data only; traversal never consults it.
func (g *Graph) Incoming(id NodeID) []Edge {
	return g.incoming[id]
}

// Answers returns the node's answer list in insertion order.
func (g *Graph) Answers(id NodeID) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.answers
}
