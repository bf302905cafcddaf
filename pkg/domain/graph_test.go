package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
)

func buildGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()

	for id := 0; id < 3; id++ {
		if err := g.AddNode(domain.NodeID(id)); err != nil {
			t.Fatalf("AddNode(%d) failed: %v", id, err)
		}
	}
	for id := 0; id < 3; id++ {
		if err := g.AddAnswer(domain.NodeID(id), "answer"); err != nil {
			t.Fatalf("AddAnswer(%d) failed: %v", id, err)
		}
	}
	return g
}

func TestGraph_AddNode_Duplicate(t *testing.T) {
	g := domain.NewGraph()
	if err := g.AddNode(1); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}

	err := g.AddNode(1)
	if !errors.Is(err, domain.ErrDuplicateNode) {
		t.Errorf("expected ErrDuplicateNode, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidGraph) {
		t.Errorf("duplicate node should also be an ErrInvalidGraph, got %v", err)
	}
}

func TestGraph_AddEdge_UnknownEndpoints(t *testing.T) {
	g := buildGraph(t)

	if err := g.AddEdge(domain.Edge{Parent: 9, Child: 1, Keywords: []string{"x"}}); !errors.Is(err, domain.ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode for missing parent, got %v", err)
	}
	if err := g.AddEdge(domain.Edge{Parent: 0, Child: 9, Keywords: []string{"x"}}); !errors.Is(err, domain.ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode for missing child, got %v", err)
	}
}

func TestGraph_EdgeOrderPreserved(t *testing.T) {
	g := buildGraph(t)

	edges := []domain.Edge{
		{Parent: 0, Child: 1, Keywords: []string{"first"}},
		{Parent: 0, Child: 2, Keywords: []string{"second"}},
		{Parent: 0, Child: 1, Keywords: []string{"third"}},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}

	out := g.Outgoing(0)
	if len(out) != 3 {
		t.Fatalf("expected 3 outgoing edges, got %d", len(out))
	}
	for i, e := range out {
		if e.Keywords[0] != edges[i].Keywords[0] {
			t.Errorf("edge %d out of order: got %q, want %q", i, e.Keywords[0], edges[i].Keywords[0])
		}
	}
}

func TestGraph_IncomingRelation(t *testing.T) {
	g := buildGraph(t)

	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 2, Keywords: []string{"a"}})
	_ = g.AddEdge(domain.Edge{Parent: 1, Child: 2, Keywords: []string{"b"}})

	in := g.Incoming(2)
	if len(in) != 2 {
		t.Fatalf("expected 2 incoming edges, got %d", len(in))
	}
	if in[0].Parent != 0 || in[1].Parent != 1 {
		t.Errorf("incoming edges out of order: %+v", in)
	}
}

func TestGraph_Finalize_InfersRoot(t *testing.T) {
	g := buildGraph(t)
	// 0 -> 1 -> 2, so 0 is the unique node without incoming edges.
	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 1, Keywords: []string{"a"}})
	_ = g.AddEdge(domain.Edge{Parent: 1, Child: 2, Keywords: []string{"b"}})

	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if g.Root() != 0 {
		t.Errorf("expected root 0, got %d", g.Root())
	}
	if !g.Finalized() {
		t.Error("graph should report finalized")
	}
}

func TestGraph_Finalize_AmbiguousRoot(t *testing.T) {
	g := buildGraph(t)
	// Only 2 has an incoming edge; 0 and 1 both qualify as root.
	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 2, Keywords: []string{"a"}})

	if err := g.Finalize(); !errors.Is(err, domain.ErrAmbiguousRoot) {
		t.Errorf("expected ErrAmbiguousRoot, got %v", err)
	}
}

func TestGraph_Finalize_ExplicitRootBreaksTie(t *testing.T) {
	g := buildGraph(t)
	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 2, Keywords: []string{"a"}})

	if err := g.SetRoot(1); err != nil {
		t.Fatalf("SetRoot failed: %v", err)
	}
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if g.Root() != 1 {
		t.Errorf("expected root 1, got %d", g.Root())
	}
}

func TestGraph_Finalize_CyclicGraph(t *testing.T) {
	g := buildGraph(t)
	// Cycle 1 <-> 2 below the root; cycles are legal conversations.
	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 1, Keywords: []string{"a"}})
	_ = g.AddEdge(domain.Edge{Parent: 1, Child: 2, Keywords: []string{"b"}})
	_ = g.AddEdge(domain.Edge{Parent: 2, Child: 1, Keywords: []string{"c"}})

	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize rejected a cyclic graph: %v", err)
	}
}

func TestGraph_Finalize_NoRoot(t *testing.T) {
	g := domain.NewGraph()
	_ = g.AddNode(0)
	_ = g.AddNode(1)
	_ = g.AddAnswer(0, "a")
	_ = g.AddAnswer(1, "b")
	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 1, Keywords: []string{"x"}})
	_ = g.AddEdge(domain.Edge{Parent: 1, Child: 0, Keywords: []string{"y"}})

	if err := g.Finalize(); !errors.Is(err, domain.ErrNoRoot) {
		t.Errorf("expected ErrNoRoot, got %v", err)
	}
}

func TestGraph_Finalize_Empty(t *testing.T) {
	g := domain.NewGraph()
	if err := g.Finalize(); !errors.Is(err, domain.ErrInvalidGraph) {
		t.Errorf("expected ErrInvalidGraph for empty graph, got %v", err)
	}
}

func TestGraph_MutationAfterFinalizeRejected(t *testing.T) {
	g := domain.NewGraph()
	_ = g.AddNode(0)
	_ = g.AddAnswer(0, "a")
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if err := g.AddNode(1); !errors.Is(err, domain.ErrInvalidGraph) {
		t.Errorf("expected AddNode after Finalize to fail, got %v", err)
	}
	if err := g.AddEdge(domain.Edge{Parent: 0, Child: 0, Keywords: []string{"x"}}); !errors.Is(err, domain.ErrInvalidGraph) {
		t.Errorf("expected AddEdge after Finalize to fail, got %v", err)
	}
}
