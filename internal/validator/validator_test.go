package validator_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/validator"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
)

func TestValidateGraph_Clean(t *testing.T) {
	b := dsl.New()
	b.Node(0).Answer("hi").Edge(1, "go")
	b.Node(1).Answer("end").Edge(0, "back")

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := validator.ValidateGraph(g); err != nil {
		t.Errorf("expected clean graph, got: %v", err)
	}
}

func TestValidateGraph_UnreachableNode(t *testing.T) {
	b := dsl.New()
	b.Node(0).Answer("hi").Edge(1, "go")
	b.Node(1).Answer("mid")
	// Node 2 only points into the graph, nothing reaches it.
	b.Node(2).Answer("island").Edge(1, "go")
	b.Root(0)

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	err = validator.ValidateGraph(g)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "node 2 is unreachable") {
		t.Errorf("expected unreachable report for node 2, got: %v", err)
	}
}

func TestValidateGraph_AnswerlessNode(t *testing.T) {
	g := domain.NewGraph()
	_ = g.AddNode(0)
	_ = g.AddAnswer(0, "hi")
	_ = g.AddNode(1) // no answers
	_ = g.AddEdge(domain.Edge{Parent: 0, Child: 1, Keywords: []string{"go"}})
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	err := validator.ValidateGraph(g)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "node 1 has no answers") {
		t.Errorf("expected answerless report for node 1, got: %v", err)
	}
}

func TestValidateGraph_RequiresFinalized(t *testing.T) {
	g := domain.NewGraph()
	_ = g.AddNode(0)

	if err := validator.ValidateGraph(g); err != domain.ErrNotFinalized {
		t.Errorf("expected ErrNotFinalized, got %v", err)
	}
}
