package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/dsl"
)

func TestGenerateMermaid(t *testing.T) {
	b := dsl.New()
	b.Node(0).Answer("Welcome to the bot").Edge(1, "pizza", "food")
	b.Node(1).Answer("Margherita.")

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := graph.GenerateMermaid(g, nil)

	contains := []string{
		"graph TD",
		"n0((", // root drawn as circle
		"n1([", // leaf drawn as stadium
		"n0 -- \"pizza / food\" --> n1",
	}
	for _, want := range contains {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	b := dsl.New()
	b.Node(0).Answer("a").Edge(1, "x")
	b.Node(1).Answer("b")

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := graph.GenerateMermaid(g, &graph.Overlay{CurrentNode: 1, HasCurrent: true})

	if !strings.Contains(out, "class n1 current;") {
		t.Errorf("expected current-node overlay for n1:\n%s", out)
	}
}

func TestGenerateMermaid_TruncatesAndEscapes(t *testing.T) {
	b := dsl.New()
	b.Node(0).Answer(`say "please" and then keep talking for quite a while`)

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := graph.GenerateMermaid(g, nil)

	if !strings.Contains(out, "...") {
		t.Errorf("expected truncated preview:\n%s", out)
	}
	if !strings.Contains(out, "say 'please'") {
		t.Errorf("expected quotes escaped in label:\n%s", out)
	}
}
