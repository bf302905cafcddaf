// Package script loads a dialogue graph from a YAML script file.
//
// The script is a single document listing nodes (id + answers) and edges
// (parent, child, keywords). The root node may be declared explicitly;
// otherwise it is inferred as the unique node without incoming edges.
package script

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor/pkg/domain"
)

// Loader implements ports.GraphLoader for YAML dialogue scripts.
type Loader struct {
	path string
}

// NewLoader creates a loader for the script at the given path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// scriptFile mirrors the YAML document structure.
type scriptFile struct {
	Root  *int `yaml:"root"`
	Nodes []struct {
		ID      int      `yaml:"id"`
		Answers []string `yaml:"answers"`
	} `yaml:"nodes"`
	Edges []struct {
		Parent   int      `yaml:"parent"`
		Child    int      `yaml:"child"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"edges"`
}

// Load reads and parses the script, then builds a finalized graph.
func (l *Loader) Load(ctx context.Context) (*domain.Graph, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", l.path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", l.path, err)
	}
	return g, nil
}

// Parse builds a finalized graph from raw YAML script bytes.
func Parse(data []byte) (*domain.Graph, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	g := domain.NewGraph()

	for _, n := range file.Nodes {
		if err := g.AddNode(domain.NodeID(n.ID)); err != nil {
			return nil, err
		}
		for _, a := range n.Answers {
			if err := g.AddAnswer(domain.NodeID(n.ID), a); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range file.Edges {
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("%w: edge %d->%d has no keywords",
				domain.ErrInvalidGraph, e.Parent, e.Child)
		}
		err := g.AddEdge(domain.Edge{
			Parent:   domain.NodeID(e.Parent),
			Child:    domain.NodeID(e.Child),
			Keywords: e.Keywords,
		})
		if err != nil {
			return nil, err
		}
	}

	if file.Root != nil {
		if err := g.SetRoot(domain.NodeID(*file.Root)); err != nil {
			return nil, err
		}
	}

	if err := g.Finalize(); err != nil {
		return nil, err
	}

	return g, nil
}
