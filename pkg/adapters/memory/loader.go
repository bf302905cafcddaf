// Package memory provides an in-memory graph loader, mainly for tests and
// programmatic graph construction via the dsl package.
package memory

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// Loader implements ports.GraphLoader over an already-built graph.
type Loader struct {
	graph *domain.Graph
}

// NewLoader wraps a graph. The graph must be finalized before the engine
// uses it; Load finalizes lazily if the caller has not done so.
func NewLoader(g *domain.Graph) *Loader {
	return &Loader{graph: g}
}

// Load returns the wrapped graph, finalizing it on first use.
func (l *Loader) Load(ctx context.Context) (*domain.Graph, error) {
	if !l.graph.Finalized() {
		if err := l.graph.Finalize(); err != nil {
			return nil, err
		}
	}
	return l.graph, nil
}
