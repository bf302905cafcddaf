package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// GraphLoader defines how the engine obtains the dialogue graph.
// Implementations must return a finalized graph: all edge endpoints
// resolved and the root node determined.
type GraphLoader interface {
	Load(ctx context.Context) (*domain.Graph, error)
}
