package arbor

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/adapters/script"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Version is the library version, reported by the CLI.
const Version = "0.2.0"

// Engine is the high-level entry point for the Arbor library.
// It wraps the internal traversal runtime and provides a simplified API
// for consumers.
type Engine struct {
	runtime     *runtime.Engine
	graph       *domain.Graph
	loader      ports.GraphLoader
	runtimeOpts []runtime.EngineOption
	logger      *slog.Logger
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom GraphLoader, bypassing the default YAML
// script loader.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRand injects the randomness source used for answer selection.
// Pass a fixed seed to make conversations reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithRand(rng))
	}
}

// WithSink sets the output sink that receives every selected answer.
func WithSink(sink ports.OutputSink) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithSink(sink))
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// New initializes a new Arbor Engine.
// By default, it loads the YAML dialogue script at the given path.
// If the WithLoader option is provided, scriptPath can be empty and the
// default loader is skipped.
func New(scriptPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if scriptPath == "" {
			return nil, fmt.Errorf("scriptPath is required when no custom loader is provided")
		}
		eng.loader = script.NewLoader(scriptPath)
	}
	if scriptPath != "" {
		eng.Name = filepath.Base(scriptPath)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("script", eng.Name)
	}

	graph, err := eng.loader.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load dialogue graph: %w", err)
	}
	eng.graph = graph

	runtimeOpts := append([]runtime.EngineOption{runtime.WithLogger(eng.logger)}, eng.runtimeOpts...)
	rt, err := runtime.NewEngine(graph, runtimeOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start engine: %w", err)
	}
	eng.runtime = rt

	eng.logger.Debug("engine initialized", "nodes", graph.Len(), "root", graph.Root())
	return eng, nil
}

// Greet emits a random answer of the current node without moving the
// cursor. Call it once after New to open the conversation with the root
// node's greeting.
func (e *Engine) Greet(ctx context.Context) (string, error) {
	return e.runtime.Greet(ctx)
}

// ReceiveMessage routes one user message through the graph and returns the
// selected answer. The answer is also delivered to the configured sink.
func (e *Engine) ReceiveMessage(ctx context.Context, input string) (string, error) {
	return e.runtime.ReceiveMessage(ctx, input)
}

// CurrentNode returns the handle of the node the conversation cursor is on.
func (e *Engine) CurrentNode() domain.NodeID {
	return e.runtime.CurrentNode()
}

// Reset moves the conversation cursor back to the root node.
func (e *Engine) Reset() {
	e.runtime.Reset()
}

// Graph returns the loaded dialogue graph for introspection and
// visualization tools.
func (e *Engine) Graph() *domain.Graph {
	return e.graph
}

// Loader returns the underlying GraphLoader used by the engine.
func (e *Engine) Loader() ports.GraphLoader {
	return e.loader
}
