package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/match"
	"github.com/aretw0/arbor/pkg/ports"
)

// Engine is the dialogue traversal core. It holds the single conversation
// cursor and, per message, scores every (edge, keyword) pair of the current
// node against the input to decide where to move next.
//
// The engine is synchronous and models exactly one conversation. Callers
// must not invoke ReceiveMessage concurrently.
type Engine struct {
	graph  *domain.Graph
	cursor domain.NodeID
	root   domain.NodeID

	rng    *rand.Rand
	sink   ports.OutputSink
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures the engine at construction time.
type EngineOption func(*Engine)

// WithRand injects the randomness source used for answer selection.
// Injecting a fixed seed makes conversations fully reproducible; the engine
// never reseeds between calls.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSink sets the output sink that receives each selected answer.
func WithSink(sink ports.OutputSink) EngineOption {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for debug tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a traversal engine over a finalized graph. The cursor
// starts at the graph's root node.
func NewEngine(g *domain.Graph, opts ...EngineOption) (*Engine, error) {
	if !g.Finalized() {
		return nil, domain.ErrNotFinalized
	}

	e := &Engine{
		graph:  g,
		cursor: g.Root(),
		root:   g.Root(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		// Seeded once at construction. Reseeding per message would collapse
		// the answer distribution and make tests flaky.
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return e, nil
}

// CurrentNode returns the handle of the node the cursor is on.
func (e *Engine) CurrentNode() domain.NodeID {
	return e.cursor
}

// Reset moves the cursor back to the root node without emitting anything.
func (e *Engine) Reset() {
	e.cursor = e.root
}

// Greet selects a random answer of the current node without moving the
// cursor. It is used to open a conversation with the root node's greeting.
func (e *Engine) Greet(ctx context.Context) (string, error) {
	return e.respond(ctx, e.cursor)
}

// ReceiveMessage routes one user message through the graph:
//
//  1. Every (edge, keyword) pair of the cursor's outgoing edges is scored
//     with the Levenshtein distance to the input.
//  2. The edge of the globally minimum distance wins; ties go to the pair
//     enumerated first (edges, then keywords, in insertion order).
//  3. A node with no outgoing edges falls back to the root node.
//  4. The cursor moves to the destination and one of its answers is chosen
//     uniformly at random and delivered to the sink.
//
// The returned string is the delivered answer. A destination with an empty
// answer list aborts the call with domain.ErrNoAnswers; the cursor has
// already moved at that point.
func (e *Engine) ReceiveMessage(ctx context.Context, input string) (string, error) {
	var (
		target      domain.NodeID
		bestKeyword string
		bestDist    int
		matched     bool
	)

	for _, edge := range e.graph.Outgoing(e.cursor) {
		for _, keyword := range edge.Keywords {
			d := match.Distance(keyword, input)
			// Strict < keeps the first pair on ties: selection must be
			// stable in enumeration order, not merely minimal.
			if !matched || d < bestDist {
				matched = true
				bestDist = d
				bestKeyword = keyword
				target = edge.Child
			}
		}
	}

	if matched {
		e.logger.Debug("matched edge",
			"node", e.cursor, "keyword", bestKeyword, "distance", bestDist, "target", target)
		e.emitMatch(ctx, &domain.MatchEvent{
			NodeID:   e.cursor,
			Input:    input,
			Keyword:  bestKeyword,
			Distance: bestDist,
			Target:   target,
		})
	} else {
		// Leaf node: the conversation loops back to the entry point.
		target = e.root
		e.logger.Debug("no outgoing edges, falling back to root", "node", e.cursor, "root", e.root)
		e.emitFallback(ctx, &domain.NodeEvent{NodeID: e.cursor})
	}

	e.emitNodeLeave(ctx, &domain.NodeEvent{NodeID: e.cursor, Answers: len(e.graph.Answers(e.cursor))})
	e.cursor = target
	e.emitNodeEnter(ctx, &domain.NodeEvent{NodeID: e.cursor, Answers: len(e.graph.Answers(e.cursor))})

	return e.respond(ctx, e.cursor)
}

// respond picks a uniformly random answer of the node and delivers it.
func (e *Engine) respond(_ context.Context, id domain.NodeID) (string, error) {
	answers := e.graph.Answers(id)
	if len(answers) == 0 {
		return "", fmt.Errorf("node %d: %w", id, domain.ErrNoAnswers)
	}

	answer := answers[e.rng.Intn(len(answers))]

	if e.sink != nil {
		if err := e.sink.Deliver(answer); err != nil {
			return "", fmt.Errorf("deliver answer: %w", err)
		}
	}

	return answer, nil
}

func (e *Engine) emitNodeEnter(ctx context.Context, ev *domain.NodeEvent) {
	if e.hooks.OnNodeEnter != nil {
		e.hooks.OnNodeEnter(ctx, ev)
	}
}

func (e *Engine) emitNodeLeave(ctx context.Context, ev *domain.NodeEvent) {
	if e.hooks.OnNodeLeave != nil {
		e.hooks.OnNodeLeave(ctx, ev)
	}
}

func (e *Engine) emitMatch(ctx context.Context, ev *domain.MatchEvent) {
	if e.hooks.OnMatch != nil {
		e.hooks.OnMatch(ctx, ev)
	}
}

func (e *Engine) emitFallback(ctx context.Context, ev *domain.NodeEvent) {
	if e.hooks.OnFallback != nil {
		e.hooks.OnFallback(ctx, ev)
	}
}
