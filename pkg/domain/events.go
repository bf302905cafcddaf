package domain

import "context"

// NodeEvent represents the cursor entering or leaving a node.
type NodeEvent struct {
	NodeID  NodeID `json:"node_id"`
	Answers int    `json:"answers"`
}

// MatchEvent represents the winning (edge, keyword) pair for one message.
type MatchEvent struct {
	NodeID   NodeID `json:"node_id"`
	Input    string `json:"input"`
	Keyword  string `json:"keyword"`
	Distance int    `json:"distance"`
	Target   NodeID `json:"target"`
}

// LifecycleHooks defines callbacks for engine observability. Nil hooks are
// skipped; hooks must not block, they run inline with message handling.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnNodeLeave func(context.Context, *NodeEvent)
	OnMatch     func(context.Context, *MatchEvent)
	OnFallback  func(context.Context, *NodeEvent)
}
