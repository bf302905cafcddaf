// Package http exposes a single-conversation chat API over HTTP.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
)

// Engine defines the interface the server needs from the Arbor core.
type Engine interface {
	ReceiveMessage(ctx context.Context, input string) (string, error)
	Greet(ctx context.Context) (string, error)
	CurrentNode() domain.NodeID
	Reset()
	Graph() *domain.Graph
}

// Server wraps one engine instance. The engine models a single conversation
// cursor, so message handling is serialized with a mutex rather than
// multiplexed across sessions.
type Server struct {
	engine Engine
	logger *slog.Logger
	mu     sync.Mutex
}

// MessageRequest is the body of POST /message.
type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse is the reply payload for /message, /greet and /reset.
type MessageResponse struct {
	Reply string `json:"reply,omitempty"`
	Node  int    `json:"node"`
}

// NewHandler creates the HTTP handler for the engine. If metrics is
// non-nil it is mounted at /metrics.
func NewHandler(engine Engine, logger *slog.Logger, metrics http.Handler) http.Handler {
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.Healthz)
	r.Get("/graph", s.Graph)
	r.Post("/greet", s.Greet)
	r.Post("/message", s.Message)
	r.Post("/reset", s.Reset)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	return r
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Graph handles GET /graph: the dialogue graph as a Mermaid diagram, with
// the current node highlighted.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	overlay := &graph.Overlay{CurrentNode: s.engine.CurrentNode(), HasCurrent: true}
	diagram := graph.GenerateMermaid(s.engine.Graph(), overlay)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, diagram)
}

// Greet handles POST /greet: emits the current node's greeting without
// advancing the conversation.
func (s *Server) Greet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	reply, err := s.engine.Greet(r.Context())
	node := int(s.engine.CurrentNode())
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("greet failed", "error", err)
		http.Error(w, fmt.Sprintf("greet error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, MessageResponse{Reply: reply, Node: node})
}

// Message handles POST /message: routes one user message and returns the
// selected answer plus the node the cursor moved to.
func (s *Server) Message(w http.ResponseWriter, r *http.Request) {
	var body MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Text == "" {
		http.Error(w, "Field 'text' is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	reply, err := s.engine.ReceiveMessage(r.Context(), body.Text)
	node := int(s.engine.CurrentNode())
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("message failed", "error", err, "node", node)
		http.Error(w, fmt.Sprintf("message error: %v", err), http.StatusInternalServerError)
		return
	}

	s.logger.Debug("message handled", "node", node)
	writeJSON(w, MessageResponse{Reply: reply, Node: node})
}

// Reset handles POST /reset: moves the cursor back to the root node.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.engine.Reset()
	node := int(s.engine.CurrentNode())
	s.mu.Unlock()

	writeJSON(w, MessageResponse{Node: node})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
