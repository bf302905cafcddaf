// Package mcp exposes the Arbor engine as a Model Context Protocol server,
// so agent hosts can hold a conversation with the dialogue graph as a tool.
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
)

// Engine defines the interface the MCP server needs from the Arbor core.
type Engine interface {
	ReceiveMessage(ctx context.Context, input string) (string, error)
	Greet(ctx context.Context) (string, error)
	CurrentNode() domain.NodeID
	Reset()
	Graph() *domain.Graph
}

// Server wraps the Arbor Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	mu        sync.Mutex
}

// sendMessageArgs is the decoded argument set of the send_message tool.
type sendMessageArgs struct {
	Text string `mapstructure:"text"`
}

// NewServer creates a new MCP Server instance for the given engine.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("arbor-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: send_message
	s.mcpServer.AddTool(mcp.NewTool("send_message",
		mcp.WithDescription("Send a chat message to the dialogue engine and receive the bot's answer."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The user message to route through the dialogue graph")),
	), s.handleSendMessage)

	// TOOL: greet
	s.mcpServer.AddTool(mcp.NewTool("greet",
		mcp.WithDescription("Get the greeting of the current dialogue node without advancing the conversation."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		reply, err := s.engine.Greet(ctx)
		s.mu.Unlock()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("greet failed: %v", err)), nil
		}
		return mcp.NewToolResultText(reply), nil
	})

	// TOOL: reset_conversation
	s.mcpServer.AddTool(mcp.NewTool("reset_conversation",
		mcp.WithDescription("Move the conversation cursor back to the root node."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		s.engine.Reset()
		node := s.engine.CurrentNode()
		s.mu.Unlock()
		return mcp.NewToolResultText(fmt.Sprintf("conversation reset to node %d", node)), nil
	})

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the dialogue graph as a Mermaid diagram for introspection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		diagram := graph.GenerateMermaid(s.engine.Graph(), &graph.Overlay{
			CurrentNode: s.engine.CurrentNode(),
			HasCurrent:  true,
		})
		s.mu.Unlock()
		return mcp.NewToolResultText(diagram), nil
	})
}

func (s *Server) handleSendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args sendMessageArgs
	if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Text == "" {
		return mcp.NewToolResultError("argument 'text' is required"), nil
	}

	s.mu.Lock()
	reply, err := s.engine.ReceiveMessage(ctx, args.Text)
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("message failed: %v", err)), nil
	}
	return mcp.NewToolResultText(reply), nil
}
