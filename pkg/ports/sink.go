package ports

// OutputSink receives the answer chosen for each user message. It is the
// boundary between the traversal core and whatever user-facing surface
// (terminal, HTTP response, MCP result) displays the conversation.
type OutputSink interface {
	Deliver(text string) error
}

// SinkFunc adapts a plain function to the OutputSink interface.
type SinkFunc func(text string) error

// Deliver implements OutputSink.
func (f SinkFunc) Deliver(text string) error {
	return f(text)
}
