/*
Package arbor is a dialogue graph engine that routes free-text user input
through a fixed conversation graph using fuzzy keyword matching.

Each node in the graph holds one or more candidate answers; each directed
edge carries trigger keywords and leads to a successor node. For every user
message the engine scores all keywords of the current node's outgoing edges
by Levenshtein edit distance, follows the best-matching edge, and replies
with one of the target node's answers. A node without outgoing edges sends
the conversation back to the root node.

# Concept

Arbor separates the dialogue graph (data) from the traversal engine (the
single conversation cursor) and the output surface (terminal, HTTP, MCP).
The core is deterministic apart from answer selection, which draws from an
injectable randomness source so tests can pin the full conversation.

# Usage

Load a YAML dialogue script and run an interactive session:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/arbor"
	)

	func main() {
		eng, err := arbor.New("dialogue.yaml")
		if err != nil {
			log.Fatal(err)
		}

		runner := arbor.NewRunner(os.Stdin, os.Stdout)
		if err := runner.Run(context.Background(), eng); err != nil {
			log.Fatal(err)
		}
	}

Or drive the engine directly:

	reply, err := eng.ReceiveMessage(ctx, "tell me about pizza")
*/
package arbor
