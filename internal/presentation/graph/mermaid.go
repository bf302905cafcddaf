package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// Overlay contains dynamic state to visualize on top of the static graph.
type Overlay struct {
	CurrentNode domain.NodeID
	HasCurrent  bool
}

// GenerateMermaid produces Mermaid flowchart syntax for a dialogue graph.
// The root node is drawn as a circle, leaves (no outgoing edges) as stadium
// shapes, everything else as rectangles. Edge labels list the trigger
// keywords.
func GenerateMermaid(g *domain.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, id := range g.NodeIDs() {
		opener, closer := "[", "]"
		switch {
		case id == g.Root():
			opener, closer = "((", "))"
		case len(g.Outgoing(id)) == 0:
			opener, closer = "([", "])"
		}

		label := nodeLabel(g, id)
		sb.WriteString(fmt.Sprintf("    n%d%s\"%s\"%s\n", id, opener, label, closer))

		for _, e := range g.Outgoing(id) {
			keywords := strings.Join(e.Keywords, " / ")
			// Escape double quotes for Mermaid edge labels
			keywords = strings.ReplaceAll(keywords, "\"", "'")
			sb.WriteString(fmt.Sprintf("    n%d -- \"%s\" --> n%d\n", e.Parent, keywords, e.Child))
		}
	}

	if overlay != nil && overlay.HasCurrent {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class n%d current;\n", overlay.CurrentNode))
	}

	return sb.String()
}

// nodeLabel shows the node ID plus a truncated preview of its first answer.
func nodeLabel(g *domain.Graph, id domain.NodeID) string {
	answers := g.Answers(id)
	if len(answers) == 0 {
		return fmt.Sprintf("%d", id)
	}

	preview := answers[0]
	if len(preview) > 24 {
		preview = preview[:24] + "..."
	}
	preview = strings.ReplaceAll(preview, "\"", "'")
	return fmt.Sprintf("%d: %s", id, preview)
}
