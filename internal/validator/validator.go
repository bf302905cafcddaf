// Package validator checks dialogue graphs for defects beyond the
// structural invariants enforced at construction time.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// ValidateGraph crawls the graph from its root and reports problems a
// finalized graph can still have: nodes without answers, unreachable nodes,
// and edges without keywords. Returns nil when the graph is clean.
func ValidateGraph(g *domain.Graph) error {
	if !g.Finalized() {
		return domain.ErrNotFinalized
	}

	visited := make(map[domain.NodeID]bool)
	queue := []domain.NodeID{g.Root()}

	var problems []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, e := range g.Outgoing(current) {
			if len(e.Keywords) == 0 {
				problems = append(problems, fmt.Sprintf("edge %d->%d has no keywords", e.Parent, e.Child))
			}
			if !visited[e.Child] {
				queue = append(queue, e.Child)
			}
		}
	}

	for _, id := range g.NodeIDs() {
		if len(g.Answers(id)) == 0 {
			problems = append(problems, fmt.Sprintf("node %d has no answers", id))
		}
		if !visited[id] {
			problems = append(problems, fmt.Sprintf("node %d is unreachable from root %d", id, g.Root()))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}

	return nil
}
