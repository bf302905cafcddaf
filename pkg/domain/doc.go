/*
Package domain contains the core domain model for the Arbor engine.

It defines the dialogue graph: an arena of nodes addressed by stable numeric
IDs, where each node owns an ordered list of outgoing edges and every edge
carries the trigger keywords that route free-text input towards its target.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Graph: The arena holding all nodes and the edge relations between them.
  - Edge: A directed transition carrying an ordered set of trigger keywords.
  - NodeID: A stable numeric handle into the arena. Cursors and edge
    endpoints are handles, never owning references, so cyclic conversations
    need no cycle-breaking.
*/
package domain
