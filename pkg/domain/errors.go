package domain

import "errors"

// ErrInvalidGraph is the umbrella error for structural defects detected
// during graph construction. All specific construction errors wrap it.
var ErrInvalidGraph = errors.New("invalid graph structure")

// ErrUnknownNode is returned when an operation references a node ID that is
// not present in the arena.
var ErrUnknownNode = errors.New("unknown node")

// ErrDuplicateNode is returned when a node ID is added twice.
var ErrDuplicateNode = errors.New("duplicate node")

// ErrNoRoot is returned by Finalize when no entry node can be determined
// (every node has incoming edges and no explicit root was declared).
var ErrNoRoot = errors.New("no root node")

// ErrAmbiguousRoot is returned by Finalize when more than one node has no
// incoming edges and no explicit root was declared to break the tie.
var ErrAmbiguousRoot = errors.New("ambiguous root node")

// ErrNoAnswers is returned when answer selection lands on a node with an
// empty answer list. This is a graph-construction defect surfacing at
// message time; the engine aborts the call rather than emitting nothing.
var ErrNoAnswers = errors.New("node has no answers")

// ErrNotFinalized is returned when a graph is handed to the engine before
// Finalize resolved the root and checked structural invariants.
var ErrNotFinalized = errors.New("graph not finalized")
