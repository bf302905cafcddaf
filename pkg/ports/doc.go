/*
Package ports defines the driven ports (interfaces) for the Arbor engine.

These interfaces decouple the core traversal logic from external
implementations, allowing the engine to work with different graph sources
and output surfaces.

# Key Interfaces

  - GraphLoader: Responsible for constructing the dialogue Graph (e.g. from
    a YAML script or from memory).
  - OutputSink: Receives the answer selected for each user message.
*/
package ports
