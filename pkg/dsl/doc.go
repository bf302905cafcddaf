/*
Package dsl provides a fluent builder for constructing dialogue graphs in
Go code, without a script file.

	b := dsl.New()
	b.Node(0).
		Answer("Hello! Ask me about pizza or pasta.").
		Edge(1, "pizza").
		Edge(2, "pasta")
	b.Node(1).Answer("Margherita, always.")
	b.Node(2).Answer("Carbonara, no cream.")

	loader, err := b.Loader()

The builder preserves declaration order for nodes, answers, edges, and
keywords, which the engine relies on for stable tie-breaking.
*/
package dsl
