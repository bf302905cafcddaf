package arbor_test

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/dsl"
)

// ExampleNew_library demonstrates how to use Arbor purely as a Go library,
// building the dialogue graph in memory without reading a script file.
func ExampleNew_library() {
	// 1. Define the graph using the builder
	b := dsl.New()
	b.Node(0).
		Answer("Hi! Ask me about the menu.").
		Edge(1, "menu", "food")
	b.Node(1).Answer("Today we serve margherita.")

	loader, err := b.Loader()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize the Engine with the custom loader.
	// No file path needed ("") because we are providing a loader.
	// The fixed seed makes answer selection reproducible.
	eng, err := arbor.New("",
		arbor.WithLoader(loader),
		arbor.WithRand(rand.New(rand.NewSource(1))),
	)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Open the conversation and route one message
	ctx := context.Background()

	greeting, err := eng.Greet(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(greeting)

	reply, err := eng.ReceiveMessage(ctx, "menu")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply)

	// Output:
	// Hi! Ask me about the menu.
	// Today we serve margherita.
}
