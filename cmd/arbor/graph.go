package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the dialogue graph visualization",
	Long:  `Loads the script and outputs a Mermaid diagram (graph TD) of the conversation flow.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if !cmd.Flags().Changed("script") && len(args) > 0 {
			scriptPath = args[0]
		}

		engine, err := arbor.New(scriptPath)
		if err != nil {
			fmt.Printf("Error initializing arbor: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(engine.Graph(), nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
