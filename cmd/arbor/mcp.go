package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor"
	mcpAdapter "github.com/aretw0/arbor/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the dialogue engine as Model Context Protocol tools (send_message, greet, reset_conversation, get_graph) over stdin/stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")

		engine, err := arbor.New(scriptPath)
		if err != nil {
			fmt.Printf("Error initializing arbor: %v\n", err)
			os.Exit(1)
		}

		server := mcpAdapter.NewServer(engine, arbor.Version)
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
