package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor is a fuzzy keyword-routed dialogue graph engine",
	Long:  `Arbor runs chatbot conversations over a dialogue graph defined in a YAML script, routing free-text input along the edge whose keyword best matches it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("script", "dialogue.yaml", "Path to the dialogue script")
}
