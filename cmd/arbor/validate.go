package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dialogue graph for consistency",
	Long:  `Loads the script and crawls the graph from the root node, reporting unreachable nodes, answerless nodes and edges without keywords. Structural defects (dangling edges, missing root) are already rejected at load time.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if !cmd.Flags().Changed("script") && len(args) > 0 {
			scriptPath = args[0]
		}

		if err := runValidate(scriptPath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Dialogue graph is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(scriptPath string) error {
	eng, err := arbor.New(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	return validator.ValidateGraph(eng.Graph())
}
