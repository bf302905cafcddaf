package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive chat session",
	Long:  `Starts the Arbor engine in interactive mode with the dialogue script loaded from --script.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if !cmd.Flags().Changed("script") && len(args) > 0 {
			scriptPath = args[0]
		}
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")

		if err := runSession(scriptPath, debug, plain); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("debug", false, "Log engine internals to stderr")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering of answers")

	// Make 'run' the default if no subcommand is provided
	rootCmd.Run = runCmd.Run
}

func runSession(scriptPath string, debug, plain bool) error {
	if !plain {
		tui.PrintBanner(arbor.Version)
	}

	logger := logging.NewNop()
	if debug {
		logger = logging.New(slog.LevelDebug)
	}

	opts := []arbor.Option{arbor.WithLogger(logger)}
	if debug {
		opts = append(opts, arbor.WithLifecycleHooks(debugHooks(logger)))
	}

	engine, err := arbor.New(scriptPath, opts...)
	if err != nil {
		return fmt.Errorf("error initializing arbor: %w", err)
	}

	runner := arbor.NewRunner(os.Stdin, os.Stdout)
	if !plain {
		runner.Renderer = tui.NewRenderer()
	}

	return runner.Run(context.Background(), engine)
}

func debugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Enter Node", "node", e.NodeID, "answers", e.Answers)
		},
		OnMatch: func(ctx context.Context, e *domain.MatchEvent) {
			logger.Debug("Keyword Match", "keyword", e.Keyword, "distance", e.Distance, "target", e.Target)
		},
		OnFallback: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Leaf Fallback", "node", e.NodeID)
		},
	}
}
