package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose      bool
	modeFile     string
	conversation string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stancectl",
	Short: "stancectl - stance transformation engine CLI",
	Long: `stancectl drives a conversational agent whose persona configuration
(its stance) evolves turn by turn: triggers detected in the conversation
select transformation operators, operators shift the stance under drift
limits, and every response is scored for transformation, coherence, and
sentience.

Run without arguments to start an interactive chat session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

// chatCmd starts the interactive session explicitly
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Starts a REPL against the configured completion endpoint. Each turn
runs the full pipeline: trigger detection, operator planning, stance
application, prompt assembly, completion, and scoring.

In-session commands:
  :stance    print the current stance as JSON
  :snapshot  persist the current stance
  quit       end the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

// inspectCmd reads the persistence layer
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect stored snapshots and turn history",
	RunE:  runInspect,
}

// replayCmd re-runs a recorded conversation
var replayCmd = &cobra.Command{
	Use:   "replay [fixture.json]",
	Short: "Replay a recorded conversation deterministically",
	Long: `Re-runs a recorded conversation through detection, planning, stance
application, and scoring with a fixed random seed, then prints per-turn
results and a summary. No store or completion endpoint is touched.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&modeFile, "mode", "", "path to a mode preset YAML (overrides MODE_FILE)")
	rootCmd.PersistentFlags().StringVar(&conversation, "conversation", "", "conversation id (default: new random id)")

	inspectCmd.Flags().Int("last", 20, "show N most recent rows")
	inspectCmd.Flags().Bool("json", false, "output as JSON instead of tables")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
