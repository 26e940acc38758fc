package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var (
		envFile string
		index   int64
	)

	cmd := &cobra.Command{
		Use:   "topicrun",
		Short: "Walk a topic space through a local model",
		Long: "topicrun maps a persisted cursor onto a large combinatorial space of topics, " +
			"asks a local text-generation model about the next one, and saves the answer as JSON.\n\n" +
			"Without a subcommand it performs a single run.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, envFile, index)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().Int64Var(&index, "index", 0, "run this topic index without touching the cursor")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd(&envFile))
	cmd.AddCommand(newTopicCmd(&envFile))
	cmd.AddCommand(newSpaceCmd(&envFile))
	cmd.AddCommand(newCursorCmd(&envFile))
	cmd.AddCommand(newHistoryCmd(&envFile))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "topicrun %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
