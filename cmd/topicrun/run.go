package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zulandar/topicrun/internal/pipeline"
)

func newRunCmd(envFile *string) *cobra.Command {
	var index int64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Request the next topic and save the model's answer",
		Long: "Reads the cursor, asks the generation command about the matching topic, writes one JSON record " +
			"to OUTPUT_DIR and advances the cursor by one. A failing generation command is recorded, not fatal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, *envFile, index)
		},
	}

	cmd.Flags().Int64Var(&index, "index", 0, "run this topic index without touching the cursor")
	return cmd
}

func runOnce(cmd *cobra.Command, envFile string, index int64) error {
	var opts pipeline.Opts
	if cmd.Flags().Changed("index") {
		if index < 0 {
			return fmt.Errorf("--index must be >= 0, got %d", index)
		}
		idx := uint64(index)
		opts.Index = &idx
	}

	a, err := loadApp(cmd, envFile, true)
	if err != nil {
		return err
	}
	r, err := a.runner()
	if err != nil {
		return err
	}

	res, err := r.Run(cmd.Context(), opts)
	if err != nil {
		a.log.Error().Err(err).Msg("run failed")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", res.Path)
	return nil
}
