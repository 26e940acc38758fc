package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCursorCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Inspect or move the topic cursor",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the index the next run will request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, *envFile, true)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			idx, err := store.Read(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", idx, a.space.Topic(idx))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <index>",
		Short: "Overwrite the cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			a, err := loadApp(cmd, *envFile, true)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			if err := store.Write(cmd.Context(), idx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cursor set to %d\n", idx)
			return nil
		},
	})
	return cmd
}
