package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTopicCmd(envFile *string) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "topic <index>...",
		Short: "Print the topic for one or more indices",
		Long:  "Prints the topic string each index maps to. Nothing is generated and the cursor is not touched.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, *envFile, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				start, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid index %q: %w", arg, err)
				}
				for i := 0; i < count; i++ {
					idx := start + uint64(i)
					fmt.Fprintf(out, "%d\t%s\n", idx, a.space.Topic(idx))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "print this many consecutive topics from each index")
	return cmd
}

func newSpaceCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "space",
		Short: "Show the size of the topic space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, *envFile, false)
			if err != nil {
				return err
			}
			s := a.space
			combo, modules := s.Size()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "actions:          %d\n", len(s.Actions))
			fmt.Fprintf(out, "domains:          %d\n", len(s.Domains))
			fmt.Fprintf(out, "concepts:         %d\n", len(s.Concepts))
			fmt.Fprintf(out, "libraries:        %d\n", len(s.Libraries))
			fmt.Fprintf(out, "advanced:         %d\n", len(s.Advanced))
			fmt.Fprintf(out, "templates:        %d\n", len(s.Templates))
			fmt.Fprintf(out, "modules:          %d\n", len(s.Modules))
			fmt.Fprintf(out, "module templates: %d\n", len(s.ModuleTemplates))
			fmt.Fprintf(out, "combo topics:     %d\n", combo)
			fmt.Fprintf(out, "module topics:    %d\n", modules)
			return nil
		},
	}
}
