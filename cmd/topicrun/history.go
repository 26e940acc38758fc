package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/topicrun/internal/ledger"
	"github.com/zulandar/topicrun/internal/logging"
	"github.com/zulandar/topicrun/internal/pipeline"
	"github.com/zulandar/topicrun/internal/record"
)

// historyRow is one line of history output, from either source.
type historyRow struct {
	When   string
	Index  uint64
	Model  string
	Status string
	Topic  string
}

func newHistoryCmd(envFile *string) *cobra.Command {
	var (
		lines int
		model string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs",
		Long: "Lists recent runs, newest first. Reads the run ledger when TOPICRUN_DB_DRIVER is set, " +
			"otherwise scans the record files in OUTPUT_DIR.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, *envFile, true)
			if err != nil {
				return err
			}
			var rows []historyRow
			if a.db != nil {
				rows, err = ledgerHistory(cmd, ledger.New(a.db), lines, model)
			} else {
				rows, err = fileHistory(a.cfg.OutputDir, lines, model)
			}
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "number of runs to show")
	cmd.Flags().StringVar(&model, "model", "", "only show runs for this model")
	return cmd
}

func ledgerHistory(cmd *cobra.Command, l *ledger.Ledger, limit int, model string) ([]historyRow, error) {
	runs, err := l.Recent(cmd.Context(), limit, model)
	if err != nil {
		return nil, err
	}
	rows := make([]historyRow, 0, len(runs))
	for _, r := range runs {
		status := "ok"
		switch {
		case r.InvokeError != "":
			status = "failed"
		case !r.Parsed:
			status = "unparsed"
		}
		rows = append(rows, historyRow{
			When:   r.CreatedAt.UTC().Format(record.TimestampFormat),
			Index:  r.TopicIndex,
			Model:  r.Model,
			Status: status,
			Topic:  r.Topic,
		})
	}
	return rows, nil
}

// fileHistory reads record files newest first. Files that fail to decode are
// skipped.
func fileHistory(dir string, limit int, model string) ([]historyRow, error) {
	paths, err := record.List(dir)
	if err != nil {
		return nil, err
	}
	var rows []historyRow
	for i := len(paths) - 1; i >= 0 && len(rows) < limit; i-- {
		rec, err := record.Read(paths[i])
		if err != nil {
			continue
		}
		if model != "" && rec.Model != model {
			continue
		}
		rows = append(rows, historyRow{
			When:   rec.TimestampUTC,
			Index:  rec.TopicIndex,
			Model:  rec.Model,
			Status: recordStatus(rec),
			Topic:  rec.Topic,
		})
	}
	return rows, nil
}

func recordStatus(rec *record.Record) string {
	if rec.ResponseParsed != nil {
		return "ok"
	}
	if strings.HasPrefix(rec.ResponseRaw, pipeline.InvokeErrorPrefix) {
		return "failed"
	}
	return "unparsed"
}

func printHistory(out io.Writer, rows []historyRow) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return
	}

	topicWidth := 60
	if width := logging.TerminalWidth(out); width > 0 {
		// Leave room for the fixed-width columns.
		topicWidth = max(width-len(time.RFC3339)-40, 20)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tINDEX\tMODEL\tSTATUS\tTOPIC")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.When, r.Index, r.Model, r.Status, truncate(r.Topic, topicWidth))
	}
	w.Flush()
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
