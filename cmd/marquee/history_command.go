package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/textutil"
)

const historyErrorWidth = 48

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded build runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cfg.Catalog.Enabled {
				fmt.Fprintln(out, "Catalog is disabled in configuration")
				return nil
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list build runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No build runs recorded")
				return nil
			}

			headers := []string{"Started", "Status", "Rows", "Duration", "Forced", "Detail"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, historyRow(run))
			}

			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")
	return cmd
}

func historyRow(run *catalog.Run) []string {
	rowCount := ""
	if run.RowCount != nil {
		rowCount = textutil.Count64(*run.RowCount)
	}
	duration := ""
	if run.FinishedAt != nil {
		duration = run.Duration().Round(roundDisplay).String()
	}
	detail := ""
	if run.ErrorMessage != nil {
		detail = truncateCell(*run.ErrorMessage, historyErrorWidth)
	}
	return []string{
		formatStamp(run.StartedAt),
		string(run.Status),
		rowCount,
		duration,
		yesNo(run.Forced),
		detail,
	}
}
