package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/imdb"
	"marquee/internal/table"
	"marquee/internal/textutil"
)

const (
	previewTitleWidth = 40
	previewListWidth  = 30
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the first rows of the cached dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			artifactPath := cfg.ArtifactPath()
			movies, err := table.ReadFile(artifactPath)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("no cached dataset at %s (run 'marquee build' first)", artifactPath)
				}
				return err
			}

			shown := movies
			if rows > 0 && rows < len(movies) {
				shown = movies[:rows]
			}

			out := cmd.OutOrStdout()
			if len(shown) == 0 {
				fmt.Fprintln(out, "Dataset is empty")
				return nil
			}

			headers := []string{"Title", "Year", "Runtime", "Rating", "Votes", "Genres", "Directors"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft}
			tableRows := make([][]string, 0, len(shown))
			for _, m := range shown {
				tableRows = append(tableRows, previewRow(m))
			}

			fmt.Fprintln(out, renderTable(headers, tableRows, aligns))
			fmt.Fprintf(out, "Showing %s of %s rows\n", textutil.Count(len(shown)), textutil.Count(len(movies)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to show (0 for all)")
	return cmd
}

func previewRow(m imdb.Movie) []string {
	year := ""
	if m.StartYear != nil {
		year = strconv.Itoa(int(*m.StartYear))
	}
	runtime := ""
	if m.RuntimeMinutes != nil {
		runtime = fmt.Sprintf("%d min", *m.RuntimeMinutes)
	}
	rating := ""
	if m.AverageRating != nil {
		rating = strconv.FormatFloat(float64(*m.AverageRating), 'f', 1, 32)
	}
	votes := ""
	if m.NumVotes != nil {
		votes = textutil.Count(int(*m.NumVotes))
	}
	return []string{
		truncateCell(m.PrimaryTitle, previewTitleWidth),
		year,
		runtime,
		rating,
		votes,
		truncateCell(derefOrEmpty(m.Genres), previewListWidth),
		truncateCell(derefOrEmpty(m.Directors), previewListWidth),
	}
}
