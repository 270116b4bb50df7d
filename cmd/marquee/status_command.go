package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/preflight"
	"marquee/internal/textutil"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show environment checks, the cached dataset, and the last build",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, result := range preflight.RunAll(cmd.Context(), cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(stdout, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Dataset", colorize) {
				fmt.Fprintln(stdout, line)
			}
			probe := preflight.ProbeArtifact(cfg.ArtifactPath())
			artifactKind := statusInfo
			if probe.Present {
				artifactKind = statusOK
			}
			fmt.Fprintln(stdout, renderStatusLine("Artifact", artifactKind, probe.Detail(), colorize))
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Last Build", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, line := range lastBuildLines(cmd, cfg, colorize) {
				fmt.Fprintln(stdout, line)
			}
			return nil
		},
	}
}

func lastBuildLines(cmd *cobra.Command, cfg *config.Config, colorize bool) []string {
	if !cfg.Catalog.Enabled {
		return []string{renderStatusLine("Catalog", statusInfo, "Disabled in configuration", colorize)}
	}

	store, err := catalog.Open(cfg)
	if err != nil {
		return []string{renderStatusLine("Catalog", statusWarn, fmt.Sprintf("Unavailable: %v", err), colorize)}
	}
	defer store.Close()

	run, err := store.LastSuccessful(cmd.Context())
	if err != nil {
		return []string{renderStatusLine("Catalog", statusWarn, fmt.Sprintf("Query failed: %v", err), colorize)}
	}
	if run == nil {
		return []string{renderStatusLine("Last success", statusInfo, "No successful build recorded", colorize)}
	}

	lines := []string{
		renderStatusLine("Last success", statusOK, humanize.Time(run.StartedAt), colorize),
		renderStatusLine("Duration", statusInfo, run.Duration().Round(roundDisplay).String(), colorize),
	}
	if run.RowCount != nil {
		lines = append(lines, renderStatusLine("Rows", statusInfo, textutil.Count64(*run.RowCount), colorize))
	}
	if run.PeopleUnresolved != nil && *run.PeopleUnresolved > 0 {
		detail := fmt.Sprintf("%s people ids had no name entry", textutil.Count64(*run.PeopleUnresolved))
		lines = append(lines, renderStatusLine("Unresolved", statusWarn, detail, colorize))
	}
	return lines
}
