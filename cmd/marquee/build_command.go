package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/build"
	"marquee/internal/textutil"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Download the IMDb dumps and build the movie dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			builder, err := build.New(cfg, logger)
			if err != nil {
				return err
			}

			result, err := builder.Run(cmd.Context(), force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.FromCache {
				fmt.Fprintf(out, "Using cached dataset at %s (pass --force to rebuild)\n", result.ArtifactPath)
				return nil
			}
			fmt.Fprintf(out, "Built %s movies into %s in %s\n",
				textutil.Count(result.Rows), result.ArtifactPath, result.Elapsed.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Rebuild even when a cached dataset exists")
	return cmd
}
