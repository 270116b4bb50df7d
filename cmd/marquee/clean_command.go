package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var removeCatalog bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete the cached dataset so the next build starts fresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			artifactPath := cfg.ArtifactPath()
			switch err := os.Remove(artifactPath); {
			case err == nil:
				fmt.Fprintf(out, "Removed %s\n", artifactPath)
			case errors.Is(err, fs.ErrNotExist):
				fmt.Fprintln(out, "No cached dataset to remove")
			default:
				return fmt.Errorf("remove dataset: %w", err)
			}

			if !removeCatalog {
				return nil
			}

			removed := false
			// SQLite in WAL mode leaves sidecar files next to the database.
			for _, path := range []string{cfg.Catalog.Path, cfg.Catalog.Path + "-wal", cfg.Catalog.Path + "-shm"} {
				switch err := os.Remove(path); {
				case err == nil:
					removed = true
				case errors.Is(err, fs.ErrNotExist):
				default:
					return fmt.Errorf("remove catalog: %w", err)
				}
			}
			if removed {
				fmt.Fprintf(out, "Removed catalog at %s\n", cfg.Catalog.Path)
			} else {
				fmt.Fprintln(out, "No catalog to remove")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&removeCatalog, "catalog", false, "Also delete the build history database")
	return cmd
}
