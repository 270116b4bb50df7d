package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
	"marquee/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

// setupCLITestEnv writes a config file pointing the source at a stub
// dataset server and the cache at a temp directory. Log level error keeps
// build output quiet during tests.
func setupCLITestEnv(t *testing.T, dumps map[string]string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	server := testsupport.DatasetServer(t, dumps)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.URL))
	cfg.Logging.Level = "error"

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[source]\nbase_url = %q\n\n[cache]\ndir = %q\n\n[catalog]\nenabled = %t\npath = %q\n\n[logging]\nlevel = %q\n",
		cfg.Source.BaseURL,
		cfg.Cache.Dir,
		cfg.Catalog.Enabled,
		cfg.Catalog.Path,
		cfg.Logging.Level,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func tsv(rows ...[]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// sampleDumps returns a dataset with one qualifying movie and one title
// filtered out by type.
func sampleDumps() map[string]string {
	basics := tsv(
		[]string{"tconst", "titleType", "primaryTitle", "originalTitle", "isAdult", "startYear", "endYear", "runtimeMinutes", "genres"},
		[]string{"tt0000001", "movie", "Midnight Run", "Midnight Run", "0", "1988", `\N`, "126", "Action,Comedy"},
		[]string{"tt0000002", "tvSeries", "Beat Nightly", "Beat Nightly", "0", "1990", `\N`, "30", "Talk-Show"},
	)
	ratings := tsv(
		[]string{"tconst", "averageRating", "numVotes"},
		[]string{"tt0000001", "7.5", "50000"},
		[]string{"tt0000002", "8.0", "12000"},
	)
	crew := tsv(
		[]string{"tconst", "directors", "writers"},
		[]string{"tt0000001", "nm0000001", "nm0000002"},
	)
	people := tsv(
		[]string{"nconst", "primaryName"},
		[]string{"nm0000001", "Martin Brest"},
		[]string{"nm0000002", "George Gallo"},
	)
	return map[string]string{
		"/title.basics.tsv.gz":  basics,
		"/title.ratings.tsv.gz": ratings,
		"/title.crew.tsv.gz":    crew,
		"/name.basics.tsv.gz":   people,
	}
}
