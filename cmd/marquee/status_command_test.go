package main

import (
	"testing"
)

func TestStatusBeforeFirstBuild(t *testing.T) {
	env := setupCLITestEnv(t, sampleDumps())

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "== Environment ==")
	requireContains(t, out, "== Dataset ==")
	requireContains(t, out, "No cached artifact")
	requireContains(t, out, "No successful build recorded")
}

func TestStatusAfterBuild(t *testing.T) {
	env := setupCLITestEnv(t, sampleDumps())

	if _, _, err := runCLI(t, []string{"build"}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}
	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[OK]")
	requireContains(t, out, env.cfg.ArtifactPath())
	requireContains(t, out, "Last success")
	requireContains(t, out, "Rows:")
}
