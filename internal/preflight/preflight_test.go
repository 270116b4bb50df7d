package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
)

func stubStatfs(t *testing.T, total, free uint64) {
	t.Helper()
	orig := statfs
	statfs = func(string) (uint64, uint64, error) {
		return total, free, nil
	}
	t.Cleanup(func() { statfs = orig })
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDiskSpace_Enough(t *testing.T) {
	stubStatfs(t, 100<<30, 50<<30)
	result := CheckDiskSpace("test", t.TempDir(), 2<<30)
	if !result.Passed {
		t.Fatalf("expected pass with 50 GiB free, got: %s", result.Detail)
	}
}

func TestCheckDiskSpace_Full(t *testing.T) {
	stubStatfs(t, 100<<30, 1<<20)
	result := CheckDiskSpace("test", t.TempDir(), 2<<30)
	if result.Passed {
		t.Fatal("expected failure with 1 MiB free")
	}
	if !strings.Contains(result.Detail, "free") {
		t.Fatalf("detail should describe free space: %s", result.Detail)
	}
}

func TestCheckSource_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "title.ratings.tsv.gz") {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := CheckSource(context.Background(), srv.URL)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result := CheckSource(context.Background(), srv.URL)
	if result.Passed {
		t.Fatal("expected failure for 404 endpoint")
	}
}

func TestCheckSource_MissingURL(t *testing.T) {
	result := CheckSource(context.Background(), "  ")
	if result.Passed {
		t.Fatal("expected failure for empty base url")
	}
}

func TestRunAllHealthyEnvironment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	stubStatfs(t, 100<<30, 50<<30)

	cacheDir := t.TempDir()
	cfg := &config.Config{}
	cfg.Source.BaseURL = srv.URL
	cfg.Cache.Dir = cacheDir
	cfg.Catalog.Enabled = true
	cfg.Catalog.Path = filepath.Join(cacheDir, "catalog.db")

	results := RunAll(context.Background(), cfg)
	if len(results) == 0 {
		t.Fatal("expected checks to run")
	}
	if failed := Failures(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, failures: %+v", failed)
	}
}

func TestRunAllReportsBrokenEnvironment(t *testing.T) {
	stubStatfs(t, 100<<30, 1<<20)

	cfg := &config.Config{}
	cfg.Source.BaseURL = ""
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "missing")

	failed := Failures(RunAll(context.Background(), cfg))
	if len(failed) != 3 {
		t.Fatalf("expected 3 failures (dir, disk, source), got %d: %+v", len(failed), failed)
	}
}

func TestProbeArtifact(t *testing.T) {
	missing := ProbeArtifact(filepath.Join(t.TempDir(), "movies.csv"))
	if missing.Present {
		t.Fatal("expected absent artifact")
	}
	if missing.Detail() != "No cached artifact" {
		t.Fatalf("unexpected detail: %s", missing.Detail())
	}

	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte("header\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	present := ProbeArtifact(path)
	if !present.Present || present.Bytes == 0 {
		t.Fatalf("expected present artifact, got %+v", present)
	}
	if !strings.Contains(present.Detail(), path) {
		t.Fatalf("detail should include path: %s", present.Detail())
	}
}
