package testsupport

import (
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"testing"
)

// DatasetServer serves gzip-compressed TSV bodies keyed by request
// path, e.g. "/title.basics.tsv.gz". Unknown paths return 404. The
// server is closed automatically when the test finishes.
func DatasetServer(t testing.TB, dumps map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := dumps[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/gzip")
		gz := gzip.NewWriter(w)
		if _, err := gz.Write([]byte(content)); err != nil {
			t.Errorf("compress %s: %v", r.URL.Path, err)
			return
		}
		if err := gz.Close(); err != nil {
			t.Errorf("finish %s: %v", r.URL.Path, err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}
