package imdb_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marquee/internal/imdb"
	"marquee/internal/tsv"
)

func gzipBody(t *testing.T, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatalf("write gzip body: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	return buf.Bytes()
}

func newDumpServer(t *testing.T, dumps map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := dumps[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(gzipBody(t, content))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := imdb.New("  ", time.Minute); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestNewRejectsNonHTTPScheme(t *testing.T) {
	if _, err := imdb.New("ftp://datasets.example.com", time.Minute); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}

func TestTitleBasicsDecodesTypedColumns(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/title.basics.tsv.gz": "tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres\n" +
			"tt0000001\tmovie\tMetropolis\tMetropolis\t0\t1927\t\\N\t153\tDrama,Sci-Fi\n" +
			"tt0000002\tshort\tCarmencita\tCarmencita\t0\t\\N\t\\N\t\\N\t\\N\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	titles, err := client.TitleBasics(context.Background())
	if err != nil {
		t.Fatalf("TitleBasics returned error: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("unexpected title count: got %d want 2", len(titles))
	}

	first := titles[0]
	if first.Tconst != "tt0000001" {
		t.Errorf("unexpected tconst: %q", first.Tconst)
	}
	if first.StartYear == nil || *first.StartYear != 1927 {
		t.Errorf("unexpected startYear: %v", first.StartYear)
	}
	if first.RuntimeMinutes == nil || *first.RuntimeMinutes != 153 {
		t.Errorf("unexpected runtimeMinutes: %v", first.RuntimeMinutes)
	}
	if first.IsAdult == nil || *first.IsAdult {
		t.Errorf("unexpected isAdult: %v", first.IsAdult)
	}
	if first.EndYear != nil {
		t.Errorf("endYear should be null, got %d", *first.EndYear)
	}

	second := titles[1]
	if second.StartYear != nil || second.RuntimeMinutes != nil || second.Genres != nil {
		t.Errorf("null columns should decode to nil: %+v", second)
	}
}

func TestTitleRatingsDecodesFloats(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/title.ratings.tsv.gz": "tconst\taverageRating\tnumVotes\n" +
			"tt0000001\t8.3\t176000\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ratings, err := client.TitleRatings(context.Background())
	if err != nil {
		t.Fatalf("TitleRatings returned error: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("unexpected rating count: got %d want 1", len(ratings))
	}
	if ratings[0].AverageRating == nil || *ratings[0].AverageRating != 8.3 {
		t.Errorf("unexpected averageRating: %v", ratings[0].AverageRating)
	}
	if ratings[0].NumVotes == nil || *ratings[0].NumVotes != 176000 {
		t.Errorf("unexpected numVotes: %v", ratings[0].NumVotes)
	}
}

func TestTitleCrewKeepsNullLists(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/title.crew.tsv.gz": "tconst\tdirectors\twriters\n" +
			"tt0000001\tnm0000001,nm0000002\t\\N\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	crews, err := client.TitleCrew(context.Background())
	if err != nil {
		t.Fatalf("TitleCrew returned error: %v", err)
	}
	if len(crews) != 1 {
		t.Fatalf("unexpected crew count: got %d want 1", len(crews))
	}
	if crews[0].Directors == nil || *crews[0].Directors != "nm0000001,nm0000002" {
		t.Errorf("unexpected directors: %v", crews[0].Directors)
	}
	if crews[0].Writers != nil {
		t.Errorf("writers should be null, got %q", *crews[0].Writers)
	}
}

func TestFetchMissingDatasetIsTransportError(t *testing.T) {
	server := newDumpServer(t, map[string]string{})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.TitleBasics(context.Background())
	var transportErr *imdb.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *imdb.TransportError, got %v", err)
	}
	if transportErr.Dataset != imdb.DatasetTitleBasics {
		t.Errorf("unexpected dataset in error: %q", transportErr.Dataset)
	}
}

func TestFetchCorruptArchiveIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not gzip"))
	}))
	t.Cleanup(server.Close)

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.TitleRatings(context.Background())
	var transportErr *imdb.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *imdb.TransportError, got %v", err)
	}
}

func TestFetchRaggedDumpIsParseError(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/title.ratings.tsv.gz": "tconst\taverageRating\tnumVotes\n" +
			"tt0000001\t8.3\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.TitleRatings(context.Background())
	var parseErr *tsv.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *tsv.ParseError, got %v", err)
	}
	var transportErr *imdb.TransportError
	if errors.As(err, &transportErr) {
		t.Fatal("parse failures must not be classified as transport errors")
	}
}

func TestPeopleChunksBoundsBatches(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/name.basics.tsv.gz": "nconst\tprimaryName\tbirthYear\n" +
			"nm1\tAnn\t\\N\n" +
			"nm2\tBob\t\\N\n" +
			"nm3\tCid\t\\N\n" +
			"nm4\tDee\t\\N\n" +
			"nm5\tEve\t\\N\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var sizes []int
	var names []string
	for chunk, err := range client.PeopleChunks(context.Background(), 2) {
		if err != nil {
			t.Fatalf("PeopleChunks yielded error: %v", err)
		}
		sizes = append(sizes, len(chunk))
		for _, person := range chunk {
			if person.PrimaryName == nil {
				t.Fatalf("person %s missing name", person.Nconst)
			}
			names = append(names, *person.PrimaryName)
		}
	}

	if len(sizes) != 3 || sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 1 {
		t.Fatalf("unexpected chunk sizes: %v", sizes)
	}
	want := []string{"Ann", "Bob", "Cid", "Dee", "Eve"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("unexpected name order: got %v want %v", names, want)
		}
	}
}

func TestPeopleChunksEarlyBreakStopsStream(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/name.basics.tsv.gz": "nconst\tprimaryName\n" +
			"nm1\tAnn\n" +
			"nm2\tBob\n" +
			"nm3\tCid\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	chunks := 0
	for _, err := range client.PeopleChunks(context.Background(), 1) {
		if err != nil {
			t.Fatalf("PeopleChunks yielded error: %v", err)
		}
		chunks++
		if chunks == 1 {
			break
		}
	}
	if chunks != 1 {
		t.Fatalf("expected exactly one chunk after break, got %d", chunks)
	}
}

func TestPeopleChunksSkipsNullIdentifiers(t *testing.T) {
	server := newDumpServer(t, map[string]string{
		"/name.basics.tsv.gz": "nconst\tprimaryName\n" +
			"\\N\tGhost\n" +
			"nm2\tBob\n",
	})

	client, err := imdb.New(server.URL, time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var people []imdb.Person
	for chunk, err := range client.PeopleChunks(context.Background(), 10) {
		if err != nil {
			t.Fatalf("PeopleChunks yielded error: %v", err)
		}
		people = append(people, chunk...)
	}
	if len(people) != 1 || people[0].Nconst != "nm2" {
		t.Fatalf("expected null-keyed row to be dropped, got %+v", people)
	}
}
