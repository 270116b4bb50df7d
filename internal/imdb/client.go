package imdb

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marquee/internal/logging"
	"marquee/internal/tsv"
)

// Source defines the dataset operations the build pipeline consumes.
type Source interface {
	TitleBasics(ctx context.Context) ([]Title, error)
	TitleRatings(ctx context.Context) ([]Rating, error)
	TitleCrew(ctx context.Context) ([]Crew, error)
	PeopleChunks(ctx context.Context, chunkSize int) iter.Seq2[[]Person, error]
}

// Client downloads and decodes the dataset dumps.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for download progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a dataset client. timeout bounds one whole-dump download,
// connect through last byte.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("imdb base url required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse imdb base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("imdb base url %q must be http or https", baseURL)
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "imdb")
	return client, nil
}

// URL returns the download location for the dataset.
func (c *Client) URL(dataset Dataset) string {
	return c.baseURL + "/" + dataset.Filename()
}

// TitleBasics downloads the full title.basics dump.
func (c *Client) TitleBasics(ctx context.Context) ([]Title, error) {
	fetchStart := time.Now()
	body, err := c.open(ctx, DatasetTitleBasics)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	reader, err := tsv.NewReader(body, titleBasicsColumns)
	if err != nil {
		return nil, c.classify(DatasetTitleBasics, err)
	}
	var titles []Title
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, c.classify(DatasetTitleBasics, err)
		}
		id := row.String(0)
		if id == nil {
			continue
		}
		title, err := decodeTitle(*id, row)
		if err != nil {
			return nil, c.classify(DatasetTitleBasics, err)
		}
		titles = append(titles, title)
	}
	c.logFetched(DatasetTitleBasics, len(titles), time.Since(fetchStart))
	return titles, nil
}

// TitleRatings downloads the full title.ratings dump.
func (c *Client) TitleRatings(ctx context.Context) ([]Rating, error) {
	fetchStart := time.Now()
	body, err := c.open(ctx, DatasetTitleRatings)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	reader, err := tsv.NewReader(body, titleRatingsColumns)
	if err != nil {
		return nil, c.classify(DatasetTitleRatings, err)
	}
	var ratings []Rating
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, c.classify(DatasetTitleRatings, err)
		}
		id := row.String(0)
		if id == nil {
			continue
		}
		rating, err := decodeRating(*id, row)
		if err != nil {
			return nil, c.classify(DatasetTitleRatings, err)
		}
		ratings = append(ratings, rating)
	}
	c.logFetched(DatasetTitleRatings, len(ratings), time.Since(fetchStart))
	return ratings, nil
}

// TitleCrew downloads the full title.crew dump.
func (c *Client) TitleCrew(ctx context.Context) ([]Crew, error) {
	fetchStart := time.Now()
	body, err := c.open(ctx, DatasetTitleCrew)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	reader, err := tsv.NewReader(body, titleCrewColumns)
	if err != nil {
		return nil, c.classify(DatasetTitleCrew, err)
	}
	var crews []Crew
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, c.classify(DatasetTitleCrew, err)
		}
		id := row.String(0)
		if id == nil {
			continue
		}
		crews = append(crews, Crew{Tconst: *id, Directors: row.String(1), Writers: row.String(2)})
	}
	c.logFetched(DatasetTitleCrew, len(crews), time.Since(fetchStart))
	return crews, nil
}

// PeopleChunks streams name.basics as bounded batches in dump order. The
// sequence is single-pass and not restartable; breaking out of the range
// closes the download mid-body.
func (c *Client) PeopleChunks(ctx context.Context, chunkSize int) iter.Seq2[[]Person, error] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return func(yield func([]Person, error) bool) {
		body, err := c.open(ctx, DatasetNameBasics)
		if err != nil {
			yield(nil, err)
			return
		}
		defer body.Close()

		reader, err := tsv.NewReader(body, nameBasicsColumns)
		if err != nil {
			yield(nil, c.classify(DatasetNameBasics, err))
			return
		}
		chunk := make([]Person, 0, chunkSize)
		for {
			row, err := reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				yield(nil, c.classify(DatasetNameBasics, err))
				return
			}
			id := row.String(0)
			if id == nil {
				continue
			}
			chunk = append(chunk, Person{Nconst: *id, PrimaryName: row.String(1)})
			if len(chunk) == chunkSize {
				if !yield(chunk, nil) {
					return
				}
				chunk = make([]Person, 0, chunkSize)
			}
		}
		if len(chunk) > 0 {
			yield(chunk, nil)
		}
	}
}

// open starts a download and returns a reader over the decompressed body.
func (c *Client) open(ctx context.Context, dataset Dataset) (io.ReadCloser, error) {
	endpoint := c.URL(dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Dataset: dataset, URL: endpoint, Err: err}
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Dataset: dataset, URL: endpoint, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &TransportError{
			Dataset: dataset,
			URL:     endpoint,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, &TransportError{
			Dataset: dataset,
			URL:     endpoint,
			Err:     fmt.Errorf("open gzip stream: %w", err),
		}
	}
	c.logger.Debug("dataset request started",
		logging.String("dataset", dataset.String()),
		logging.String("url", endpoint),
		logging.Duration("connect_latency", time.Since(requestStart)))
	return &datasetBody{gz: gz, body: resp.Body}, nil
}

// classify keeps decode failures as parse errors and wraps everything else
// (network reads, gzip corruption) as a transport failure.
func (c *Client) classify(dataset Dataset, err error) error {
	var parseErr *tsv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("decode %s: %w", dataset, err)
	}
	return &TransportError{Dataset: dataset, URL: c.URL(dataset), Err: err}
}

func (c *Client) logFetched(dataset Dataset, rows int, elapsed time.Duration) {
	c.logger.Info("dataset downloaded",
		logging.String("dataset", dataset.String()),
		logging.Int("rows", rows),
		logging.Duration("fetch_elapsed", elapsed))
}

var (
	titleBasicsColumns = []string{
		"tconst", "titleType", "primaryTitle", "originalTitle",
		"isAdult", "startYear", "endYear", "runtimeMinutes", "genres",
	}
	titleRatingsColumns = []string{"tconst", "averageRating", "numVotes"}
	titleCrewColumns    = []string{"tconst", "directors", "writers"}
	nameBasicsColumns   = []string{"nconst", "primaryName"}
)

func decodeTitle(id string, row tsv.Row) (Title, error) {
	isAdult, err := row.Bool(4)
	if err != nil {
		return Title{}, err
	}
	startYear, err := row.Int16(5)
	if err != nil {
		return Title{}, err
	}
	endYear, err := row.Int16(6)
	if err != nil {
		return Title{}, err
	}
	runtime, err := row.Int32(7)
	if err != nil {
		return Title{}, err
	}
	return Title{
		Tconst:         id,
		TitleType:      row.String(1),
		PrimaryTitle:   row.String(2),
		OriginalTitle:  row.String(3),
		IsAdult:        isAdult,
		StartYear:      startYear,
		EndYear:        endYear,
		RuntimeMinutes: runtime,
		Genres:         row.String(8),
	}, nil
}

func decodeRating(id string, row tsv.Row) (Rating, error) {
	average, err := row.Float32(1)
	if err != nil {
		return Rating{}, err
	}
	votes, err := row.Int32(2)
	if err != nil {
		return Rating{}, err
	}
	return Rating{Tconst: id, AverageRating: average, NumVotes: votes}, nil
}

// datasetBody closes the gzip layer and the HTTP body together.
type datasetBody struct {
	gz   *gzip.Reader
	body io.ReadCloser
}

func (b *datasetBody) Read(p []byte) (int, error) { return b.gz.Read(p) }

func (b *datasetBody) Close() error {
	gzErr := b.gz.Close()
	bodyErr := b.body.Close()
	if gzErr != nil {
		return gzErr
	}
	return bodyErr
}
