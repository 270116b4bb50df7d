package imdb

import "fmt"

// TransportError reports a failed dataset download: connection problems,
// unexpected HTTP status, or gzip corruption mid-stream. Fatal for the
// build; there is no retry built in, the caller re-invokes.
type TransportError struct {
	Dataset Dataset
	URL     string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Dataset, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
