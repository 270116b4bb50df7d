package imdb

// Dataset names one of the published dump files.
type Dataset string

const (
	DatasetTitleBasics  Dataset = "title.basics"
	DatasetTitleRatings Dataset = "title.ratings"
	DatasetTitleCrew    Dataset = "title.crew"
	DatasetNameBasics   Dataset = "name.basics"
)

// DefaultBaseURL is the public home of the dataset dumps.
const DefaultBaseURL = "https://datasets.imdbws.com"

// DefaultChunkSize bounds one name.basics batch when the caller does not
// choose a size.
const DefaultChunkSize = 250_000

func (d Dataset) String() string { return string(d) }

// Filename returns the published archive name for the dataset.
func (d Dataset) Filename() string { return string(d) + ".tsv.gz" }
