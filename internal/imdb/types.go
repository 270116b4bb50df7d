package imdb

// Title is one title.basics row. Nullable columns are pointers; coercion
// from the wire happens once, at decode time.
type Title struct {
	Tconst         string
	TitleType      *string
	PrimaryTitle   *string
	OriginalTitle  *string
	IsAdult        *bool
	StartYear      *int16
	EndYear        *int16
	RuntimeMinutes *int32
	Genres         *string
}

// Rating is one title.ratings row. The dump carries at most one rating per
// title.
type Rating struct {
	Tconst        string
	AverageRating *float32
	NumVotes      *int32
}

// Crew is one title.crew row. Directors and Writers hold comma-delimited
// nconst lists.
type Crew struct {
	Tconst    string
	Directors *string
	Writers   *string
}

// Person is the name.basics subset the pipeline needs.
type Person struct {
	Nconst      string
	PrimaryName *string
}

// Movie is one row of the final artifact: a filtered title with its crew
// ID lists replaced by resolved display names and the identifier, type,
// adult and end-year columns dropped.
type Movie struct {
	PrimaryTitle   string
	OriginalTitle  string
	StartYear      *int16
	RuntimeMinutes *int32
	Genres         *string
	AverageRating  *float32
	NumVotes       *int32
	Directors      *string
	Writers        *string
}
