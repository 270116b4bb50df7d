// Package table reads and writes the flat movie artifact. The artifact
// is a single CSV with a fixed column order; nulls are empty cells so
// spreadsheet tools and dataframe readers agree on the contents.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"marquee/internal/imdb"
)

// Columns is the artifact schema in output order.
var Columns = []string{
	"primaryTitle",
	"originalTitle",
	"startYear",
	"runtimeMinutes",
	"genres",
	"averageRating",
	"numVotes",
	"directors",
	"writers",
}

// WriteFile writes movies to path atomically: rows go to a temporary
// file in the same directory which is renamed over path only after a
// complete, flushed write. A failed build never leaves a partial
// artifact behind.
func WriteFile(path string, movies []imdb.Movie) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := write(tmp, movies); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod artifact: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("publish artifact: %w", err)
	}
	return nil
}

func write(w io.Writer, movies []imdb.Movie) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, m := range movies {
		if err := cw.Write(record(m)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush artifact: %w", err)
	}
	return nil
}

func record(m imdb.Movie) []string {
	return []string{
		m.PrimaryTitle,
		m.OriginalTitle,
		int16Cell(m.StartYear),
		int32Cell(m.RuntimeMinutes),
		stringCell(m.Genres),
		float32Cell(m.AverageRating),
		int32Cell(m.NumVotes),
		stringCell(m.Directors),
		stringCell(m.Writers),
	}
}

// ReadFile loads an artifact written by WriteFile. The header must
// match Columns exactly; anything else means the file is not ours.
func ReadFile(path string) ([]imdb.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read artifact header: %w", err)
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected artifact column %d: got %q, want %q", i, header[i], name)
		}
	}

	var movies []imdb.Movie
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read artifact row %d: %w", row, err)
		}
		m, err := decode(rec)
		if err != nil {
			return nil, fmt.Errorf("artifact row %d: %w", row, err)
		}
		movies = append(movies, m)
		row++
	}
	return movies, nil
}

func decode(rec []string) (imdb.Movie, error) {
	m := imdb.Movie{
		PrimaryTitle:  rec[0],
		OriginalTitle: rec[1],
		Genres:        cellString(rec[4]),
		Directors:     cellString(rec[7]),
		Writers:       cellString(rec[8]),
	}
	var err error
	if m.StartYear, err = cellInt16(rec[2]); err != nil {
		return imdb.Movie{}, fmt.Errorf("parse startYear: %w", err)
	}
	if m.RuntimeMinutes, err = cellInt32(rec[3]); err != nil {
		return imdb.Movie{}, fmt.Errorf("parse runtimeMinutes: %w", err)
	}
	if m.AverageRating, err = cellFloat32(rec[5]); err != nil {
		return imdb.Movie{}, fmt.Errorf("parse averageRating: %w", err)
	}
	if m.NumVotes, err = cellInt32(rec[6]); err != nil {
		return imdb.Movie{}, fmt.Errorf("parse numVotes: %w", err)
	}
	return m, nil
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func int16Cell(v *int16) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

func int32Cell(v *int32) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

// float32Cell renders the shortest decimal string that round-trips the
// 32-bit value, so 8.2 stays "8.2" rather than a long double expansion.
func float32Cell(v *float32) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*v), 'f', -1, 32)
}

func cellString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cellInt16(s string) (*int16, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return nil, err
	}
	out := int16(v)
	return &out, nil
}

func cellInt32(s string) (*int32, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}
	out := int32(v)
	return &out, nil
}

func cellFloat32(s string) (*float32, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, err
	}
	out := float32(v)
	return &out, nil
}
