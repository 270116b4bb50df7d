package tsv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Null is the literal token the dump format uses for absent values.
const Null = `\N`

// maxLineBytes bounds a single row. The widest IMDb rows (akas with long
// title lists) stay well under this.
const maxLineBytes = 1 << 20

// ParseError describes malformed tabular content. It is fatal: there is
// no row-skipping mode, a bad row poisons the whole dataset.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tsv: line %d: %s", e.Line, e.Msg)
}

// Reader decodes rows from a tab-separated stream with a header line.
// It is single-pass and not restartable.
type Reader struct {
	scanner *bufio.Scanner
	indexes []int
	width   int
	line    int
}

// NewReader consumes the header line of r and resolves the projection for
// the requested columns. Every requested column must exist in the header.
func NewReader(r io.Reader, columns []string) (*Reader, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Line: 1, Msg: "missing header line"}
	}
	header := strings.Split(scanner.Text(), "\t")

	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	indexes := make([]int, len(columns))
	for i, name := range columns {
		pos, ok := positions[name]
		if !ok {
			return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("column %q not in header", name)}
		}
		indexes[i] = pos
	}

	return &Reader{
		scanner: scanner,
		indexes: indexes,
		width:   len(header),
		line:    1,
	}, nil
}

// Next returns the next projected row, or io.EOF after the last one.
func (r *Reader) Next() (Row, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Row{}, err
		}
		return Row{}, io.EOF
	}
	r.line++

	fields := strings.Split(r.scanner.Text(), "\t")
	if len(fields) != r.width {
		return Row{}, &ParseError{
			Line: r.line,
			Msg:  fmt.Sprintf("expected %d fields, got %d", r.width, len(fields)),
		}
	}

	values := make([]*string, len(r.indexes))
	for i, pos := range r.indexes {
		if fields[pos] == Null {
			continue
		}
		value := fields[pos]
		values[i] = &value
	}
	return Row{Line: r.line, values: values}, nil
}

// Row is one projected record. Values are addressed by projection position,
// in the column order the Reader was constructed with; nil means the cell
// held the null token.
type Row struct {
	Line   int
	values []*string
}

// String returns the raw cell, nil for null.
func (r Row) String(i int) *string {
	return r.values[i]
}

// Bool coerces the cell to a boolean. The dumps encode flags as 0/1.
func (r Row) Bool(i int) (*bool, error) {
	if r.values[i] == nil {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(*r.values[i])
	if err != nil {
		return nil, r.coerceErr(i, "bool", *r.values[i])
	}
	return &parsed, nil
}

// Int16 coerces the cell to a 16-bit integer.
func (r Row) Int16(i int) (*int16, error) {
	if r.values[i] == nil {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(*r.values[i], 10, 16)
	if err != nil {
		return nil, r.coerceErr(i, "int16", *r.values[i])
	}
	value := int16(parsed)
	return &value, nil
}

// Int32 coerces the cell to a 32-bit integer.
func (r Row) Int32(i int) (*int32, error) {
	if r.values[i] == nil {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(*r.values[i], 10, 32)
	if err != nil {
		return nil, r.coerceErr(i, "int32", *r.values[i])
	}
	value := int32(parsed)
	return &value, nil
}

// Float32 coerces the cell to a 32-bit float.
func (r Row) Float32(i int) (*float32, error) {
	if r.values[i] == nil {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(*r.values[i], 32)
	if err != nil {
		return nil, r.coerceErr(i, "float32", *r.values[i])
	}
	value := float32(parsed)
	return &value, nil
}

func (r Row) coerceErr(i int, kind, value string) error {
	return &ParseError{
		Line: r.Line,
		Msg:  fmt.Sprintf("field %d: %q is not a valid %s", i, value, kind),
	}
}
