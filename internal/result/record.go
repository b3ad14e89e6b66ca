package result

import (
	"bytes"
	"encoding/json"

	"rdsq/internal/domain"
)

// Pair is one named value of a Record.
type Pair struct {
	Name  string
	Value interface{}
}

// Record is an ordered list of named values. It serializes as a JSON object that
// keeps insertion order and repeats keys that appear more than once.
type Record []Pair

// MarshalJSON writes the pairs in order without merging duplicate names.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, p := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(p.Name); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(p.Value); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

// DisplayRow renders every cell of a row. The result has the row's length,
// whatever the header length.
func DisplayRow(row []domain.Field) []string {
	out := make([]string, len(row))
	for i, f := range row {
		out[i] = Display(f)
	}
	return out
}

// Project pairs header[i] with row[i] while both are in range. Cells beyond the
// header and names beyond the row are dropped.
func Project(header []string, row []domain.Field) Record {
	n := len(header)
	if len(row) < n {
		n = len(row)
	}
	rec := make(Record, n)
	for i := 0; i < n; i++ {
		rec[i] = Pair{Name: header[i], Value: Value(row[i])}
	}
	return rec
}
