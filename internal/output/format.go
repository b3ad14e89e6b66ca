// Package output renders a result set in one of the supported encodings.
package output

import (
	"fmt"
	"io"
	"strings"

	"rdsq/internal/domain"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV    Format = "csv"    // header line plus one delimited line per row
	FormatCooked Format = "cooked" // JSON records keyed by column name
	FormatRaw    Format = "raw"    // JSON of the full result, tagged fields
	FormatTable  Format = "table"  // aligned text table
)

// Formats lists the accepted encodings in help order.
var Formats = []Format{FormatCSV, FormatCooked, FormatRaw, FormatTable}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q: use one of %s", s, formatList())
}

// IsJSON reports whether the format emits JSON.
func (f Format) IsJSON() bool {
	return f == FormatCooked || f == FormatRaw
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Write encodes rs to w. Any failure is returned as *domain.OutputError.
func Write(w io.Writer, f Format, rs *domain.ResultSet) error {
	var err error
	switch f {
	case FormatCSV:
		err = WriteCSV(w, rs)
	case FormatCooked:
		err = WriteCooked(w, rs)
	case FormatRaw:
		err = WriteRaw(w, rs)
	case FormatTable:
		err = WriteTable(w, rs)
	default:
		err = fmt.Errorf("unsupported output format %q", f)
	}
	if err != nil {
		return &domain.OutputError{Format: string(f), Err: err}
	}
	return nil
}
