package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"rdsq/internal/domain"
	"rdsq/internal/result"
)

// WriteTable writes an aligned text table. Rows are padded to a common width;
// the delimited encodings never pad.
func WriteTable(w io.Writer, rs *domain.ResultSet) error {
	ew := &errWriter{w: w}
	if printsUpdateCount(rs) {
		_, _ = fmt.Fprintf(ew, "number_of_records_updated: %d\n", rs.UpdateCount)
	}

	header := rs.Header()
	width := len(header)
	rows := make([][]string, len(rs.Rows))
	for i, row := range rs.Rows {
		rows[i] = result.DisplayRow(row)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	if width == 0 {
		return ew.err
	}

	table := tablewriter.NewWriter(ew)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(pad(header, width))
	for _, r := range rows {
		table.Append(pad(r, width))
	}
	table.Render()
	return ew.err
}

func pad(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
