package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"rdsq/internal/domain"
	"rdsq/internal/result"
)

// WriteCSV writes the header line and one line per row. An update-count line comes
// first when rows were updated or the response had no column metadata.
func WriteCSV(w io.Writer, rs *domain.ResultSet) error {
	if printsUpdateCount(rs) {
		if _, err := fmt.Fprintf(w, "number_of_records_updated: %d\n", rs.UpdateCount); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rs.Header()); err != nil {
		return err
	}
	for _, row := range rs.Rows {
		if err := cw.Write(result.DisplayRow(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func printsUpdateCount(rs *domain.ResultSet) bool {
	return rs.UpdateCount > 0 || rs.NoMetadata
}
