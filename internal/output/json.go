package output

import (
	"encoding/json"
	"io"

	"rdsq/internal/domain"
	"rdsq/internal/result"
)

// cookedResponse is the structured document. Field order is part of the output.
type cookedResponse struct {
	NumberOfRecordsUpdated int64           `json:"numberOfRecordsUpdated"`
	Records                []result.Record `json:"records"`
}

// WriteCooked writes one pretty-printed JSON document with a record per row.
func WriteCooked(w io.Writer, rs *domain.ResultSet) error {
	header := rs.Header()
	doc := cookedResponse{
		NumberOfRecordsUpdated: rs.UpdateCount,
		Records:                make([]result.Record, len(rs.Rows)),
	}
	for i, row := range rs.Rows {
		doc.Records[i] = result.Project(header, row)
	}
	return printJSON(w, doc)
}

type rawColumn struct {
	Label    string `json:"label,omitempty"`
	Name     string `json:"name,omitempty"`
	TypeName string `json:"typeName,omitempty"`
}

type rawResponse struct {
	ColumnMetadata         []rawColumn       `json:"columnMetadata,omitempty"`
	Records                [][]result.Record `json:"records"`
	NumberOfRecordsUpdated int64             `json:"numberOfRecordsUpdated"`
}

// WriteRaw writes the whole result set with every cell tagged by its variant,
// e.g. {"longValue":7} or {"isNull":true}.
func WriteRaw(w io.Writer, rs *domain.ResultSet) error {
	doc := rawResponse{
		Records:                make([][]result.Record, len(rs.Rows)),
		NumberOfRecordsUpdated: rs.UpdateCount,
	}
	if !rs.NoMetadata {
		doc.ColumnMetadata = make([]rawColumn, len(rs.Columns))
		for i, c := range rs.Columns {
			doc.ColumnMetadata[i] = rawColumn{Label: c.Label, Name: c.Name, TypeName: c.TypeName}
		}
	}
	for i, row := range rs.Rows {
		cells := make([]result.Record, len(row))
		for j, f := range row {
			cells[j] = taggedField(f)
		}
		doc.Records[i] = cells
	}
	return printJSON(w, doc)
}

func taggedField(f domain.Field) result.Record {
	switch f.Kind {
	case domain.FieldEmpty:
		return result.Record{}
	case domain.FieldArray:
		return result.Record{{Name: f.Kind.String(), Value: f.Array}}
	case domain.FieldBlob:
		return result.Record{{Name: f.Kind.String(), Value: f.Blob}}
	case domain.FieldNull:
		return result.Record{{Name: f.Kind.String(), Value: true}}
	case domain.FieldUnknown:
		return result.Record{{Name: f.Kind.String(), Value: f.Tag}}
	default:
		return result.Record{{Name: f.Kind.String(), Value: result.Value(f)}}
	}
}

// printJSON writes v indented by two spaces, without HTML escaping, plus a newline.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
