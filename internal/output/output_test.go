package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdsq/internal/domain"
)

func sampleResult() *domain.ResultSet {
	return &domain.ResultSet{
		Columns: []domain.Column{{Name: "id", TypeName: "int4"}, {Label: "Name", Name: "name"}},
		Rows: [][]domain.Field{
			{domain.LongField(7), domain.StringField("Ann")},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{"Cooked", FormatCooked, false},
		{" raw ", FormatRaw, false},
		{"table", FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "csv, cooked, raw, table")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name string
		rs   *domain.ResultSet
		want string
	}{
		{
			name: "select",
			rs:   sampleResult(),
			want: "id,Name\n7,Ann\n",
		},
		{
			name: "update with metadata",
			rs:   &domain.ResultSet{Columns: []domain.Column{}, UpdateCount: 3},
			want: "number_of_records_updated: 3\n\n",
		},
		{
			name: "no metadata at all",
			rs:   &domain.ResultSet{NoMetadata: true},
			want: "number_of_records_updated: 0\n\n",
		},
		{
			name: "empty select prints only header",
			rs:   &domain.ResultSet{Columns: []domain.Column{{Name: "a"}, {}}},
			want: "a,?\n",
		},
		{
			name: "quoting and nulls",
			rs: &domain.ResultSet{
				Columns: []domain.Column{{Name: "note"}, {Name: "n"}},
				Rows: [][]domain.Field{
					{domain.StringField("a,b"), domain.NullField()},
					{domain.StringField("line\nbreak \"q\""), domain.BoolField(true)},
				},
			},
			want: "note,n\n\"a,b\",NULL\n\"line\nbreak \"\"q\"\"\",true\n",
		},
		{
			name: "rows wider than header keep every cell",
			rs: &domain.ResultSet{
				Columns: []domain.Column{{Name: "a"}},
				Rows:    [][]domain.Field{{domain.LongField(1), domain.LongField(2)}, {}},
			},
			want: "a\n1,2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, tt.rs))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCooked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCooked(&buf, sampleResult()))

	want := `{
  "numberOfRecordsUpdated": 0,
  "records": [
    {
      "id": 7,
      "Name": "Ann"
    }
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteCooked_DuplicateColumns(t *testing.T) {
	rs := &domain.ResultSet{
		Columns: []domain.Column{{Name: "a"}, {Name: "a"}, {Name: "b"}},
		Rows: [][]domain.Field{
			{domain.LongField(1), domain.LongField(2), domain.LongField(3)},
		},
		UpdateCount: 0,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCooked(&buf, rs))

	compact := strings.Join(strings.Fields(buf.String()), "")
	assert.Equal(t, `{"numberOfRecordsUpdated":0,"records":[{"a":1,"a":2,"b":3}]}`, compact)
}

func TestWriteCooked_NoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCooked(&buf, &domain.ResultSet{UpdateCount: 5, NoMetadata: true}))
	assert.JSONEq(t, `{"numberOfRecordsUpdated":5,"records":[]}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
}

func TestWriteRaw(t *testing.T) {
	rs := sampleResult()
	rs.Rows = append(rs.Rows, []domain.Field{domain.NullField(), {}})

	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, rs))

	want := `{
  "columnMetadata": [
    {
      "name": "id",
      "typeName": "int4"
    },
    {
      "label": "Name",
      "name": "name"
    }
  ],
  "records": [
    [
      {
        "longValue": 7
      },
      {
        "stringValue": "Ann"
      }
    ],
    [
      {
        "isNull": true
      },
      {}
    ]
  ],
  "numberOfRecordsUpdated": 0
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteRaw_OmitsMissingMetadata(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, &domain.ResultSet{NoMetadata: true, UpdateCount: 2}))
	assert.JSONEq(t, `{"records":[],"numberOfRecordsUpdated":2}`, buf.String())
}

func TestWriteTable(t *testing.T) {
	rs := sampleResult()
	rs.Rows = append(rs.Rows, []domain.Field{domain.LongField(8)})

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rs))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "8")
	assert.NotContains(t, out, "number_of_records_updated")
}

func TestWriteTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, &domain.ResultSet{NoMetadata: true, UpdateCount: 1}))
	assert.Equal(t, "number_of_records_updated: 1\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_WrapsFailures(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			err := Write(failingWriter{}, f, sampleResult())
			var outErr *domain.OutputError
			require.True(t, errors.As(err, &outErr), "got %v", err)
			assert.Equal(t, string(f), outErr.Format)
			assert.Contains(t, err.Error(), "broken pipe")
		})
	}
}

func TestWrite_Dispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleResult()))
	assert.Equal(t, "id,Name\n7,Ann\n", buf.String())

	err := Write(&buf, Format("yaml"), sampleResult())
	require.Error(t, err)
}

func TestFormat_IsJSON(t *testing.T) {
	assert.True(t, FormatCooked.IsJSON())
	assert.True(t, FormatRaw.IsJSON())
	assert.False(t, FormatCSV.IsJSON())
	assert.False(t, FormatTable.IsJSON())
}
