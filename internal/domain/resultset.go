package domain

// Column describes one result column.
type Column struct {
	Label    string
	Name     string
	TypeName string
}

// DisplayName returns the label, falling back to the name and then to "?".
func (c Column) DisplayName() string {
	switch {
	case c.Label != "":
		return c.Label
	case c.Name != "":
		return c.Name
	default:
		return "?"
	}
}

// FieldKind tags which variant of a Field is populated.
type FieldKind int

const (
	FieldEmpty FieldKind = iota
	FieldArray
	FieldBlob
	FieldBool
	FieldDouble
	FieldNull
	FieldLong
	FieldString
	FieldUnknown
)

var fieldKindNames = map[FieldKind]string{
	FieldEmpty:   "empty",
	FieldArray:   "arrayValue",
	FieldBlob:    "blobValue",
	FieldBool:    "booleanValue",
	FieldDouble:  "doubleValue",
	FieldNull:    "isNull",
	FieldLong:    "longValue",
	FieldString:  "stringValue",
	FieldUnknown: "unknown",
}

func (k FieldKind) String() string {
	if s, ok := fieldKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Field is a single result cell. Exactly one variant, named by Kind, is meaningful.
type Field struct {
	Kind   FieldKind
	Bool   bool
	Long   int64
	Double float64
	String string
	Blob   []byte
	Array  []interface{} // elements are bool, int64, float64, string or nested []interface{}
	Tag    string        // member tag of an unrecognized variant
}

// Constructors for the common variants.

func BoolField(v bool) Field      { return Field{Kind: FieldBool, Bool: v} }
func LongField(v int64) Field     { return Field{Kind: FieldLong, Long: v} }
func DoubleField(v float64) Field { return Field{Kind: FieldDouble, Double: v} }
func StringField(v string) Field  { return Field{Kind: FieldString, String: v} }
func BlobField(v []byte) Field    { return Field{Kind: FieldBlob, Blob: v} }
func NullField() Field            { return Field{Kind: FieldNull} }

func ArrayField(v []interface{}) Field { return Field{Kind: FieldArray, Array: v} }

// ResultSet is the immutable outcome of one statement execution.
type ResultSet struct {
	Columns []Column
	// NoMetadata is set when the response carried no column metadata at all.
	NoMetadata  bool
	Rows        [][]Field
	UpdateCount int64
}

// Header returns the display name of every column in order.
func (r *ResultSet) Header() []string {
	header := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		header[i] = c.DisplayName()
	}
	return header
}
