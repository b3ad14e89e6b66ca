// Package result decodes result cells and projects rows for the output encoders.
package result

import (
	"fmt"
	"math"
	"strconv"

	"rdsq/internal/domain"
)

// Display renders a field for delimited and tabular output.
// Null is "NULL"; array, blob and unrecognized variants use a debug dump.
// Doubles use Go's shortest round-trip form, so 1.0 prints as "1" and
// infinities as "+Inf" and "-Inf".
func Display(f domain.Field) string {
	switch f.Kind {
	case domain.FieldArray:
		return fmt.Sprintf("%v", f.Array)
	case domain.FieldBlob:
		return fmt.Sprintf("%v", f.Blob)
	case domain.FieldBool:
		return strconv.FormatBool(f.Bool)
	case domain.FieldDouble:
		return formatDouble(f.Double)
	case domain.FieldNull:
		return "NULL"
	case domain.FieldLong:
		return strconv.FormatInt(f.Long, 10)
	case domain.FieldString:
		return f.String
	case domain.FieldUnknown:
		return fmt.Sprintf("{%s}", f.Tag)
	default:
		return ""
	}
}

// Value renders a field as a JSON scalar: bool, int64, float64, string or nil.
// Array, blob and unrecognized variants are not preserved and become nil.
func Value(f domain.Field) interface{} {
	switch f.Kind {
	case domain.FieldBool:
		return f.Bool
	case domain.FieldDouble:
		if math.IsNaN(f.Double) || math.IsInf(f.Double, 0) {
			return formatDouble(f.Double)
		}
		return f.Double
	case domain.FieldLong:
		return f.Long
	case domain.FieldString:
		return f.String
	default:
		return nil
	}
}

func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
