// Package scorer implements the product scoring and normalization pipeline:
// numeric coercion, rating formatting, agent score computation, and
// raw-record normalization.
package scorer

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Coerce converts an arbitrary value to a float64, never failing.
// Absent/nil values, empty strings, and unparseable text all coerce to 0.
// Textual input is trimmed and thousands separators are stripped before
// parsing. This is the single point of defense against malformed sheet and
// database input; everything downstream assumes finite floats.
func Coerce(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		return Coerce(string(x))
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", "")
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// CoerceString converts a value to a trimmed string; nil becomes "".
func CoerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}
