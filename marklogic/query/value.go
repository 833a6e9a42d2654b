package query

import (
	"fmt"
	"strconv"
)

// FormatValue renders a scalar leaf value the way the engine expects it
// inside a value query: strings as-is, booleans as "true"/"false", numbers
// in plain decimal. Anything else falls back to its default formatting.
//
// Quote characters are NOT escaped. A value containing a single quote
// therefore produces malformed query text; this matches the engine
// adapter's historical behavior and is kept for compatibility.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
