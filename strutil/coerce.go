package strutil

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// String converts an arbitrary value to its text representation.
// It is the single coercion point for every function in this package
// that accepts non-string input: nil becomes the empty string, strings
// and byte slices pass through, and scalar types use their canonical
// strconv formatting. Anything else falls back to fmt formatting.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Count returns the number of characters in the text representation of v.
// Counting is rune-based, so multi-byte characters count as one.
func Count(v any) int {
	return utf8.RuneCountInString(String(v))
}
