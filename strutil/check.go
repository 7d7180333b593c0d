package strutil

import (
	"reflect"
	"strings"
)

// StartsWith reports whether s contains prefix starting exactly at the
// given character position (default 0). The position is clamped to the
// string bounds and counts runes, matching Count's semantics.
func StartsWith(s, prefix string, pos ...int) bool {
	offset := 0
	if len(pos) > 0 {
		offset = pos[0]
	}

	runes := []rune(s)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	return strings.HasPrefix(string(runes[offset:]), prefix)
}

// EndsWith reports whether s, truncated at the given character position,
// ends with suffix. Without a position the whole string is checked; a
// negative or out-of-range position falls back to the full length.
func EndsWith(s, suffix string, pos ...int) bool {
	runes := []rune(s)
	end := len(runes)
	if len(pos) > 0 && pos[0] >= 0 && pos[0] <= len(runes) {
		end = pos[0]
	}
	return strings.HasSuffix(string(runes[:end]), suffix)
}

// IsPlainMap reports whether v is a plain key-value mapping: any non-nil
// map value, regardless of key and element types. Slices, arrays, structs
// (including tagged built-ins like time.Time), pointers, primitives, nil,
// and nil maps all report false.
func IsPlainMap(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && !rv.IsNil()
}
