package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts the value to its text representation in lowercase.
func Lower(v any) string {
	return strings.ToLower(String(v))
}

// Upper converts the value to its text representation in uppercase.
func Upper(v any) string {
	return strings.ToUpper(String(v))
}

// Capitalize trims the string, uppercases the first character, and
// lowercases the remainder. An empty or all-whitespace string yields "".
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// CapitalizeAll splits the string on single spaces, capitalizes every word,
// and rejoins them with single spaces. Empty words produced by consecutive
// spaces are dropped, so runs of spaces collapse to one.
func CapitalizeAll(s string) string {
	words := strings.Split(s, " ")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = Capitalize(w); w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// Camel converts a space-separated phrase to camelCase: the input is
// trimmed and lowercased, the first word stays as-is, and every
// subsequent word is capitalized. Empty words produced by consecutive
// spaces contribute nothing.
func Camel(s string) string {
	words := strings.Split(strings.ToLower(strings.TrimSpace(s)), " ")

	var b strings.Builder
	b.Grow(len(s))
	first := true
	for _, w := range words {
		if w == "" {
			continue
		}
		if first {
			b.WriteString(w)
			first = false
			continue
		}
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// Snake converts a camelCase identifier to snake_case. Every maximal run
// of consecutive uppercase letters is lowercased as a unit, and a run
// that does not start the string gets a single underscore prefix:
// "helloWorld" becomes "hello_world", "userID" becomes "user_id", and
// "ID" becomes "id".
func Snake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	inUpper := false
	for i, r := range s {
		if unicode.IsUpper(r) {
			if !inUpper && i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			inUpper = true
			continue
		}
		b.WriteRune(r)
		inUpper = false
	}
	return b.String()
}

// SnakeToCamel removes every run of one or more underscores and
// uppercases the character that follows it: "hello_world" becomes
// "helloWorld". Trailing underscores have no following character and
// are simply dropped.
func SnakeToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingBoundary := false
	for _, r := range s {
		if r == '_' {
			pendingBoundary = true
			continue
		}
		if pendingBoundary {
			b.WriteRune(unicode.ToUpper(r))
			pendingBoundary = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Words converts a camelCase identifier to a space-separated phrase by
// snake-casing it and replacing underscores with spaces. An uppercase
// run after a leading space or other non-initial position inherits
// Snake's underscore, which becomes a space here.
func Words(s string) string {
	return strings.ReplaceAll(Snake(s), "_", " ")
}

// Title converts a camelCase or snake_case identifier to a
// space-separated phrase with every word capitalized.
func Title(s string) string {
	return CapitalizeAll(Words(s))
}

// MaxLength truncates the string to at most maxLen characters.
// Truncation is rune-aware so multi-byte characters are never split.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
