package strutil

import (
	"github.com/redrye/core-utils/slug"
)

// Chain is an immutable fluent wrapper around a single text value.
// Every transformation returns a new Chain, so intermediate values can
// be shared freely:
//
//	s := strutil.New("  user profile PAGE  ").Trim().Camel().String()
//	// "userProfilePage"
type Chain struct {
	value string
}

// New wraps a value for fluent transformation, coercing it to text
// via String.
func New(v any) Chain {
	return Chain{value: String(v)}
}

// Trim removes leading and trailing whitespace.
func (c Chain) Trim() Chain {
	return Chain{value: Trim(c.value)}
}

// Lower converts the value to lowercase.
func (c Chain) Lower() Chain {
	return Chain{value: Lower(c.value)}
}

// Upper converts the value to uppercase.
func (c Chain) Upper() Chain {
	return Chain{value: Upper(c.value)}
}

// Capitalize uppercases the first character and lowercases the rest.
func (c Chain) Capitalize() Chain {
	return Chain{value: Capitalize(c.value)}
}

// CapitalizeAll capitalizes every space-separated word.
func (c Chain) CapitalizeAll() Chain {
	return Chain{value: CapitalizeAll(c.value)}
}

// Camel converts the value to camelCase.
func (c Chain) Camel() Chain {
	return Chain{value: Camel(c.value)}
}

// Snake converts the value to snake_case.
func (c Chain) Snake() Chain {
	return Chain{value: Snake(c.value)}
}

// SnakeToCamel converts snake_case to camelCase.
func (c Chain) SnakeToCamel() Chain {
	return Chain{value: SnakeToCamel(c.value)}
}

// Words converts a camelCase identifier to a space-separated phrase.
func (c Chain) Words() Chain {
	return Chain{value: Words(c.value)}
}

// Title converts an identifier to a capitalized space-separated phrase.
func (c Chain) Title() Chain {
	return Chain{value: Title(c.value)}
}

// Slugify converts the value to a URL-safe slug, optionally with a
// custom separator (default "-").
func (c Chain) Slugify(sep ...string) Chain {
	if len(sep) > 0 {
		return Chain{value: slug.Make(c.value, slug.Separator(sep[0]))}
	}
	return Chain{value: slug.Make(c.value)}
}

// Count returns the number of characters in the value.
func (c Chain) Count() int {
	return Count(c.value)
}

// StartsWith reports whether the value contains prefix at the given
// character position (default 0).
func (c Chain) StartsWith(prefix string, pos ...int) bool {
	return StartsWith(c.value, prefix, pos...)
}

// EndsWith reports whether the value, truncated at the given character
// position, ends with suffix.
func (c Chain) EndsWith(suffix string, pos ...int) bool {
	return EndsWith(c.value, suffix, pos...)
}

// String returns the wrapped value.
func (c Chain) String() string {
	return c.value
}
