package strutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redrye/core-utils/strutil"
)

func TestStartsWith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		prefix   string
		pos      []int
		expected bool
	}{
		{"match at start", "test", "te", nil, true},
		{"no match at start", "test", "st", nil, false},
		{"match at offset", "test", "st", []int{2}, true},
		{"offset past match", "test", "te", []int{1}, false},
		{"empty prefix", "test", "", nil, true},
		{"negative position clamps to zero", "test", "te", []int{-3}, true},
		{"position past end", "test", "te", []int{99}, false},
		{"empty prefix past end", "test", "", []int{99}, true},
		{"empty string", "", "x", nil, false},
		{"multi-byte offset", "héllo", "llo", []int{2}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strutil.StartsWith(tt.s, tt.prefix, tt.pos...))
		})
	}
}

func TestEndsWith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		suffix   string
		pos      []int
		expected bool
	}{
		{"match at end", "test", "st", nil, true},
		{"no match at end", "test", "te", nil, false},
		{"truncated before check", "test", "te", []int{2}, true},
		{"truncated excludes suffix", "test", "st", []int{2}, false},
		{"position out of range falls back", "test", "st", []int{99}, true},
		{"negative position falls back", "test", "st", []int{-1}, true},
		{"position zero", "test", "", []int{0}, true},
		{"empty suffix", "test", "", nil, true},
		{"empty string", "", "x", nil, false},
		{"multi-byte truncation", "héllo", "hé", []int{2}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strutil.EndsWith(tt.s, tt.suffix, tt.pos...))
		})
	}
}

func TestIsPlainMap(t *testing.T) {
	t.Parallel()

	var nilMap map[string]int
	m := map[string]int{"a": 1}

	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{"map of any", map[string]any{"k": 1}, true},
		{"typed map", map[string]int{"a": 1}, true},
		{"empty map", map[int]bool{}, true},
		{"nil", nil, false},
		{"nil map", nilMap, false},
		{"slice", []int{1, 2}, false},
		{"array", [2]int{1, 2}, false},
		{"string", "hello", false},
		{"number", 42, false},
		{"bool", true, false},
		{"struct", struct{ A int }{1}, false},
		{"tagged built-in struct", time.Now(), false},
		{"pointer to map", &m, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strutil.IsPlainMap(tt.input))
		})
	}
}
