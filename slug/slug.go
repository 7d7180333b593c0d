package slug

import (
	"crypto/rand"
	"hash/fnv"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// translit maps letters that do not decompose into base + combining mark
// under NFD, so stripping marks alone would drop or keep them wrong.
var translit = map[rune]string{
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'ø': "o", 'Ø': "O",
	'œ': "oe", 'Œ': "OE",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
}

// Make converts an arbitrary string into a URL-safe slug: diacritics are
// stripped, the result is lowercased (unless disabled), and every run of
// non-alphanumeric characters collapses into a single separator. It never
// fails; input with no usable characters yields an empty slug (or the
// random suffix alone when one is requested).
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s = strings.TrimSpace(s)
	s = applyReplacements(s, o.replacements)
	if o.strip != "" {
		for _, r := range o.strip {
			s = strings.ReplaceAll(s, string(r), "")
		}
	}

	s = removeDiacritics(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s) + len(o.separator))
	pendingSep := false
	for _, r := range s {
		if (unicode.IsLetter(r) || unicode.IsDigit(r)) && r <= unicode.MaxASCII {
			if pendingSep && b.Len() > 0 {
				b.WriteString(o.separator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	result := b.String()

	if o.suffixLength > 0 {
		suffix := randomSuffix(s, o.suffixLength)
		if o.maxLength > 0 {
			// Leave room for the separator and suffix inside the limit.
			keep := o.maxLength - o.suffixLength - len([]rune(o.separator))
			result = strings.TrimSuffix(truncate(result, keep), o.separator)
		}
		if result == "" {
			return suffix
		}
		return result + o.separator + suffix
	}

	if o.maxLength > 0 {
		result = strings.TrimSuffix(truncate(result, o.maxLength), o.separator)
	}
	return result
}

func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}

	// Longest keys first so "C++" wins over "+".
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		s = strings.ReplaceAll(s, k, replacements[k])
	}
	return s
}

// removeDiacritics decomposes accented characters and drops the combining
// marks, so "café" becomes "cafe". Letters without a decomposition go
// through the transliteration table instead.
func removeDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := translit[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// randomSuffix draws n characters from crypto/rand, falling back to a
// deterministic FNV-derived sequence if the random source fails.
func randomSuffix(seed string, n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		h := fnv.New64a()
		h.Write([]byte(seed))
		v := h.Sum64()
		for i := range buf {
			buf[i] = suffixAlphabet[v%uint64(len(suffixAlphabet))]
			v = v/uint64(len(suffixAlphabet)) + uint64(i)*31
		}
		return string(buf)
	}

	for i := range buf {
		buf[i] = suffixAlphabet[int(buf[i])%len(suffixAlphabet)]
	}
	return string(buf)
}
