package slug

type options struct {
	separator    string
	lowercase    bool
	maxLength    int
	suffixLength int
	strip        string
	replacements map[string]string
}

func defaultOptions() options {
	return options{
		separator: "-",
		lowercase: true,
	}
}

// Option is a functional option for configuring slug generation.
type Option func(*options)

// Separator sets the word separator (default "-").
// An empty separator is ignored and the default is kept.
func Separator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// Lowercase controls whether the slug is lowercased (default true).
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// MaxLength limits the slug to at most n characters. Counting is
// rune-based, and a trailing separator left by truncation is removed.
// Non-positive values disable the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of n
// characters, joined by the separator, for collision avoidance.
// Non-positive values disable the suffix.
func WithSuffix(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.suffixLength = n
		}
	}
}

// StripChars removes every occurrence of the listed characters before
// slugification.
func StripChars(chars string) Option {
	return func(o *options) {
		o.strip = chars
	}
}

// CustomReplace substitutes whole substrings before slugification,
// e.g. {"&": "and", "C++": "cpp"}. Longer keys are applied first so
// overlapping replacements behave predictably.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}
