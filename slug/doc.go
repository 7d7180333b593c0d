// Package slug generates URL-safe slugs from arbitrary strings with Unicode normalization.
//
// The package converts text to web-friendly identifiers by stripping diacritics,
// collapsing runs of special characters into separators, and offering configurable
// length limits and collision-resistant suffixes.
//
// # Features
//
// - Diacritic normalization (é → e, ñ → n, ß → ss, etc.)
// - Configurable separator characters (default: "-")
// - Optional length limits with rune-aware truncation
// - Random suffix generation for collision avoidance
// - Custom substring replacements and character stripping
// - Case control (lowercase by default)
//
// # Usage
//
// Basic slug generation:
//
//	slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
// Custom separator:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// With length limit and collision-resistant suffix:
//
//	slug.Make("Long article title here",
//		slug.MaxLength(30),
//		slug.WithSuffix(6),
//	)
//	// Output: "long-article-title-here-a7b2x9"
//
// Custom replacements for domain-specific terms:
//
//	slug.Make("C++ & Go", slug.CustomReplace(map[string]string{
//		"C++": "cpp",
//		"&":   "and",
//	}))
//	// Output: "cpp-and-go"
//
// # Behavior
//
// Make never fails and always returns the computed slug. Empty input, or
// input consisting only of characters with no ASCII representation, yields
// an empty string (or the suffix alone when WithSuffix is used). Letters
// outside ASCII that carry combining marks are decomposed and kept
// ("naïve résumé" → "naive-resume"); scripts with no such decomposition
// are treated as separators.
//
// All transformations are pure and safe for concurrent use; only the
// random suffix introduces nondeterminism.
package slug
