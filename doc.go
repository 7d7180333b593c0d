// Package coreutils is a small collection of pure string-transformation
// utilities intended as a reusable text-formatting helper library for
// other application code. Every operation is stateless, performs no I/O,
// and is safe to call concurrently without synchronization.
//
// # Package Organization
//
//	github.com/redrye/core-utils/strutil - case conversion, capitalization, trimming, counting, prefix/suffix checks, fluent chains, tag-driven struct transforms
//	github.com/redrye/core-utils/slug    - URL-safe slug generation with diacritic stripping and functional options
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/redrye/core-utils/strutil
//	go doc -all github.com/redrye/core-utils/slug
package coreutils
