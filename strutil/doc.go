// Package strutil provides pure string-transformation utilities: trimming,
// case conversion, capitalization, prefix/suffix checks, and character
// counting. Every function is stateless and referentially transparent, so
// the package is safe for concurrent use without synchronization.
//
// # Features
//
//   - Whitespace trimming and case folding
//   - camelCase / snake_case / Title Case conversion
//   - Word splitting for identifiers ("helloWorld" → "hello world")
//   - Rune-aware character counting and position checks
//   - Central text coercion for non-string values
//   - Fluent Chain wrapper for composing transformations
//   - Tag-driven struct field transformation
//
// # Case Conversion
//
// Convert between identifier styles:
//
//	strutil.Camel("user profile page")   // "userProfilePage"
//	strutil.Snake("userProfilePage")     // "user_profile_page"
//	strutil.SnakeToCamel("user_profile") // "userProfile"
//	strutil.Words("userProfilePage")     // "user profile page"
//	strutil.Title("user_profile_page")   // "User Profile Page"
//
// Consecutive uppercase letters are treated as one word, so acronyms
// survive the round trip sensibly:
//
//	strutil.Snake("userID") // "user_id"
//	strutil.Snake("ID")     // "id"
//
// # Coercion
//
// Functions that accept any value route through a single String helper:
//
//	strutil.Count("test") // 4
//	strutil.Count(123)    // 3
//	strutil.Lower(true)   // "true"
//
// # Fluent Chains
//
// Chain wraps one text value and exposes each transformation as a method
// returning a new Chain:
//
//	strutil.New("  This is a tesT  ").Camel().String()
//	// "thisIsATest"
//
// # Struct Transformation
//
// Apply named transforms to struct fields declaratively:
//
//	type Article struct {
//		Title string `transform:"trim,title"`
//		Slug  string `transform:"trim,slug,max:60"`
//	}
//
//	err := strutil.TransformStruct(&article)
//
// Custom transforms can be added with Register.
package strutil
