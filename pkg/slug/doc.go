// Package slug derives URL-safe identifiers from arbitrary strings.
//
// Two families of functions live here with different contracts.
//
// # Generation
//
// Make builds human-friendly slugs for new content, with configurable
// options for length limits, separators, and collision-resistant suffixes:
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
//	s = slug.Make("Long Article Title",
//		slug.MaxLength(20),
//		slug.WithSuffix(6),
//	)
//	// Output: "long-article-x3k7f9"
//
// Make folds common Latin diacritics to ASCII and replaces everything else
// (Cyrillic, CJK, emoji, punctuation) with separators. The mapping is
// lossy: distinct titles may produce the same slug.
//
// # Normalization
//
// Slugify, CautiousSlugify, and SafeSnakeCase normalize existing
// identifiers with exact, deterministic rules. Slugify is the plain ASCII
// slugifier: punctuation is stripped without leaving a separator, and
// non-ASCII characters that survive decomposition are dropped.
// CautiousSlugify behaves identically for Latin input but replaces each
// non-Latin character with a code-point escape token instead of dropping
// it, so distinct non-Latin strings keep distinct slugs:
//
//	slug.Slugify("Hello, world!")        // "hello-world"
//	slug.CautiousSlugify("Спорт")        // "u0421u043fu043eu0440u0442"
//	slug.SafeSnakeCase("Hello, world!")  // "hello_world"
//
// Use Make for page URLs typed by humans, and the normalization family for
// machine-facing keys (form field names, file identifiers) where silently
// collapsing non-Latin input to nothing would lose information.
package slug
