package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decomposer splits accented letters into base letter plus combining mark
// and strips the mark, so "ö" survives as "o". Letters that do not
// decompose (ß, Cyrillic, CJK) pass through untouched.
var decomposer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify converts s to a plain ASCII slug: decompose, strip diacritics,
// drop remaining non-ASCII, keep only word characters, whitespace and
// hyphens, lowercase, and collapse separator runs into single hyphens.
// Punctuation vanishes without leaving a separator, so "Hello*world"
// becomes "helloworld" while "Hello, world" becomes "hello-world".
func Slugify(s string) string {
	return slugify(s, false)
}

// CautiousSlugify behaves exactly like Slugify for Latin input, but
// replaces each non-Latin letter or digit with a deterministic code-point
// escape token ("x" plus two hex digits for Latin-1, "u" plus four or
// eight otherwise) instead of dropping it. Distinct non-Latin titles
// therefore keep distinct slugs, at the cost of readability:
//
//	CautiousSlugify("Straßenbahn") // "straxdfenbahn"
//	CautiousSlugify("Спорт!")      // "u0421u043fu043eu0440u0442"
func CautiousSlugify(s string) string {
	return slugify(s, true)
}

// SafeSnakeCase converts s to snake case with the same non-Latin escaping
// discipline as CautiousSlugify. The result contains only lowercase ASCII
// letters, digits and underscores; hyphens and whitespace become
// underscores and every other Unicode dash or punctuation mark is
// stripped:
//
//	SafeSnakeCase("using-Hyphen")  // "using_hyphen"
//	SafeSnakeCase("Сп орт!")        // "u0421u043f_u043eu0440u0442"
func SafeSnakeCase(s string) string {
	return strings.ReplaceAll(CautiousSlugify(s), "-", "_")
}

func slugify(s string, escape bool) string {
	decomposed, _, err := transform.String(decomposer, s)
	if err != nil {
		// Malformed UTF-8; operate on the raw string instead.
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))

	for _, r := range decomposed {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			b.WriteRune(r)
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			// Punctuation and symbols are stripped, not separated.
		case r < 0x80:
			b.WriteRune(unicode.ToLower(r))
		case escape:
			b.WriteString(escapeRune(r))
		}
	}

	return strings.Trim(collapseSeparators(strings.TrimSpace(b.String())), "-_")
}

// collapseSeparators rewrites every run of whitespace and hyphens as a
// single hyphen.
func collapseSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if r == '-' || unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// escapeRune renders a non-ASCII rune as a lowercase hex token whose width
// depends on the code point, matching the backslash-replace convention
// with the backslashes removed.
func escapeRune(r rune) string {
	switch {
	case r < 0x100:
		return fmt.Sprintf("x%02x", r)
	case r < 0x10000:
		return fmt.Sprintf("u%04x", r)
	default:
		return fmt.Sprintf("u%08x", r)
	}
}
