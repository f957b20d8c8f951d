// Package strcase converts between identifier casing conventions.
package strcase

import (
	"strings"
	"unicode"
)

// CamelToSnake converts camel-case identifiers to snake_case.
// An underscore is inserted before every upper-case letter that follows a
// lower-case letter or digit, then the whole string is lower-cased. Runes
// that are not letters or digits (spaces, punctuation) pass through
// untouched, so mixed strings keep their separators:
//
//	CamelToSnake("HelloWorld")                        // "hello_world"
//	CamelToSnake("longValueWithVarious subStrings")   // "long_value_with_various sub_strings"
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	var prev rune
	for _, r := range s {
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	return b.String()
}
