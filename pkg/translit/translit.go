// Package translit converts Unicode text to a best-effort ASCII approximation.
//
// The conversion is lossy but total: every rune maps to a deterministic ASCII
// sequence. Cyrillic and Greek become phonetic Latin, CJK ideographs become
// romanized syllables, fullwidth punctuation becomes its ASCII counterpart,
// and mathematical alphanumeric symbols collapse to plain letters:
//
//	translit.ToASCII("Спорт!")      // "Sport!"
//	translit.ToASCII("北亰")         // "BeiJing"
//	translit.ToASCII("Straßenbahn") // "Strassenbahn"
//
// Use this for display fallbacks and search keys, not for slugs: the mapping
// is not injective, so distinct inputs can collide. See pkg/slug for
// collision-aware slugification.
package translit

import (
	anyascii "github.com/anyascii/go"
)

// ToASCII transliterates s to ASCII. Runes without a known transliteration
// are replaced by the table default rather than dropped, so the result length
// loosely tracks the input.
func ToASCII(s string) string {
	return anyascii.Transliterate(s)
}
