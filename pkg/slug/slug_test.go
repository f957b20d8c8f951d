package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftbase/pagekit/pkg/slug"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "only punctuation", input: "???", expected: ""},
		{name: "simple text", input: "Hello world", expected: "hello-world"},
		{name: "underscore is preserved", input: "Hello_world", expected: "hello_world"},
		{name: "diacritics fold to base letters", input: "Hellö wörld", expected: "hello-world"},
		{name: "interior whitespace collapses", input: "Hello   world", expected: "hello-world"},
		{name: "surrounding whitespace trimmed", input: "   Hello world   ", expected: "hello-world"},
		{name: "punctuation next to space", input: "Hello, world!", expected: "hello-world"},
		{name: "punctuation between letters leaves no separator", input: "Hello*world", expected: "helloworld"},
		{name: "symbol between letters is dropped", input: "Hello☃world", expected: "helloworld"},
		{name: "non-latin letters are dropped", input: "Спорт!", expected: ""},
		{name: "hyphens are kept", input: "2020-05-29", expected: "2020-05-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Slugify(tt.input))
		})
	}
}

// CautiousSlugify must agree with Slugify on every string that carries no
// non-Latin characters.
func TestCautiousSlugifyMatchesSlugifyForLatin(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"???",
		"Hello world",
		"Hello_world",
		"Hellö wörld",
		"Hello   world",
		"   Hello world   ",
		"Hello, world!",
		"Hello*world",
		"Hello☃world",
		"Screenshot_2020-05-29 Screenshot(1).png",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, slug.Slugify(input), slug.CautiousSlugify(input))
		})
	}
}

func TestCautiousSlugifyEscapesNonLatin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sharp s gets a latin-1 escape",
			input:    "Straßenbahn",
			expected: "straxdfenbahn",
		},
		{
			name:     "cyrillic letters get four-digit escapes",
			input:    "Спорт!",
			expected: "u0421u043fu043eu0440u0442",
		},
		{
			name:     "cjk ideographs escape and brackets vanish",
			input:    "〔山脈〕",
			expected: "u5c71u8108",
		},
		{
			name:     "supplementary plane runes get eight-digit escapes",
			input:    "\U00020021",
			expected: "u00020021",
		},
		{
			name:     "escapes are deterministic per rune",
			input:    "ДаДа",
			expected: "u0414u0430u0414u0430",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.CautiousSlugify(tt.input))
		})
	}
}

func TestSafeSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "only punctuation", input: "???", expected: ""},
		{name: "hyphen becomes underscore", input: "using-Hyphen", expected: "using_hyphen"},
		{name: "en dash is stripped", input: "en–⁠dash", expected: "endash"},
		{name: "em dash is stripped", input: "  em—dash ", expected: "emdash"},
		{name: "horizontal bar is stripped", input: "horizontal―BAR", expected: "horizontalbar"},
		{name: "simple text", input: "Hello world", expected: "hello_world"},
		{name: "underscore preserved", input: "Hello_world", expected: "hello_world"},
		{name: "diacritics fold", input: "Hellö wörld", expected: "hello_world"},
		{name: "whitespace runs collapse", input: "Hello   world", expected: "hello_world"},
		{name: "surrounding whitespace trimmed", input: "   Hello world   ", expected: "hello_world"},
		{name: "punctuation with space", input: "Hello, world!", expected: "hello_world"},
		{name: "punctuation between letters dropped", input: "Hello*world", expected: "helloworld"},
		{
			name:     "filename with parens and dots",
			input:    "Screenshot_2020-05-29 Screenshot(1).png",
			expected: "screenshot_2020_05_29_screenshot1png",
		},
		{
			name:     "non-latin words keep escape tokens",
			input:    "Straßenbahn Straßenbahn",
			expected: "straxdfenbahn_straxdfenbahn",
		},
		{
			name:     "cyrillic words keep escape tokens",
			input:    "Сп орт!",
			expected: "u0421u043f_u043eu0440u0442",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.SafeSnakeCase(tt.input))
		})
	}
}
