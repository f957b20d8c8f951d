package slug

import "strings"

type config struct {
	separator    string
	lowercase    bool
	maxLength    int
	minLength    int
	suffixLength int
	stripChars   string
	replacements map[string]string
	reserved     map[string]bool
}

// Option configures slug generation in Make.
type Option func(*config)

// Separator sets the string inserted between words. Defaults to "-".
func Separator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// Lowercase controls case conversion. Defaults to true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// MaxLength limits the slug to n runes, trimming dangling separators after
// the cut. Zero or negative means unbounded.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// MinLength pads slugs shorter than n runes with a random suffix.
func MinLength(n int) Option {
	return func(c *config) {
		c.minLength = n
	}
}

// StripChars removes the given characters from the input before
// slugification.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification, useful
// for symbols with conventional spellings ("&" to "and").
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.replacements = replacements
	}
}

// WithSuffix always appends a random alphanumeric suffix of n characters,
// separated from the slug body by the configured separator.
func WithSuffix(n int) Option {
	return func(c *config) {
		c.suffixLength = n
	}
}

// ReservedSlugs registers slugs that must not be returned as-is; when the
// generated slug matches one (case-insensitively), a random suffix is
// appended.
func ReservedSlugs(slugs ...string) Option {
	return func(c *config) {
		if c.reserved == nil {
			c.reserved = make(map[string]bool, len(slugs))
		}
		for _, s := range slugs {
			c.reserved[strings.ToLower(s)] = true
		}
	}
}
