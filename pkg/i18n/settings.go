package i18n

import "strings"

// Language pairs a locale code with its human-readable display name.
type Language struct {
	Code    string
	Display string
}

// Settings supplies the two configured language lists. Both are ordered:
// resolution falls back to the first configured variant of a base
// language, so configuration order is meaningful. Implementations are
// read on every call and must not cache staleness-sensitive state on
// behalf of the caller.
type Settings interface {
	// Languages returns the system-wide supported languages, the superset
	// every content language must belong to.
	Languages() ([]Language, error)

	// ContentLanguages returns the languages enabled for translatable
	// content.
	ContentLanguages() ([]Language, error)
}

// Static is a Settings implementation over literal lists, useful for tests
// and for applications that wire configuration themselves.
type Static struct {
	SystemLanguages []Language
	Content         []Language
}

// Languages implements Settings.
func (s Static) Languages() ([]Language, error) {
	return s.SystemLanguages, nil
}

// ContentLanguages implements Settings.
func (s Static) ContentLanguages() ([]Language, error) {
	return s.Content, nil
}

// normalizeTag lowercases a locale tag for comparison. Configured codes
// and requested tags both pass through here so "de-AT" matches "de-at".
func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
