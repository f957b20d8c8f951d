package i18n

import (
	"fmt"
	"strings"
)

// Resolver answers content-language questions against a Settings provider.
// It holds no language state of its own: settings are consulted on every
// call, so a provider that observes configuration changes is reflected
// immediately.
type Resolver struct {
	settings Settings
}

// NewResolver creates a Resolver over the given settings.
func NewResolver(settings Settings) *Resolver {
	return &Resolver{settings: settings}
}

// ContentLanguages returns the configured content languages as a map from
// code to display name. Every content language code must also appear in
// the system language list; a violation returns an ErrNotSubset error
// naming the offending code.
func (r *Resolver) ContentLanguages() (map[string]string, error) {
	content, err := r.checkedContentLanguages()
	if err != nil {
		return nil, err
	}

	languages := make(map[string]string, len(content))
	for _, lang := range content {
		languages[lang.Code] = lang.Display
	}
	return languages, nil
}

// ContentLanguageVariant resolves a requested locale tag to a configured
// content language code.
//
// The requested tag is matched exactly first, then by progressively
// truncating subtags ("de-ch-1901" falls back to "de-ch", then "de") —
// still requiring an exact configured code at each step. When strict is
// false and no truncation matches, the first configured variant of the
// base language wins, in configuration order: requesting "pt" returns
// "pt-br" when that is the only Portuguese configured. When strict is
// true that last sweep is skipped.
//
// An ErrNoMatchingVariant error reports that nothing configured can serve
// the tag.
func (r *Resolver) ContentLanguageVariant(tag string, strict bool) (string, error) {
	tag = normalizeTag(tag)
	if tag == "" {
		return "", ErrEmptyLanguageTag
	}

	content, err := r.checkedContentLanguages()
	if err != nil {
		return "", err
	}

	configured := make(map[string]bool, len(content))
	for _, lang := range content {
		configured[lang.Code] = true
	}

	// The requested tag, then every truncation of it. The last entry is
	// the bare base language.
	candidates := []string{tag}
	for i := len(tag); ; {
		i = strings.LastIndexByte(tag[:i], '-')
		if i < 0 {
			break
		}
		candidates = append(candidates, tag[:i])
	}

	for _, candidate := range candidates {
		if configured[candidate] {
			return candidate, nil
		}
	}

	if !strict {
		base := candidates[len(candidates)-1]
		for _, lang := range content {
			if strings.HasPrefix(lang.Code, base+"-") {
				return lang.Code, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNoMatchingVariant, tag)
}

// checkedContentLanguages loads the content languages and enforces the
// subset invariant against the system language list.
func (r *Resolver) checkedContentLanguages() ([]Language, error) {
	system, err := r.settings.Languages()
	if err != nil {
		return nil, err
	}
	content, err := r.settings.ContentLanguages()
	if err != nil {
		return nil, err
	}

	systemCodes := make(map[string]bool, len(system))
	for _, lang := range system {
		systemCodes[normalizeTag(lang.Code)] = true
	}

	normalized := make([]Language, len(content))
	for i, lang := range content {
		code := normalizeTag(lang.Code)
		if !systemCodes[code] {
			return nil, fmt.Errorf(
				"%w: the language %q is specified in CMS_CONTENT_LANGUAGES but not CMS_LANGUAGES",
				ErrNotSubset, code,
			)
		}
		normalized[i] = Language{Code: code, Display: lang.Display}
	}

	return normalized, nil
}
