package i18n

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing; anything longer is a
// hostile client, not a browser.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag     string
	quality float64
}

// MatchAcceptLanguage resolves an Accept-Language header against the
// configured content languages. Each header tag is tried in descending
// quality order through ContentLanguageVariant in non-strict mode, so
// "pt-PT,en;q=0.5" lands on a configured "pt-br" before considering
// English. An empty or wildcard-only header, or one where nothing
// resolves, returns an ErrNoMatchingVariant error; callers fall back to
// the site default language.
func (r *Resolver) MatchAcceptLanguage(header string) (string, error) {
	for _, candidate := range parseAcceptLanguage(header) {
		variant, err := r.ContentLanguageVariant(candidate.tag, false)
		if err == nil {
			return variant, nil
		}
		if errors.Is(err, ErrNotSubset) {
			// Broken configuration, not a resolvable miss.
			return "", err
		}
	}
	return "", ErrNoMatchingVariant
}

// parseAcceptLanguage splits an Accept-Language header into tags sorted by
// descending quality. Wildcards and malformed quality values are dropped;
// a missing q defaults to 1.
func parseAcceptLanguage(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		lang, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang = normalizeTag(lang)
		if lang == "" || lang == "*" {
			continue
		}

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil || parsed < 0 || parsed > 1 {
				continue
			}
			quality = parsed
		}

		tags = append(tags, weightedTag{tag: lang, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}
