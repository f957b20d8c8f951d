package i18n

import "errors"

var (
	// ErrNotSubset reports a content language missing from the system
	// language list. It is a configuration error: fix the settings rather
	// than retrying.
	ErrNotSubset = errors.New("i18n: content languages must be a subset of system languages")

	// ErrNoMatchingVariant reports that no configured content language can
	// serve the requested locale. Callers typically recover by falling
	// back to the site default.
	ErrNoMatchingVariant = errors.New("i18n: no supported content language variant")

	ErrEmptyLanguageTag    = errors.New("i18n: language tag cannot be empty")
	ErrInvalidLanguagePair = errors.New("i18n: invalid language pair")
)
