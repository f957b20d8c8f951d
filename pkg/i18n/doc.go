// Package i18n resolves requested locales against configured content
// languages.
//
// A site serves translatable content in a configured subset of the
// languages its UI supports. Both lists are ordered (code, display name)
// pairs exposed through the Settings interface; the Resolver answers the
// two questions the content layer asks: "which languages can content be
// authored in" and "which configured language should serve this requested
// locale".
//
// # Basic Usage
//
//	settings := i18n.Static{
//		SystemLanguages: []i18n.Language{
//			{Code: "en", Display: "English"},
//			{Code: "de", Display: "German"},
//			{Code: "pt-br", Display: "Portuguese (Brazil)"},
//		},
//		Content: []i18n.Language{
//			{Code: "en", Display: "English"},
//			{Code: "de", Display: "German"},
//			{Code: "pt-br", Display: "Portuguese (Brazil)"},
//		},
//	}
//
//	resolver := i18n.NewResolver(settings)
//
//	variant, err := resolver.ContentLanguageVariant("pt", false)
//	// variant == "pt-br": no exact "pt", so the first configured
//	// variant of the base language wins.
//
//	_, err = resolver.ContentLanguageVariant("pt", true)
//	// strict mode: only exact configured codes match, so this fails
//	// with ErrNoMatchingVariant.
//
// Content languages must be a subset of the system languages; violations
// surface as ErrNotSubset from every Resolver method, carrying the
// offending code.
//
// # Settings Providers
//
// Static holds literal lists. Config loads both lists from the
// CMS_LANGUAGES and CMS_CONTENT_LANGUAGES environment variables in
// "code:Display,code:Display" form. FileSettings re-reads a YAML file on
// every call, so edits take effect without a restart.
package i18n
