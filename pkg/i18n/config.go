package i18n

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config loads both language lists from the environment. Parse it with
// caarlos0/env alongside the rest of the application configuration:
//
//	CMS_LANGUAGES="en:English,de:German,pt-br:Portuguese (Brazil)"
//	CMS_CONTENT_LANGUAGES="en:English,pt-br:Portuguese (Brazil)"
//
//	var cfg i18n.Config
//	if err := env.Parse(&cfg); err != nil { ... }
//	resolver := i18n.NewResolver(cfg)
type Config struct {
	SystemLanguages LanguageList `env:"CMS_LANGUAGES" envDefault:"en:English"`
	Content         LanguageList `env:"CMS_CONTENT_LANGUAGES" envDefault:"en:English"`
}

// NewConfigFromEnv parses Config from the process environment.
func NewConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("i18n: parse language config: %w", err)
	}
	return cfg, nil
}

// Languages implements Settings.
func (c Config) Languages() ([]Language, error) {
	return c.SystemLanguages, nil
}

// ContentLanguages implements Settings.
func (c Config) ContentLanguages() ([]Language, error) {
	return c.Content, nil
}

// LanguageList parses "code:Display,code:Display" text, the encoding used
// in environment variables. Display names may contain spaces and colons;
// only the first colon per entry separates code from name.
type LanguageList []Language

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LanguageList) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*l = nil
		return nil
	}

	var langs []Language
	for entry := range strings.SplitSeq(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, display, ok := strings.Cut(entry, ":")
		code = normalizeTag(code)
		if !ok || code == "" || strings.TrimSpace(display) == "" {
			return fmt.Errorf("%w: %q", ErrInvalidLanguagePair, entry)
		}

		langs = append(langs, Language{Code: code, Display: strings.TrimSpace(display)})
	}

	*l = langs
	return nil
}

// String renders the list back into the environment encoding.
func (l LanguageList) String() string {
	parts := make([]string, len(l))
	for i, lang := range l {
		parts[i] = lang.Code + ":" + lang.Display
	}
	return strings.Join(parts, ",")
}
