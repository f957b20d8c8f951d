package i18n

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// FileSettings reads both language lists from a YAML file on every call,
// so configuration edits are visible without reconstructing the resolver.
//
// File format:
//
//	languages:
//	  - code: en
//	    display: English
//	  - code: de
//	    display: German
//	content_languages:
//	  - code: en
//	    display: English
type FileSettings struct {
	fsys fs.FS
	path string
}

// NewFileSettings returns settings backed by path inside fsys. Use
// os.DirFS for plain files.
func NewFileSettings(fsys fs.FS, path string) *FileSettings {
	return &FileSettings{fsys: fsys, path: path}
}

type languageFile struct {
	Languages        []languageEntry `yaml:"languages"`
	ContentLanguages []languageEntry `yaml:"content_languages"`
}

type languageEntry struct {
	Code    string `yaml:"code"`
	Display string `yaml:"display"`
}

// Languages implements Settings.
func (f *FileSettings) Languages() ([]Language, error) {
	parsed, err := f.load()
	if err != nil {
		return nil, err
	}
	return convertEntries(parsed.Languages)
}

// ContentLanguages implements Settings.
func (f *FileSettings) ContentLanguages() ([]Language, error) {
	parsed, err := f.load()
	if err != nil {
		return nil, err
	}
	return convertEntries(parsed.ContentLanguages)
}

func (f *FileSettings) load() (languageFile, error) {
	data, err := fs.ReadFile(f.fsys, f.path)
	if err != nil {
		return languageFile{}, fmt.Errorf("i18n: reading %q: %w", f.path, err)
	}

	var parsed languageFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return languageFile{}, fmt.Errorf("i18n: parsing %q: %w", f.path, err)
	}
	return parsed, nil
}

func convertEntries(entries []languageEntry) ([]Language, error) {
	langs := make([]Language, 0, len(entries))
	for _, e := range entries {
		code := normalizeTag(e.Code)
		if code == "" || e.Display == "" {
			return nil, fmt.Errorf("%w: code=%q display=%q", ErrInvalidLanguagePair, e.Code, e.Display)
		}
		langs = append(langs, Language{Code: code, Display: e.Display})
	}
	return langs, nil
}
