package slug

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/transform"
)

const defaultSuffixLength = 6

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	mixedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// foldExceptions maps Latin letters that do not decompose into base letter
// plus combining mark. Case is preserved so Lowercase(false) keeps it.
var foldExceptions = map[rune]string{
	'ß': "s",
	'æ': "a", 'Æ': "A",
	'œ': "o", 'Œ': "O",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ł': "l", 'Ł': "L",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
}

// Make generates a URL-safe slug from s.
//
// Common Latin diacritics fold to their base letters; every run of other
// characters (punctuation, whitespace, unsupported scripts) becomes a
// single separator. Options control case, separators, length bounds,
// random suffixes and reserved-slug avoidance; see the package
// documentation for the full list.
func Make(s string, opts ...Option) string {
	cfg := config{
		separator: "-",
		lowercase: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	for from, to := range cfg.replacements {
		s = strings.ReplaceAll(s, from, to)
	}
	if cfg.stripChars != "" {
		s = stripRunes(s, cfg.stripChars)
	}

	out := joinWords(foldLatin(s), cfg.separator)
	if cfg.lowercase {
		out = strings.ToLower(out)
	}
	out = truncate(out, cfg.maxLength, cfg.separator)

	suffixLen := cfg.suffixLength
	if suffixLen == 0 && cfg.reserved[strings.ToLower(out)] {
		suffixLen = defaultSuffixLength
	}
	if suffixLen > 0 {
		out = appendSuffix(out, suffixLen, cfg)
	}

	if cfg.minLength > 0 {
		out = padToMinLength(out, cfg)
	}

	return out
}

// joinWords splits s into runs of ASCII alphanumerics and joins them with
// the separator. Everything else, multi-byte runes included, acts as a
// word boundary.
func joinWords(s, separator string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	})
	return strings.Join(words, separator)
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// foldLatin converts accented Latin letters to plain ASCII, first through
// the exception table and then by stripping combining marks.
func foldLatin(s string) string {
	if m := strings.IndexFunc(s, func(r rune) bool { _, ok := foldExceptions[r]; return ok }); m >= 0 {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if repl, ok := foldExceptions[r]; ok {
				b.WriteString(repl)
				continue
			}
			b.WriteRune(r)
		}
		s = b.String()
	}

	folded, _, err := transform.String(decomposer, s)
	if err != nil {
		return s
	}
	return folded
}

func stripRunes(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

// truncate cuts s to maxLength runes and drops any separator characters
// the cut leaves dangling. maxLength <= 0 means unbounded.
func truncate(s string, maxLength int, separator string) string {
	if maxLength <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > maxLength {
		s = string(runes[:maxLength])
	}
	if separator != "" {
		s = strings.TrimRight(s, separator)
	}
	return s
}

// appendSuffix attaches a random alphanumeric suffix, shrinking the suffix
// or the base as needed to honor MaxLength.
func appendSuffix(s string, suffixLen int, cfg config) string {
	sepLen := len([]rune(cfg.separator))

	if cfg.maxLength > 0 {
		baseLen := len([]rune(s))
		if baseLen+sepLen+suffixLen > cfg.maxLength {
			if avail := cfg.maxLength - baseLen - sepLen; avail >= 1 {
				suffixLen = avail
			} else {
				keep := cfg.maxLength - sepLen - suffixLen
				if keep < 1 {
					keep = 1
				}
				s = truncate(s, keep, cfg.separator)
			}
		}
	}

	return s + cfg.separator + randomString(suffixLen, cfg.lowercase)
}

func padToMinLength(s string, cfg config) string {
	have := len([]rune(s))
	if have >= cfg.minLength {
		return s
	}
	pad := cfg.minLength - have - len([]rune(cfg.separator))
	if pad < 1 {
		pad = 1
	}
	return s + cfg.separator + randomString(pad, cfg.lowercase)
}

func randomString(n int, lowercase bool) string {
	alphabet := mixedAlphabet
	if lowercase {
		alphabet = lowerAlphabet
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
