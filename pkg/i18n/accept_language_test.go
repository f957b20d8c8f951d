package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbase/pagekit/pkg/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	resolver := i18n.NewResolver(testSettings())

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "exact match",
			header:   "de-at",
			expected: "de-at",
		},
		{
			name:     "quality order wins",
			header:   "pt-PT;q=0.9,en;q=0.5",
			expected: "pt-br",
		},
		{
			name:     "regional variant falls back to base",
			header:   "de-CH",
			expected: "de",
		},
		{
			name:     "unknown first tag falls through to next",
			header:   "xx-yy,en;q=0.8",
			expected: "en",
		},
		{
			name:     "missing quality defaults to one",
			header:   "en;q=0.2,de",
			expected: "de",
		},
		{
			name:     "whitespace tolerated",
			header:   " en-US , de ;q=0.9 ",
			expected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			variant, err := resolver.MatchAcceptLanguage(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, variant)
		})
	}

	t.Run("empty header fails", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.MatchAcceptLanguage("")
		assert.ErrorIs(t, err, i18n.ErrNoMatchingVariant)
	})

	t.Run("wildcard only fails", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.MatchAcceptLanguage("*")
		assert.ErrorIs(t, err, i18n.ErrNoMatchingVariant)
	})

	t.Run("nothing resolvable fails", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.MatchAcceptLanguage("xx,yy-zz;q=0.5")
		assert.ErrorIs(t, err, i18n.ErrNoMatchingVariant)
	})

	t.Run("oversized header is truncated not rejected", func(t *testing.T) {
		t.Parallel()

		header := "de," + strings.Repeat("x", 8192)
		variant, err := resolver.MatchAcceptLanguage(header)
		require.NoError(t, err)
		assert.Equal(t, "de", variant)
	})
}
