package pages_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbase/pagekit/pkg/pages"
)

// fakeLister answers ChildSlugs from an in-memory slug set and counts
// queries so tests can pin the one-query contract.
type fakeLister struct {
	slugs   map[uuid.UUID][]string
	queries int
	err     error
}

func (f *fakeLister) ChildSlugs(_ context.Context, parent uuid.UUID, prefix string) ([]string, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}

	var matched []string
	for _, s := range f.slugs[parent] {
		if strings.HasPrefix(s, prefix) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func TestFindAvailableSlug(t *testing.T) {
	t.Parallel()

	root := uuid.New()

	t.Run("unused slug returned unchanged", func(t *testing.T) {
		t.Parallel()

		store := &fakeLister{slugs: map[uuid.UUID][]string{
			root: {"home", "home-1", "about"},
		}}

		slug, err := pages.FindAvailableSlug(t.Context(), store, root, "unique-slug")
		require.NoError(t, err)
		assert.Equal(t, "unique-slug", slug)
		assert.Equal(t, 1, store.queries)
	})

	t.Run("collisions resolve with one query", func(t *testing.T) {
		t.Parallel()

		store := &fakeLister{slugs: map[uuid.UUID][]string{
			root: {"home", "home-1"},
		}}

		slug, err := pages.FindAvailableSlug(t.Context(), store, root, "home")
		require.NoError(t, err)
		assert.Equal(t, "home-2", slug)
		assert.Equal(t, 1, store.queries)
	})

	t.Run("many collisions still one query", func(t *testing.T) {
		t.Parallel()

		taken := []string{"news"}
		for i := 1; i <= 50; i++ {
			taken = append(taken, "news-"+strconv.Itoa(i))
		}
		store := &fakeLister{slugs: map[uuid.UUID][]string{root: taken}}

		slug, err := pages.FindAvailableSlug(t.Context(), store, root, "news")
		require.NoError(t, err)
		assert.Equal(t, "news-51", slug)
		assert.Equal(t, 1, store.queries)
	})

	t.Run("numbered variants only block their own candidate", func(t *testing.T) {
		t.Parallel()

		store := &fakeLister{slugs: map[uuid.UUID][]string{
			root: {"home-1", "home-3"},
		}}

		slug, err := pages.FindAvailableSlug(t.Context(), store, root, "home")
		require.NoError(t, err)
		assert.Equal(t, "home", slug)
	})

	t.Run("siblings of other parents do not collide", func(t *testing.T) {
		t.Parallel()

		other := uuid.New()
		store := &fakeLister{slugs: map[uuid.UUID][]string{
			other: {"home"},
		}}

		slug, err := pages.FindAvailableSlug(t.Context(), store, root, "home")
		require.NoError(t, err)
		assert.Equal(t, "home", slug)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		store := &fakeLister{err: storeErr}

		_, err := pages.FindAvailableSlug(t.Context(), store, root, "home")
		assert.ErrorIs(t, err, storeErr)
	})
}
