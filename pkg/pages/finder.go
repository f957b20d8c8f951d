package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ChildSlugLister is the slug-uniqueness query the page store must
// answer: all slugs used by children of parent that begin with prefix,
// in a single round trip.
type ChildSlugLister interface {
	ChildSlugs(ctx context.Context, parent uuid.UUID, prefix string) ([]string, error)
}

// FindAvailableSlug returns requested if no child of parent uses it yet,
// otherwise the first free candidate among "requested-1", "requested-2",
// and so on.
//
// The store is queried exactly once, for every child slug beginning with
// the requested slug; candidates are then tested against that set in
// memory, so the cost does not grow with the number of collisions. The
// numbered candidates always terminate because sibling sets are finite.
func FindAvailableSlug(ctx context.Context, store ChildSlugLister, parent uuid.UUID, requested string) (string, error) {
	existing, err := store.ChildSlugs(ctx, parent, requested)
	if err != nil {
		return "", fmt.Errorf("pages: listing child slugs of %s: %w", parent, err)
	}

	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}

	candidate := requested
	for number := 1; taken[candidate]; number++ {
		candidate = requested + "-" + strconv.Itoa(number)
	}

	return candidate, nil
}
