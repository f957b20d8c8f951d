// Package pages models the hierarchical page tree and finds slugs that
// are unique among siblings.
//
// Page persistence belongs to the host CMS; this package talks to it
// through the ChildSlugLister interface and ships a pgx-backed Store
// implementation for PostgreSQL deployments. FindAvailableSlug resolves
// slug collisions with exactly one store query per call:
//
//	slug, err := pages.FindAvailableSlug(ctx, store, parentID, "home")
//	// "home" if free, otherwise "home-1", "home-2", ...
package pages
