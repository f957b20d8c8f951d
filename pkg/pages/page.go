package pages

import "github.com/google/uuid"

// Page is a node in the site's page hierarchy. The slug is unique among
// the children of one parent; the full URL path of a page is the joined
// slugs of its ancestors.
type Page struct {
	ID       uuid.UUID
	ParentID uuid.NullUUID // unset for the tree root
	Depth    int           // root is depth 1
	Slug     string
	Title    string
	Locale   string
}

// Root reports whether the page is the tree root.
func (p Page) Root() bool {
	return !p.ParentID.Valid
}
