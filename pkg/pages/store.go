package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicateSlug reports an insertion that would reuse a sibling's
	// slug. Call FindAvailableSlug first to avoid it.
	ErrDuplicateSlug = errors.New("pages: slug already used by a sibling")

	ErrNotFound = errors.New("pages: page not found")
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// Store is a PostgreSQL page store. It expects the host CMS schema:
//
//	CREATE TABLE pages (
//	    id        uuid PRIMARY KEY,
//	    parent_id uuid REFERENCES pages (id),
//	    depth     integer NOT NULL,
//	    slug      text NOT NULL,
//	    title     text NOT NULL,
//	    locale    text NOT NULL DEFAULT 'en',
//	    UNIQUE (parent_id, slug)
//	);
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over an established connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ChildSlugs implements ChildSlugLister with a single indexed query.
func (s *Store) ChildSlugs(ctx context.Context, parent uuid.UUID, prefix string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT slug FROM pages WHERE parent_id = $1 AND slug LIKE $2`,
		parent, escapeLike(prefix)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("pages: querying child slugs: %w", err)
	}

	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("pages: reading child slugs: %w", err)
	}
	return slugs, nil
}

// AddChild inserts page as a child of parent, assigning its ID, parent
// and depth. The page's slug must be free among the parent's children.
func (s *Store) AddChild(ctx context.Context, parent Page, page *Page) error {
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	page.ParentID = uuid.NullUUID{UUID: parent.ID, Valid: true}
	page.Depth = parent.Depth + 1
	if page.Locale == "" {
		page.Locale = parent.Locale
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO pages (id, parent_id, depth, slug, title, locale)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		page.ID, page.ParentID, page.Depth, page.Slug, page.Title, page.Locale,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q under %s", ErrDuplicateSlug, page.Slug, parent.ID)
		}
		return fmt.Errorf("pages: inserting page: %w", err)
	}
	return nil
}

// Children returns the direct children of parent ordered by slug.
func (s *Store) Children(ctx context.Context, parent uuid.UUID) ([]Page, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, parent_id, depth, slug, title, locale
		 FROM pages WHERE parent_id = $1 ORDER BY slug`,
		parent,
	)
	if err != nil {
		return nil, fmt.Errorf("pages: querying children: %w", err)
	}

	children, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Page])
	if err != nil {
		return nil, fmt.Errorf("pages: reading children: %w", err)
	}
	return children, nil
}

// Get fetches a page by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Page, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, parent_id, depth, slug, title, locale FROM pages WHERE id = $1`,
		id,
	)
	if err != nil {
		return Page{}, fmt.Errorf("pages: querying page: %w", err)
	}

	page, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[Page])
	if errors.Is(err, pgx.ErrNoRows) {
		return Page{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Page{}, fmt.Errorf("pages: reading page: %w", err)
	}
	return page, nil
}

// escapeLike neutralizes LIKE metacharacters so the prefix matches
// literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == pgUniqueViolation
}
