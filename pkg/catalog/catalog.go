// Package catalog declares the remote media-catalog collaborator and the
// helpers that canonicalize its paginated results.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/media"
)

// Page is one slice of a paginated catalog response.
type Page struct {
	Items   []media.Ref
	HasNext bool
}

// Catalog is the remote media database. Implementations live outside this
// module; consumers depend only on this contract.
type Catalog interface {
	Get(ctx context.Context, kind media.Kind, id int64) (media.Ref, error)
	Search(ctx context.Context, kind media.Kind, query string, page int) (Page, error)
}

// ProgressFunc reports pagination progress: (pages fetched, items so far).
type ProgressFunc func(pages, items int)

// ErrNoCatalog is returned when a catalog-backed operation runs without a
// configured collaborator.
var ErrNoCatalog = errors.New("catalog: no catalog configured")

// Collect drains a search across pages, deduplicating across page boundaries.
// Pages from the remote overlap when items shift between requests; the merged
// result keeps first-seen order. maxPages 0 means no limit.
func Collect(ctx context.Context, c Catalog, kind media.Kind, query string, maxPages int, progress ProgressFunc) ([]media.Ref, error) {
	if c == nil {
		return nil, ErrNoCatalog
	}
	merged := make([]media.Ref, 0)
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := c.Search(ctx, kind, query, page)
		if err != nil {
			return nil, fmt.Errorf("catalog: search page %d: %w", page, err)
		}
		merged = append(merged, p.Items...)
		merged = Dedupe(merged)
		if progress != nil {
			progress(page, len(merged))
		}
		if !p.HasNext || (maxPages > 0 && page >= maxPages) {
			return merged, nil
		}
	}
}
