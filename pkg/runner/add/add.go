package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/catalog"
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Add tracks a title into a status bucket, optionally enriching it from the
// catalog first.
type Add struct {
	Kind     media.Kind
	ID       int64
	Title    string
	Total    int
	Image    string
	Status   media.Status
	Progress int
	ShowID   bool

	Store   *store.Store
	Catalog catalog.Catalog
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	ref := media.Ref{
		ID:    n.ID,
		Title: n.Title,
		Kind:  n.Kind,
		Total: n.Total,
		Image: n.Image,
	}

	if n.Catalog != nil {
		subject := fmt.Sprintf("media:%s:%d", n.Kind, n.ID)
		token := n.Store.BeginRequest(subject)
		fetched, err := n.Catalog.Get(ctx, n.Kind, n.ID)
		if err == nil {
			// A newer request for the same title wins; stale catalog
			// results are discarded instead of overwriting it.
			_ = n.Store.ResolveRequest(subject, token, func(*store.Store) error {
				ref = fetched
				return nil
			})
		}
	}

	e, err := n.Store.AddOrUpdate(ref, n.Status, n.Progress)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Bucket(e.Status, n.Store.Bucket(e.Status))
	return nil
}
