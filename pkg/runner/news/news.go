package news

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/profile"
	"github.com/3mero/anilog/pkg/store"
)

// Action selects what the news runner does.
type Action int

const (
	ActionList Action = iota
	ActionPin
	ActionUnpin
	ActionFavorite
	ActionUnfavorite
)

// News manages the pinned and favorite article lists. Pinning also ingests
// a news notification so the unread badge picks the article up.
type News struct {
	Action Action
	Ref    profile.NewsRef

	Store *store.Store
}

func (n *News) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not manage news, no store")
	}

	switch n.Action {
	case ActionPin:
		if err := n.Store.PinNews(n.Ref); err != nil {
			return err
		}
		if err := n.Store.NotifyNews(n.Ref.ID, n.Ref.Title); err != nil {
			return err
		}
	case ActionUnpin:
		if err := n.Store.UnpinNews(n.Ref.ID); err != nil {
			return err
		}
	case ActionFavorite:
		if err := n.Store.FavoriteNewsAdd(n.Ref); err != nil {
			return err
		}
	case ActionUnfavorite:
		if err := n.Store.FavoriteNewsRemove(n.Ref.ID); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.News("pinned", n.Store.PinnedNews())
	pp.News("favorites", n.Store.FavoriteNews())
	return nil
}
