package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Action selects what the notifications runner does.
type Action int

const (
	ActionList Action = iota
	ActionSeen
	ActionSeenAll
	ActionClear
)

// Notifications lists the feed and applies seen/clear transitions. Listing
// first derives any newly due reminders so the feed is current.
type Notifications struct {
	Action   Action
	ID       string
	Category notify.Category
	ShowID   bool

	Store *store.Store
}

func (n *Notifications) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list notifications, no store")
	}

	switch n.Action {
	case ActionList:
		if _, err := n.Store.DeriveDue(); err != nil {
			return err
		}
	case ActionSeen:
		if err := n.Store.MarkSeen(n.ID); err != nil {
			return err
		}
	case ActionSeenAll:
		if err := n.Store.MarkAllSeen(n.Category); err != nil {
			return err
		}
	case ActionClear:
		if err := n.Store.ClearNotifications(n.Category); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Notifications(n.Store.Notifications())
	return nil
}
