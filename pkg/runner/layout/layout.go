package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Action selects what the layout runner does.
type Action int

const (
	ActionList Action = iota
	ActionShow
	ActionHide
	ActionRename
	ActionMove
)

// Layout edits the ordered home-section descriptors.
type Layout struct {
	Action Action
	ID     string
	Title  string
	Index  int

	Store *store.Store
}

func (n *Layout) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit layout, no store")
	}

	switch n.Action {
	case ActionShow:
		if err := n.Store.SetSectionHidden(n.ID, false); err != nil {
			return err
		}
	case ActionHide:
		if err := n.Store.SetSectionHidden(n.ID, true); err != nil {
			return err
		}
	case ActionRename:
		if err := n.Store.RenameSection(n.ID, n.Title); err != nil {
			return err
		}
	case ActionMove:
		if err := n.Store.MoveSection(n.ID, n.Index); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Sections(n.Store.Sections())
	return nil
}
