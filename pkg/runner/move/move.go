package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Move relocates a tracked title into another status bucket.
type Move struct {
	ID     int64
	To     media.Status
	ShowID bool

	Store *store.Store
}

func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move, no store")
	}

	if err := n.Store.Move(n.ID, n.To); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Bucket(n.To, n.Store.Bucket(n.To))
	return nil
}
