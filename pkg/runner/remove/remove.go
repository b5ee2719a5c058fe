package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Remove deletes one tracked title, or clears a whole bucket when Status is
// set instead of ID.
type Remove struct {
	ID     int64
	Status media.Status
	ShowID bool

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}

	if n.Status != "" {
		if err := n.Store.Clear(n.Status); err != nil {
			return err
		}
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		fmt.Println("")
		pp.Bucket(n.Status, n.Store.Bucket(n.Status))
		return nil
	}

	if err := n.Store.Remove(n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	for _, status := range media.AllStatuses() {
		bucket := n.Store.Bucket(status)
		if len(bucket) == 0 {
			continue
		}
		pp.Bucket(status, bucket)
	}
	return nil
}
