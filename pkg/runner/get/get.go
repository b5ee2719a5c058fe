package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Get lists one status bucket, or all of them.
type Get struct {
	ShowID bool
	Status media.Status
	All    bool

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if !n.All && n.Status != "" {
		pp.Bucket(n.Status, n.Store.Bucket(n.Status))
		return nil
	}

	for _, status := range media.AllStatuses() {
		bucket := n.Store.Bucket(status)
		if len(bucket) == 0 && !n.All {
			continue
		}
		pp.Bucket(status, bucket)
	}
	return nil
}
