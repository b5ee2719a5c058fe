package log

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/store"
)

// Log applies a progress update to a tracked title. Absolute true replaces
// the counter, otherwise Amount is a delta.
type Log struct {
	ID       int64
	Amount   int
	Absolute bool
	ShowID   bool

	Store *store.Store
}

func (n *Log) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not log progress, no store")
	}

	e, err := n.Store.LogProgress(n.ID, n.Amount, n.Absolute)
	if err != nil {
		return err
	}
	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("\n %d is not tracked, nothing to log\n\n", n.ID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Bucket(e.Status, n.Store.Bucket(e.Status))
	return nil
}
