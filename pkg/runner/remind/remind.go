package remind

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/printers"
	"github.com/3mero/anilog/pkg/reminder"
	"github.com/3mero/anilog/pkg/store"
)

// Action selects what the remind runner does.
type Action int

const (
	ActionList Action = iota
	ActionAdd
	ActionRemove
	ActionUpcoming
	ActionWeek
)

// Remind manages release reminders and their schedule views.
type Remind struct {
	Action Action

	// Add fields.
	Title   string
	MediaID int64
	Kind    media.Kind
	Start   media.Timestamp
	Days    []int
	Notes   string

	// Remove field.
	ID string

	Store *store.Store
	Clock store.Clock
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remind, no store")
	}
	clock := n.Clock
	if clock == nil {
		clock = store.SystemClock()
	}
	pp := printers.PrettyPrint{ShowID: true}

	switch n.Action {
	case ActionAdd:
		r := &reminder.Reminder{
			Title:        n.Title,
			MediaID:      n.MediaID,
			MediaKind:    n.Kind,
			Start:        n.Start,
			RepeatOnDays: n.Days,
			Notes:        n.Notes,
		}
		if _, err := n.Store.UpsertReminder(r); err != nil {
			return err
		}

	case ActionRemove:
		if err := n.Store.RemoveReminder(n.ID); err != nil {
			return err
		}

	case ActionWeek:
		fmt.Println("")
		pp.Week(reminder.GroupByWeekday(n.Store.Reminders()))
		return nil

	case ActionUpcoming:
		now := clock.Now()
		reminders := n.Store.Reminders()
		sort.SliceStable(reminders, func(i, j int) bool {
			return reminder.NextOccurrence(reminders[i], now).Before(reminder.NextOccurrence(reminders[j], now))
		})
		fmt.Println("")
		pp.Reminders(reminders, now)
		return nil
	}

	fmt.Println("")
	reminders := n.Store.Reminders()
	if len(reminders) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no reminders\n\n")
		return nil
	}
	pp.Reminders(reminders, clock.Now())
	return nil
}
