// Package reminder models release reminders and computes their occurrence
// schedule. All schedule math is pure; callers supply "now".
package reminder

import (
	"sort"

	"github.com/google/uuid"

	"github.com/3mero/anilog/pkg/media"
)

// Reminder is a scheduled notification anchor. An empty RepeatOnDays means
// one-time at Start; otherwise the reminder recurs on the listed weekdays
// (0 = Sunday .. 6 = Saturday) at Start's time of day.
type Reminder struct {
	ID           string          `json:"id"`
	MediaID      int64           `json:"mediaId"`
	MediaKind    media.Kind      `json:"mediaKind"`
	Title        string          `json:"title"`
	Start        media.Timestamp `json:"startDateTime"`
	RepeatOnDays []int           `json:"repeatOnDays,omitempty"`
	Notes        string          `json:"notes,omitempty"`

	// Display cache so lists render without a catalog round trip.
	MediaTitle string `json:"mediaTitle,omitempty"`
	Image      string `json:"image,omitempty"`

	Created media.Timestamp `json:"created,omitempty"`
}

// New creates a reminder with a fresh id and normalized repeat days.
func New(title string, ref media.Ref, start media.Timestamp, days []int) *Reminder {
	return &Reminder{
		ID:           uuid.New().String(),
		MediaID:      ref.CanonicalID(),
		MediaKind:    ref.Kind,
		Title:        title,
		Start:        start,
		RepeatOnDays: NormalizeDays(days),
		MediaTitle:   ref.Title,
		Image:        ref.Image,
	}
}

// Recurring reports whether the reminder repeats on weekdays.
func (r *Reminder) Recurring() bool {
	return len(NormalizeDays(r.RepeatOnDays)) > 0
}

// NormalizeDays drops out-of-range weekday values, removes duplicates, and
// sorts ascending. Malformed schedule data never raises; it is filtered.
func NormalizeDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
