// Package notify models the in-app notification feed. Every transformation
// here returns a new slice; callers hand in snapshots and never see them
// mutated.
package notify

import (
	"github.com/google/uuid"

	"github.com/3mero/anilog/pkg/media"
)

// Category tags the source of a notification.
type Category string

const (
	CategoryNews     Category = "news"
	CategoryUpdate   Category = "update"
	CategoryReminder Category = "reminder"

	// CategoryNone is the aggregate priority when nothing is unseen.
	CategoryNone Category = "none"
)

// Item is a dismissible unread signal. Subject identifies what the item is
// about (an article id, a reminder id); (Category, Subject) is the
// uniqueness key for live notifications.
type Item struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Subject  string          `json:"subject"`
	Title    string          `json:"title,omitempty"`
	Seen     bool            `json:"seen"`
	Created  media.Timestamp `json:"created,omitempty"`
}

// New creates an unseen item with a fresh id.
func New(category Category, subject, title string, created media.Timestamp) Item {
	return Item{
		ID:       uuid.New().String(),
		Category: category,
		Subject:  subject,
		Title:    title,
		Created:  created,
	}
}

// Key returns the live-uniqueness key.
func (i Item) Key() string {
	return string(i.Category) + "/" + i.Subject
}

// Append adds it to items unless a live notification with the same key
// already exists. The input slice is not modified.
func Append(items []Item, it Item) []Item {
	for _, existing := range items {
		if existing.Key() == it.Key() {
			out := make([]Item, len(items))
			copy(out, items)
			return out
		}
	}
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

// CountUnseen counts unseen items matching the predicate. A nil predicate
// matches everything.
func CountUnseen(items []Item, pred func(Item) bool) int {
	n := 0
	for _, i := range items {
		if i.Seen {
			continue
		}
		if pred == nil || pred(i) {
			n++
		}
	}
	return n
}

// Summary is the derived unread state for badges.
type Summary struct {
	NewsUnseen     int
	ReminderUnseen int
	Total          int
	Priority       Category
}

// Aggregate derives the summary in a single pass. Reminders always outrank
// news for the priority badge.
func Aggregate(items []Item) Summary {
	var s Summary
	for _, i := range items {
		if i.Seen {
			continue
		}
		s.Total++
		switch i.Category {
		case CategoryReminder:
			s.ReminderUnseen++
		case CategoryNews:
			s.NewsUnseen++
		}
	}
	switch {
	case s.ReminderUnseen > 0:
		s.Priority = CategoryReminder
	case s.NewsUnseen > 0:
		s.Priority = CategoryNews
	default:
		s.Priority = CategoryNone
	}
	return s
}

// MarkSeen returns a copy of items with the given id flagged seen.
func MarkSeen(items []Item, id string) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for idx := range out {
		if out[idx].ID == id {
			out[idx].Seen = true
		}
	}
	return out
}

// MarkAllSeen returns a copy with every item of the category flagged seen.
// An empty category flags everything.
func MarkAllSeen(items []Item, category Category) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for idx := range out {
		if category == "" || out[idx].Category == category {
			out[idx].Seen = true
		}
	}
	return out
}

// ClearCategory returns a copy with the category's items removed. An empty
// category clears everything.
func ClearCategory(items []Item, category Category) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		if category != "" && i.Category != category {
			out = append(out, i)
		}
	}
	return out
}
