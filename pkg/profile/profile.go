// Package profile holds the complete local user state and its portable
// backup document.
package profile

import (
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/reminder"
)

// AuthMode is how the local profile is guarded.
type AuthMode string

const (
	AuthNone  AuthMode = "none"
	AuthLocal AuthMode = "local"
)

// NewsRef points at a pinned or favorited news article.
type NewsRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Image string `json:"image,omitempty"`
}

// Section is one home-screen section descriptor.
type Section struct {
	ID     string `json:"id"`
	Hidden bool   `json:"hidden,omitempty"`
	Title  string `json:"title,omitempty"` // custom title, empty = default
}

// DefaultSections returns the home layout for a fresh profile.
func DefaultSections() []Section {
	return []Section{
		{ID: "continue-watching"},
		{ID: "schedule"},
		{ID: "news"},
		{ID: "favorites"},
		{ID: "seasonal"},
	}
}

// Profile is the whole local state: tracked lists grouped by status, news
// pins, notifications, reminders, and the home layout.
type Profile struct {
	AuthMode      AuthMode                       `json:"authMode"`
	Username      string                         `json:"username,omitempty"`
	Lists         map[media.Status][]*media.Entry `json:"lists"`
	Pinned        []NewsRef                      `json:"pinned"`
	Favorites     []NewsRef                      `json:"favorites"`
	Notifications []notify.Item                  `json:"notifications"`
	Reminders     []*reminder.Reminder           `json:"reminders"`
	Sections      []Section                      `json:"sections"`

	// LastChecked is the due-reminder derivation watermark.
	LastChecked media.Timestamp `json:"lastChecked,omitempty"`
}

// New creates an empty profile with the default layout.
func New(username string) *Profile {
	return &Profile{
		AuthMode: AuthNone,
		Username: username,
		Lists:    make(map[media.Status][]*media.Entry),
		Sections: DefaultSections(),
	}
}

// Find locates the entry tracking the given canonical media id, whatever
// bucket it lives in.
func (p *Profile) Find(id int64) (*media.Entry, media.Status, bool) {
	for _, status := range media.AllStatuses() {
		for _, e := range p.Lists[status] {
			if e.CanonicalID() == id {
				return e, status, true
			}
		}
	}
	return nil, "", false
}

// Clone deep-copies the profile so callers can hand out snapshots.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		AuthMode:    p.AuthMode,
		Username:    p.Username,
		Lists:       make(map[media.Status][]*media.Entry, len(p.Lists)),
		LastChecked: p.LastChecked,
	}
	for status, entries := range p.Lists {
		bucket := make([]*media.Entry, 0, len(entries))
		for _, e := range entries {
			copied := *e
			bucket = append(bucket, &copied)
		}
		out.Lists[status] = bucket
	}
	out.Pinned = append([]NewsRef(nil), p.Pinned...)
	out.Favorites = append([]NewsRef(nil), p.Favorites...)
	out.Notifications = append([]notify.Item(nil), p.Notifications...)
	out.Reminders = make([]*reminder.Reminder, 0, len(p.Reminders))
	for _, r := range p.Reminders {
		copied := *r
		copied.RepeatOnDays = append([]int(nil), r.RepeatOnDays...)
		out.Reminders = append(out.Reminders, &copied)
	}
	out.Sections = append([]Section(nil), p.Sections...)
	return out
}
