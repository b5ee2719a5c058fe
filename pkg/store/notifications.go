package store

import (
	"github.com/3mero/anilog/pkg/notify"
)

// Notifications returns a copy of the notification feed.
func (s *Store) Notifications() []notify.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Item(nil), s.profile.Notifications...)
}

// Unread aggregates the unseen state; recomputed per call, never cached.
func (s *Store) Unread() notify.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return notify.Aggregate(s.profile.Notifications)
}

// NotifyNews ingests a news notification for the subject, unless a live one
// already exists for it.
func (s *Store) NotifyNews(subject, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.profile.Notifications)
	item := notify.New(notify.CategoryNews, subject, title, s.now())
	s.profile.Notifications = notify.Append(s.profile.Notifications, item)
	if len(s.profile.Notifications) == before {
		return nil
	}
	return s.persistLocked()
}

// MarkSeen flags one notification as seen.
func (s *Store) MarkSeen(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Notifications = notify.MarkSeen(s.profile.Notifications, id)
	return s.persistLocked()
}

// MarkAllSeen flags a whole category as seen.
func (s *Store) MarkAllSeen(category notify.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Notifications = notify.MarkAllSeen(s.profile.Notifications, category)
	return s.persistLocked()
}

// ClearNotifications removes every notification of the category.
func (s *Store) ClearNotifications(category notify.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Notifications = notify.ClearCategory(s.profile.Notifications, category)
	return s.persistLocked()
}
