package store

import (
	"github.com/google/uuid"

	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/reminder"
)

// Reminders returns a copy of the reminder list.
func (s *Store) Reminders() []*reminder.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reminder.Reminder, 0, len(s.profile.Reminders))
	for _, r := range s.profile.Reminders {
		copied := *r
		copied.RepeatOnDays = append([]int(nil), r.RepeatOnDays...)
		out = append(out, &copied)
	}
	return out
}

// UpsertReminder stores the reminder, assigning an id when missing and
// normalizing its repeat days. An existing id is replaced in place.
func (s *Store) UpsertReminder(r *reminder.Reminder) (*reminder.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *r
	if copied.ID == "" {
		copied.ID = uuid.New().String()
	}
	copied.RepeatOnDays = reminder.NormalizeDays(copied.RepeatOnDays)
	if copied.Created.IsZero() {
		copied.Created = s.now()
	}

	replaced := false
	for i, existing := range s.profile.Reminders {
		if existing.ID == copied.ID {
			s.profile.Reminders[i] = &copied
			replaced = true
			break
		}
	}
	if !replaced {
		s.profile.Reminders = append(s.profile.Reminders, &copied)
	}

	out := copied
	return &out, s.persistLocked()
}

// RemoveReminder deletes the reminder with the given id; absent ids are a
// no-op.
func (s *Store) RemoveReminder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.profile.Reminders[:0]
	removed := false
	for _, r := range s.profile.Reminders {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return nil
	}
	s.profile.Reminders = kept
	return s.persistLocked()
}

// DeriveDue turns reminders whose occurrence passed since the last check
// into reminder notifications, honoring the live-uniqueness key, and
// advances the watermark. The first call after a fresh profile only arms
// the watermark.
func (s *Store) DeriveDue() ([]notify.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	last := s.profile.LastChecked.Time
	created := make([]notify.Item, 0)

	if !last.IsZero() && now.After(last) {
		for _, r := range s.profile.Reminders {
			due := reminder.NextOccurrence(r, last)
			if due.IsZero() || !due.After(last) || due.After(now) {
				continue
			}
			item := notify.New(notify.CategoryReminder, r.ID, r.Title, s.now())
			before := len(s.profile.Notifications)
			s.profile.Notifications = notify.Append(s.profile.Notifications, item)
			if len(s.profile.Notifications) > before {
				created = append(created, item)
			}
		}
	}

	s.profile.LastChecked = s.now()
	return created, s.persistLocked()
}
