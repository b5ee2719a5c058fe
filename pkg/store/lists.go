package store

import (
	"github.com/3mero/anilog/pkg/media"
)

// AddOrUpdate tracks the title, creating the entry in the given bucket when
// absent, and applies the progress delta with clamping. When the entry
// already exists (in any bucket) its progress and catalog metadata are
// updated in place. Crossing the completion threshold relocates the entry
// across the active/terminal boundary in either direction.
func (s *Store) AddOrUpdate(ref media.Ref, status media.Status, delta int) (media.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, current, ok := s.profile.Find(ref.CanonicalID())
	if !ok {
		e = media.New(ref, status)
		e.Created = now
		e.Progress = media.Clamp(delta, e.Total)
		e.Updated = now
		current = status
		s.profile.Lists[status] = append(s.profile.Lists[status], e)
	} else {
		if ref.Total > 0 {
			e.Total = ref.Total
		}
		if ref.Image != "" {
			e.Image = ref.Image
		}
		if ref.Title != "" {
			e.Title = ref.Title
		}
		e.Progress = media.Clamp(e.Progress+delta, e.Total)
		e.Updated = now
	}
	s.settleCompletionLocked(e, current)

	out := *e
	return out, s.persistLocked()
}

// LogProgress applies a progress delta to a tracked title. Absolute true
// replaces the counter instead of adding. An untracked id is a no-op and
// returns a nil entry.
func (s *Store) LogProgress(id int64, amount int, absolute bool) (*media.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, current, ok := s.profile.Find(id)
	if !ok {
		return nil, nil
	}
	if absolute {
		e.Progress = media.Clamp(amount, e.Total)
	} else {
		e.Progress = media.Clamp(e.Progress+amount, e.Total)
	}
	e.Updated = s.now()
	s.settleCompletionLocked(e, current)

	out := *e
	return &out, s.persistLocked()
}

// Move relocates a tracked title into another bucket, preserving progress.
// An absent id is a no-op. The removal and insertion happen in one critical
// section; the entry is never in two buckets or zero buckets in between.
func (s *Store) Move(id int64, to media.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, from, ok := s.profile.Find(id)
	if !ok || from == to {
		return nil
	}
	s.relocateLocked(e, from, to)
	return s.persistLocked()
}

// Remove deletes a tracked title from its bucket. Absent ids are a no-op.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, from, ok := s.profile.Find(id)
	if !ok {
		return nil
	}
	s.profile.Lists[from] = deleteEntry(s.profile.Lists[from], id)
	return s.persistLocked()
}

// Clear empties one bucket.
func (s *Store) Clear(status media.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.profile.Lists[status]) == 0 {
		return nil
	}
	s.profile.Lists[status] = nil
	return s.persistLocked()
}

// settleCompletionLocked keeps the completion model consistent: progress
// reaching a known total promotes the entry to the kind's terminal bucket,
// and progress dropping back below demotes it to the active bucket.
func (s *Store) settleCompletionLocked(e *media.Entry, current media.Status) {
	switch {
	case e.Completed() && !current.Terminal():
		s.relocateLocked(e, current, media.TerminalStatus(e.Kind))
	case !e.Completed() && current.Terminal():
		s.relocateLocked(e, current, media.ActiveStatus(e.Kind))
	}
}

func (s *Store) relocateLocked(e *media.Entry, from, to media.Status) {
	s.profile.Lists[from] = deleteEntry(s.profile.Lists[from], e.CanonicalID())
	e.Status = to
	s.profile.Lists[to] = append(s.profile.Lists[to], e)
}

func deleteEntry(bucket []*media.Entry, id int64) []*media.Entry {
	out := bucket[:0]
	for _, e := range bucket {
		if e.CanonicalID() != id {
			out = append(out, e)
		}
	}
	return out
}
