package store

import (
	"github.com/3mero/anilog/pkg/profile"
)

// Sections returns a copy of the home layout in display order.
func (s *Store) Sections() []profile.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]profile.Section(nil), s.profile.Sections...)
}

// SetSectionHidden shows or hides a home section. Unknown ids are a no-op.
func (s *Store) SetSectionHidden(id string, hidden bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profile.Sections {
		if s.profile.Sections[i].ID == id {
			if s.profile.Sections[i].Hidden == hidden {
				return nil
			}
			s.profile.Sections[i].Hidden = hidden
			return s.persistLocked()
		}
	}
	return nil
}

// RenameSection sets a custom section title; empty restores the default.
func (s *Store) RenameSection(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profile.Sections {
		if s.profile.Sections[i].ID == id {
			s.profile.Sections[i].Title = title
			return s.persistLocked()
		}
	}
	return nil
}

// MoveSection reorders a section to the given index, clamping out-of-range
// targets. Unknown ids are a no-op.
func (s *Store) MoveSection(id string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := -1
	for i := range s.profile.Sections {
		if s.profile.Sections[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.profile.Sections) {
		index = len(s.profile.Sections) - 1
	}
	if index == from {
		return nil
	}

	section := s.profile.Sections[from]
	rest := append(s.profile.Sections[:from], s.profile.Sections[from+1:]...)
	next := make([]profile.Section, 0, len(rest)+1)
	next = append(next, rest[:index]...)
	next = append(next, section)
	next = append(next, rest[index:]...)
	s.profile.Sections = next
	return s.persistLocked()
}
