package store

import (
	"github.com/3mero/anilog/pkg/profile"
)

// PinnedNews returns a copy of the pinned article list.
func (s *Store) PinnedNews() []profile.NewsRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]profile.NewsRef(nil), s.profile.Pinned...)
}

// FavoriteNews returns a copy of the favorited article list.
func (s *Store) FavoriteNews() []profile.NewsRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]profile.NewsRef(nil), s.profile.Favorites...)
}

// PinNews pins an article; pinning an already pinned id is a no-op.
func (s *Store) PinNews(ref profile.NewsRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := appendNews(s.profile.Pinned, ref)
	if !changed {
		return nil
	}
	s.profile.Pinned = next
	return s.persistLocked()
}

// UnpinNews removes an article from the pinned list; absent ids are a no-op.
func (s *Store) UnpinNews(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := removeNews(s.profile.Pinned, id)
	if !changed {
		return nil
	}
	s.profile.Pinned = next
	return s.persistLocked()
}

// FavoriteNewsAdd favorites an article; duplicates are a no-op.
func (s *Store) FavoriteNewsAdd(ref profile.NewsRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := appendNews(s.profile.Favorites, ref)
	if !changed {
		return nil
	}
	s.profile.Favorites = next
	return s.persistLocked()
}

// FavoriteNewsRemove removes an article from favorites; absent ids are a
// no-op.
func (s *Store) FavoriteNewsRemove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := removeNews(s.profile.Favorites, id)
	if !changed {
		return nil
	}
	s.profile.Favorites = next
	return s.persistLocked()
}

func appendNews(refs []profile.NewsRef, ref profile.NewsRef) ([]profile.NewsRef, bool) {
	if ref.ID == "" {
		return refs, false
	}
	for _, existing := range refs {
		if existing.ID == ref.ID {
			return refs, false
		}
	}
	return append(refs, ref), true
}

func removeNews(refs []profile.NewsRef, id string) ([]profile.NewsRef, bool) {
	out := make([]profile.NewsRef, 0, len(refs))
	removed := false
	for _, existing := range refs {
		if existing.ID == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}
