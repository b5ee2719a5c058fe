package store

import (
	"github.com/3mero/anilog/pkg/profile"
)

// Export serializes the whole profile as a versioned backup document.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return profile.Encode(profile.Export(s.profile))
}

// Import replaces the profile with the decoded payload. Malformed fields
// degrade to defaults rather than failing; the returned flag reports whether
// that happened. The swap is wholesale: either the new profile fully
// replaces the old one, or (on a persistence failure in sync mode) the
// in-memory state still reflects the complete imported profile and the next
// mutation retries the write. Partial in-place overwrites cannot occur.
func (s *Store) Import(data []byte) (recovered bool, err error) {
	doc, recovered := profile.Decode(data)
	next := doc.Build()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = next
	return recovered, s.persistLocked()
}
