package store

// Request supersession guards. A long-running fetch for a subject (a search
// query, a media id being refreshed) may be superseded by a newer request
// for the same subject; the earlier result must be discarded instead of
// overwriting fresher state when it finally lands.

// BeginRequest registers a new in-flight request for the subject and returns
// its token. Any earlier token for the subject is now stale.
func (s *Store) BeginRequest(subject string) uint64 {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()
	s.fetchSeq[subject]++
	return s.fetchSeq[subject]
}

// CurrentRequest reports whether the token still identifies the newest
// request for the subject.
func (s *Store) CurrentRequest(subject string, token uint64) bool {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()
	return s.fetchSeq[subject] == token
}

// ResolveRequest applies the result of an async request against the live
// store, but only when the token is still current; a superseded resolution
// returns ErrSuperseded without touching state.
func (s *Store) ResolveRequest(subject string, token uint64, apply func(*Store) error) error {
	if !s.CurrentRequest(subject, token) {
		return ErrSuperseded
	}
	return apply(s)
}
