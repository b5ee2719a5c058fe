// Package store composes the local profile with persistence: it is the one
// writer for profile state, serializing mutations and pushing snapshots
// through an ordered write queue.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/profile"
)

var (
	// ErrNoStorage is the fatal configuration error: a store cannot exist
	// without its storage collaborator.
	ErrNoStorage = errors.New("store: no storage configured")

	// ErrNotFound marks a read miss in a Storage implementation.
	ErrNotFound = errors.New("store: not found")

	// ErrSuperseded is returned when an async result resolves after a newer
	// request for the same subject already started.
	ErrSuperseded = errors.New("store: request superseded")
)

// Clock supplies "now" so schedule math stays testable.
type Clock interface {
	Now() time.Time
}

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return clockFunc(time.Now)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithSyncWrites makes persistence synchronous: each mutation returns only
// after its snapshot hit storage. Mainly for tests and one-shot CLI runs.
func WithSyncWrites() Option {
	return func(s *Store) { s.syncWrites = true }
}

// Store owns the current profile. All mutations run to completion under one
// lock, recompute derived state on read, and enqueue exactly one persistence
// write.
type Store struct {
	mu      sync.Mutex
	storage Storage
	clock   Clock
	profile *profile.Profile
	seq     uint64

	syncWrites bool

	writeMu      sync.Mutex
	queuedSeq    uint64
	queuedData   []byte
	writtenSeq   uint64
	lastWriteErr error
	kick         chan struct{}
	done         chan struct{}
	stopped      sync.WaitGroup

	fetchMu  sync.Mutex
	fetchSeq map[string]uint64
}

// New opens the store over the given storage, loading the existing profile
// snapshot or starting fresh. A nil storage is a fatal configuration error.
func New(storage Storage, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, ErrNoStorage
	}
	s := &Store{
		storage:  storage,
		clock:    SystemClock(),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		fetchSeq: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}

	if storage.Has(profileKey) {
		data, err := storage.Read(profileKey)
		if err != nil {
			return nil, fmt.Errorf("store: reading profile: %w", err)
		}
		doc, _ := profile.Decode(data)
		s.profile = doc.Build()
	} else {
		s.profile = profile.New("")
	}

	if !s.syncWrites {
		s.stopped.Add(1)
		go s.writer()
	}
	return s, nil
}

// Close flushes any pending write and stops the writer.
func (s *Store) Close() error {
	if !s.syncWrites {
		close(s.done)
		s.stopped.Wait()
	}
	return s.LastWriteError()
}

// LastWriteError reports the most recent persistence failure, if the latest
// snapshot did not reach storage. Mutations keep succeeding in memory; the
// next one retries the write.
func (s *Store) LastWriteError() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.lastWriteErr
}

func (s *Store) writer() {
	defer s.stopped.Done()
	for {
		select {
		case <-s.done:
			s.flush()
			return
		case <-s.kick:
			s.flush()
		}
	}
}

// flush writes the newest queued snapshot. A single writer plus latest-wins
// coalescing keeps writes strictly ordered: a snapshot older than one
// already written is never applied.
func (s *Store) flush() {
	s.writeMu.Lock()
	seq, data := s.queuedSeq, s.queuedData
	s.writeMu.Unlock()
	if data == nil || seq <= s.writtenSeqSnapshot() {
		return
	}
	err := s.storage.Write(profileKey, data)
	s.writeMu.Lock()
	if err != nil {
		s.lastWriteErr = err
	} else {
		s.lastWriteErr = nil
		if seq > s.writtenSeq {
			s.writtenSeq = seq
		}
		if s.queuedSeq == seq {
			s.queuedData = nil
		}
	}
	s.writeMu.Unlock()
}

func (s *Store) writtenSeqSnapshot() uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.writtenSeq
}

// persistLocked serializes the current profile and hands it to the write
// queue. Caller holds s.mu.
func (s *Store) persistLocked() error {
	data, err := profile.Encode(profile.Export(s.profile))
	if err != nil {
		return fmt.Errorf("store: encoding profile: %w", err)
	}
	s.seq++

	if s.syncWrites {
		if werr := s.storage.Write(profileKey, data); werr != nil {
			s.writeMu.Lock()
			s.lastWriteErr = werr
			s.writeMu.Unlock()
			return fmt.Errorf("store: persisting profile: %w", werr)
		}
		s.writeMu.Lock()
		s.lastWriteErr = nil
		s.writtenSeq = s.seq
		s.writeMu.Unlock()
		return nil
	}

	s.writeMu.Lock()
	s.queuedSeq = s.seq
	s.queuedData = data
	s.writeMu.Unlock()
	select {
	case s.kick <- struct{}{}:
	default:
	}
	return nil
}

func (s *Store) now() media.Timestamp {
	return media.Timestamp{Time: s.clock.Now()}
}

// Snapshot returns a deep copy of the whole profile.
func (s *Store) Snapshot() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Bucket returns a copy of one status bucket.
func (s *Store) Bucket(status media.Status) []media.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]media.Entry, 0, len(s.profile.Lists[status]))
	for _, e := range s.profile.Lists[status] {
		out = append(out, *e)
	}
	return out
}

// SetUsername records the local profile name.
func (s *Store) SetUsername(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Username = name
	return s.persistLocked()
}
