package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/3mero/anilog/pkg/profile"
)

// Event signals that the profile snapshot was replaced underneath a running
// session, for example by a backup restored from another process.
type Event struct {
	Profile *profile.Profile
}

// pathedStorage is implemented by storage backends rooted in a directory.
type pathedStorage interface {
	BasePath() string
}

// Reload re-reads the profile blob from storage and swaps it in when it
// differs from the in-memory state, reporting whether a swap happened.
// A session with a write still queued skips the reload: its own state is
// newer than the disk and will land shortly.
func (s *Store) Reload() (bool, error) {
	s.writeMu.Lock()
	pending := s.queuedData != nil
	s.writeMu.Unlock()
	if pending {
		return false, nil
	}

	data, err := s.storage.Read(profileKey)
	if err != nil {
		return false, fmt.Errorf("store: reloading profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := profile.Encode(profile.Export(s.profile))
	if err == nil && bytes.Equal(current, data) {
		return false, nil
	}
	doc, _ := profile.Decode(data)
	s.profile = doc.Build()
	return true, nil
}

// Watch streams reload events until ctx is cancelled. Only directory-backed
// storage can be watched. Callers should drain the channel; bursts coalesce
// and events are dropped rather than blocking the watcher.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	pathed, ok := s.storage.(pathedStorage)
	if !ok {
		return nil, errors.New("store: storage is not watchable")
	}
	base := pathed.BasePath()
	if base == "" {
		return nil, errors.New("store: storage base path unknown")
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(base); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", base, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer lags; the next event carries a
				// fresh snapshot anyway.
			}
		}

		var mu sync.Mutex
		var timer *time.Timer
		schedule := func() {
			mu.Lock()
			defer mu.Unlock()
			if timer != nil {
				return
			}
			// Coalesce write bursts into one reload.
			timer = time.AfterFunc(100*time.Millisecond, func() {
				mu.Lock()
				timer = nil
				mu.Unlock()
				changed, err := s.Reload()
				if err != nil {
					fmt.Fprintf(os.Stderr, "store: reload: %v\n", err)
					return
				}
				if changed {
					send(Event{Profile: s.Snapshot()})
				}
			})
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				schedule()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != profileKey {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				schedule()
			}
		}
	}()

	return events, nil
}
