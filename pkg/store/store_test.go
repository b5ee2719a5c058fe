package store

import (
	"errors"
	"testing"
	"time"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/profile"
	"github.com/3mero/anilog/pkg/reminder"
)

func newsRef(id string) profile.NewsRef {
	return profile.NewsRef{ID: id, Title: "article " + id}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T) (*Store, *Memory, *fakeClock) {
	t.Helper()
	mem := NewMemory()
	clock := &fakeClock{t: time.Date(2026, time.January, 5, 10, 0, 0, 0, time.Local)}
	s, err := New(mem, WithSyncWrites(), WithClock(clock))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s, mem, clock
}

func anime(id int64, title string, total int) media.Ref {
	return media.Ref{ID: id, Title: title, Kind: media.KindAnime, Total: total}
}

func TestNewRequiresStorage(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoStorage) {
		t.Fatalf("expected ErrNoStorage, got %v", err)
	}
}

func TestAddOrUpdateCreatesAndClamps(t *testing.T) {
	s, mem, _ := newTestStore(t)

	e, err := s.AddOrUpdate(anime(1, "Frieren", 28), media.StatusWatching, 3)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Progress != 3 || e.Status != media.StatusWatching {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if mem.Writes != 1 {
		t.Fatalf("expected exactly one write per mutation, got %d", mem.Writes)
	}

	e, err = s.AddOrUpdate(anime(1, "", 0), media.StatusWatching, 99)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if e.Progress != 28 {
		t.Fatalf("progress not clamped to total: %d", e.Progress)
	}
	if mem.Writes != 2 {
		t.Fatalf("expected one more write, got %d", mem.Writes)
	}
}

func TestCompletionPromoteAndDemote(t *testing.T) {
	s, _, _ := newTestStore(t)

	if _, err := s.AddOrUpdate(anime(1, "Frieren", 12), media.StatusWatching, 11); err != nil {
		t.Fatalf("add: %v", err)
	}
	e, err := s.LogProgress(1, 1, false)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if e.Status != media.StatusCompleted {
		t.Fatalf("reaching total should promote to completed, got %s", e.Status)
	}
	if len(s.Bucket(media.StatusWatching)) != 0 {
		t.Fatalf("entry still present in watching after promotion")
	}

	e, err = s.LogProgress(1, -2, false)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if e.Status != media.StatusWatching {
		t.Fatalf("dropping below total should demote, got %s", e.Status)
	}
	if len(s.Bucket(media.StatusCompleted)) != 0 {
		t.Fatalf("entry still present in completed after demotion")
	}
}

func TestLogProgressAbsentIsNoOp(t *testing.T) {
	s, mem, _ := newTestStore(t)
	e, err := s.LogProgress(404, 5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil entry for untracked id")
	}
	if mem.Writes != 0 {
		t.Fatalf("no-op must not persist, got %d writes", mem.Writes)
	}
}

func TestMoveKeepsSingleMembership(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.AddOrUpdate(anime(1, "Frieren", 28), media.StatusPlanToWatch, 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Move(1, media.StatusWatching); err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(s.Bucket(media.StatusPlanToWatch)) != 0 {
		t.Fatalf("entry left behind in source bucket")
	}
	got := s.Bucket(media.StatusWatching)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("entry missing from destination bucket: %v", got)
	}
	// absent id: no-op
	if err := s.Move(404, media.StatusWatching); err != nil {
		t.Fatalf("move absent: %v", err)
	}
}

func TestClearStatusSnapshotIsolation(t *testing.T) {
	s, _, _ := newTestStore(t)
	for i := int64(1); i <= 5; i++ {
		ref := anime(i, "title", 10)
		if _, err := s.AddOrUpdate(ref, media.StatusWatching, 10); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if n := len(s.Bucket(media.StatusCompleted)); n != 5 {
		t.Fatalf("expected 5 completed entries, got %d", n)
	}

	before := s.Snapshot()
	if err := s.Clear(media.StatusCompleted); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n := len(s.Bucket(media.StatusCompleted)); n != 0 {
		t.Fatalf("bucket not emptied, %d left", n)
	}
	// The old snapshot still classifies its entries as completed, but that
	// must not leak back into the store.
	for _, e := range before.Lists[media.StatusCompleted] {
		if !e.Completed() {
			t.Fatalf("snapshot entry lost completion state: %+v", e)
		}
	}
	if _, _, ok := s.Snapshot().Find(3); ok {
		t.Fatalf("cleared id reappeared in live state")
	}
}

func TestStorageErrorSurfacedAndRetried(t *testing.T) {
	s, mem, _ := newTestStore(t)
	boom := errors.New("disk full")

	mem.FailNext = boom
	if _, err := s.AddOrUpdate(anime(1, "Frieren", 28), media.StatusWatching, 1); !errors.Is(err, boom) {
		t.Fatalf("expected surfaced storage error, got %v", err)
	}
	if s.LastWriteError() == nil {
		t.Fatalf("write error not recorded")
	}

	// The next mutation carries the full newest snapshot, so it doubles as
	// the retry.
	if _, err := s.AddOrUpdate(anime(2, "Berserk", 0), media.StatusWatching, 0); err != nil {
		t.Fatalf("retry mutation: %v", err)
	}
	if s.LastWriteError() != nil {
		t.Fatalf("write error should clear after a successful write")
	}
	data, err := mem.Read(profileKey)
	if err != nil || len(data) == 0 {
		t.Fatalf("snapshot missing after retry: %v", err)
	}

	reopened, err := New(mem, WithSyncWrites())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, _, ok := reopened.Snapshot().Find(1); !ok {
		t.Fatalf("entry from the failed write lost; retry did not carry it")
	}
}

func TestAsyncWritesOrderedAndFlushed(t *testing.T) {
	mem := NewMemory()
	s, err := New(mem)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for i := int64(1); i <= 20; i++ {
		if _, err := s.AddOrUpdate(anime(i, "t", 0), media.StatusWatching, int(i)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := New(mem, WithSyncWrites())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if n := len(reopened.Bucket(media.StatusWatching)); n != 20 {
		t.Fatalf("persisted snapshot is stale: %d entries", n)
	}
}

func TestImportReplacesWholesale(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.AddOrUpdate(anime(1, "old", 0), media.StatusWatching, 2); err != nil {
		t.Fatalf("seed: %v", err)
	}

	payload := []byte(`{
		"version": 1,
		"username": "mero",
		"tracked": [{"id": 7, "title": "new", "kind": "manga", "status": "reading", "progress": 4}],
		"pinned": "garbage"
	}`)
	recovered, err := s.Import(payload)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !recovered {
		t.Fatalf("malformed pinned field should flag recovery")
	}

	snap := s.Snapshot()
	if _, _, ok := snap.Find(1); ok {
		t.Fatalf("import must replace, not merge")
	}
	if _, status, ok := snap.Find(7); !ok || status != media.StatusReading {
		t.Fatalf("imported entry missing: %v %v", status, ok)
	}
	if len(snap.Pinned) != 0 {
		t.Fatalf("malformed array should default to empty")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.AddOrUpdate(anime(1, "Frieren", 28), media.StatusWatching, 7); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := s.UpsertReminder(&reminder.Reminder{Title: "ep", MediaID: 1, RepeatOnDays: []int{5, 1}}); err != nil {
		t.Fatalf("reminder: %v", err)
	}

	data, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other, _, _ := newTestStore(t)
	if _, err := other.Import(data); err != nil {
		t.Fatalf("import: %v", err)
	}
	again, err := other.Export()
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if string(data) != string(again) {
		t.Fatalf("round trip changed the document:\n%s\n%s", data, again)
	}
}

func TestDeriveDue(t *testing.T) {
	s, _, clock := newTestStore(t)

	start := media.Timestamp{Time: clock.t.Add(-time.Hour)}
	r, err := s.UpsertReminder(&reminder.Reminder{
		Title:        "new episode",
		Start:        start,
		RepeatOnDays: []int{int(clock.t.AddDate(0, 0, 1).Weekday())}, // tomorrow
	})
	if err != nil {
		t.Fatalf("reminder: %v", err)
	}

	// First call only arms the watermark.
	items, err := s.DeriveDue()
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("watermark arming must not notify, got %d", len(items))
	}

	clock.Advance(48 * time.Hour)
	items, err = s.DeriveDue()
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(items) != 1 || items[0].Subject != r.ID {
		t.Fatalf("expected one due notification for %s, got %+v", r.ID, items)
	}
	if s.Unread().Priority != notify.CategoryReminder {
		t.Fatalf("reminder notification should drive badge priority")
	}

	// Same window again: the live notification already exists.
	items, err = s.DeriveDue()
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("derivation must be idempotent per occurrence, got %d", len(items))
	}
}

func TestRequestSupersession(t *testing.T) {
	s, _, _ := newTestStore(t)

	older := s.BeginRequest("search:frieren")
	newer := s.BeginRequest("search:frieren")

	applied := false
	err := s.ResolveRequest("search:frieren", older, func(*Store) error {
		applied = true
		return nil
	})
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("stale token must be rejected, got %v", err)
	}
	if applied {
		t.Fatalf("stale result was applied")
	}

	if err := s.ResolveRequest("search:frieren", newer, func(st *Store) error {
		_, err := st.AddOrUpdate(anime(1, "Frieren", 28), media.StatusPlanToWatch, 0)
		return err
	}); err != nil {
		t.Fatalf("current token should apply: %v", err)
	}
	if _, _, ok := s.Snapshot().Find(1); !ok {
		t.Fatalf("applied result missing")
	}
}

func TestNewsPinsUniqueAndLayoutMoves(t *testing.T) {
	s, _, _ := newTestStore(t)

	if err := s.PinNews(newsRef("a1")); err != nil {
		t.Fatalf("pin: %v", err)
	}
	if err := s.PinNews(newsRef("a1")); err != nil {
		t.Fatalf("re-pin: %v", err)
	}
	if n := len(s.PinnedNews()); n != 1 {
		t.Fatalf("duplicate pin slipped in: %d", n)
	}
	if err := s.UnpinNews("a1"); err != nil {
		t.Fatalf("unpin: %v", err)
	}
	if n := len(s.PinnedNews()); n != 0 {
		t.Fatalf("unpin failed: %d", n)
	}

	sections := s.Sections()
	last := sections[len(sections)-1].ID
	if err := s.MoveSection(last, 0); err != nil {
		t.Fatalf("move section: %v", err)
	}
	if got := s.Sections()[0].ID; got != last {
		t.Fatalf("section not moved: %s", got)
	}
	if err := s.SetSectionHidden(last, true); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if !s.Sections()[0].Hidden {
		t.Fatalf("section not hidden")
	}
}
