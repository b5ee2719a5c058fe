package profile

import (
	"reflect"
	"testing"
	"time"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/reminder"
)

func sampleProfile() *Profile {
	p := New("mero")
	p.Lists[media.StatusWatching] = []*media.Entry{
		{Ref: media.Ref{ID: 1, Title: "Frieren", Kind: media.KindAnime, Total: 28}, Status: media.StatusWatching, Progress: 7},
	}
	p.Lists[media.StatusRead] = []*media.Entry{
		{Ref: media.Ref{ID: 2, Title: "Berserk", Kind: media.KindManga, Total: 41}, Status: media.StatusRead, Progress: 41},
	}
	p.Pinned = []NewsRef{{ID: "a1", Title: "Season 2 announced"}}
	p.Favorites = []NewsRef{{ID: "a2"}}
	p.Notifications = []notify.Item{
		{ID: "n1", Category: notify.CategoryNews, Subject: "a1"},
	}
	p.Reminders = []*reminder.Reminder{
		{
			ID:           "r1",
			MediaID:      1,
			MediaKind:    media.KindAnime,
			Title:        "new episode",
			Start:        media.Timestamp{Time: time.Date(2026, time.March, 2, 19, 30, 0, 0, time.UTC)},
			RepeatOnDays: []int{1, 5},
		},
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	doc := Export(sampleProfile())
	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, recovered := Decode(data)
	if recovered {
		t.Fatalf("well-formed document should not need recovery")
	}
	again := Export(decoded.Build())
	if !reflect.DeepEqual(doc, again) {
		t.Fatalf("round trip changed the document:\n%+v\n%+v", doc, again)
	}
}

func TestDecodeNeverFails(t *testing.T) {
	payloads := []string{
		``,
		`not json at all`,
		`[]`,
		`42`,
		`{"version":"nope","tracked":17,"reminders":{"a":1},"pinned":"x"}`,
	}
	for _, payload := range payloads {
		doc, _ := Decode([]byte(payload))
		if doc.Tracked == nil || doc.Pinned == nil || doc.Reminders == nil ||
			doc.Notifications == nil || doc.Favorites == nil || doc.Sections == nil {
			t.Fatalf("payload %q: array fields must default to empty, got %+v", payload, doc)
		}
	}
}

func TestDecodeMalformedFieldsDegradeIndividually(t *testing.T) {
	payload := `{
		"version": 1,
		"username": "mero",
		"tracked": "not-an-array",
		"pinned": [{"id":"a1"}],
		"reminders": [
			{"id":"ok","title":"fine","repeatOnDays":[1,9,-3,1]},
			"garbage element"
		]
	}`
	doc, recovered := Decode([]byte(payload))
	if !recovered {
		t.Fatalf("expected recovery flag for malformed fields")
	}
	if doc.Username != "mero" {
		t.Fatalf("well-formed sibling fields must survive, got %q", doc.Username)
	}
	if len(doc.Tracked) != 0 {
		t.Fatalf("non-array field must coerce to empty, got %v", doc.Tracked)
	}
	if len(doc.Pinned) != 1 || doc.Pinned[0].ID != "a1" {
		t.Fatalf("pinned array lost: %v", doc.Pinned)
	}
	if len(doc.Reminders) != 1 || doc.Reminders[0].ID != "ok" {
		t.Fatalf("decodable elements must be kept: %v", doc.Reminders)
	}

	p := doc.Build()
	days := p.Reminders[0].RepeatOnDays
	if len(days) != 1 || days[0] != 1 {
		t.Fatalf("repeat days not normalized on import: %v", days)
	}
}

func TestBuildEnforcesInvariants(t *testing.T) {
	doc := Document{
		Version: 1,
		Tracked: []media.Entry{
			{Ref: media.Ref{ID: 9, Kind: media.KindAnime, Total: 12}, Status: media.StatusWatching, Progress: 99},
			{Ref: media.Ref{ID: 9, Kind: media.KindAnime}, Status: media.StatusCompleted}, // duplicate id
			{Ref: media.Ref{ID: 4, Kind: media.KindManga}, Status: "bogus"},
		},
		Notifications: []notify.Item{
			{ID: "n1", Category: notify.CategoryNews, Subject: "s"},
			{ID: "n2", Category: notify.CategoryNews, Subject: "s"}, // duplicate key
		},
	}
	p := doc.Build()

	e, status, ok := p.Find(9)
	if !ok || status != media.StatusWatching {
		t.Fatalf("first occurrence should win, got %v %v", status, ok)
	}
	if e.Progress != 12 {
		t.Fatalf("progress not clamped to total: %d", e.Progress)
	}
	if len(p.Lists[media.StatusCompleted]) != 0 {
		t.Fatalf("duplicate id must not reach a second bucket")
	}
	if _, status, ok := p.Find(4); !ok || status != media.StatusPlanToRead {
		t.Fatalf("unknown status should default to the kind's backlog, got %v", status)
	}
	if len(p.Notifications) != 1 {
		t.Fatalf("duplicate live notifications must collapse, got %d", len(p.Notifications))
	}
	if len(p.Sections) == 0 {
		t.Fatalf("missing sections should fall back to the default layout")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := sampleProfile()
	c := p.Clone()
	c.Lists[media.StatusWatching][0].Progress = 999
	c.Reminders[0].RepeatOnDays[0] = 6
	if p.Lists[media.StatusWatching][0].Progress == 999 {
		t.Fatalf("clone shares entry storage")
	}
	if p.Reminders[0].RepeatOnDays[0] == 6 {
		t.Fatalf("clone shares reminder day storage")
	}
}
