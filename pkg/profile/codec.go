package profile

import (
	"encoding/json"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/reminder"
)

// DocumentVersion tags backup documents written by this build.
const DocumentVersion = 1

// Document is the portable backup shape: a version tag and one named array
// per entity type. Tracked entries carry their status inline so the lists
// reconstruct on import.
type Document struct {
	Version       int                  `json:"version"`
	AuthMode      string               `json:"authMode,omitempty"`
	Username      string               `json:"username,omitempty"`
	Tracked       []media.Entry        `json:"tracked"`
	Pinned        []NewsRef            `json:"pinned"`
	Favorites     []NewsRef            `json:"favorites"`
	Notifications []notify.Item        `json:"notifications"`
	Reminders     []reminder.Reminder  `json:"reminders"`
	Sections      []Section            `json:"sections"`
	LastChecked   media.Timestamp      `json:"lastChecked,omitempty"`
}

// Export flattens the profile into a document. Buckets are walked in display
// order so the output is deterministic for identical profiles.
func Export(p *Profile) Document {
	doc := Document{
		Version:       DocumentVersion,
		AuthMode:      string(p.AuthMode),
		Username:      p.Username,
		Tracked:       make([]media.Entry, 0),
		Pinned:        append([]NewsRef{}, p.Pinned...),
		Favorites:     append([]NewsRef{}, p.Favorites...),
		Notifications: append([]notify.Item{}, p.Notifications...),
		Reminders:     make([]reminder.Reminder, 0, len(p.Reminders)),
		Sections:      append([]Section{}, p.Sections...),
		LastChecked:   p.LastChecked,
	}
	for _, status := range media.AllStatuses() {
		for _, e := range p.Lists[status] {
			copied := *e
			copied.Status = status
			doc.Tracked = append(doc.Tracked, copied)
		}
	}
	for _, r := range p.Reminders {
		doc.Reminders = append(doc.Reminders, *r)
	}
	return doc
}

// Encode renders the document as indented JSON.
func Encode(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a backup payload. It never fails: a payload that is not a
// JSON object yields an empty document, and each field that is present but
// malformed is coerced to its empty value. The second return reports whether
// anything had to be recovered that way.
func Decode(data []byte) (Document, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return emptyDocument(), true
	}

	recovered := false
	doc := Document{Version: DocumentVersion}
	if v, ok := raw["version"]; ok {
		if err := json.Unmarshal(v, &doc.Version); err != nil {
			doc.Version = DocumentVersion
			recovered = true
		}
	}
	doc.AuthMode = stringField(raw, "authMode", &recovered)
	doc.Username = stringField(raw, "username", &recovered)
	doc.Tracked = arrayField[media.Entry](raw, "tracked", &recovered)
	doc.Pinned = arrayField[NewsRef](raw, "pinned", &recovered)
	doc.Favorites = arrayField[NewsRef](raw, "favorites", &recovered)
	doc.Notifications = arrayField[notify.Item](raw, "notifications", &recovered)
	doc.Reminders = arrayField[reminder.Reminder](raw, "reminders", &recovered)
	doc.Sections = arrayField[Section](raw, "sections", &recovered)
	if v, ok := raw["lastChecked"]; ok {
		// Timestamp decoding degrades to zero on its own.
		_ = json.Unmarshal(v, &doc.LastChecked)
	}
	return doc, recovered
}

// Build reconstructs a profile from the document, enforcing the model
// invariants: first occurrence wins per media id, progress is clamped,
// repeat days are normalized, and duplicate live notifications collapse.
func (d Document) Build() *Profile {
	p := New(d.Username)
	if d.AuthMode == string(AuthLocal) {
		p.AuthMode = AuthLocal
	}

	seen := make(map[int64]bool, len(d.Tracked))
	for _, e := range d.Tracked {
		id := e.CanonicalID()
		if id != 0 && seen[id] {
			continue
		}
		seen[id] = true
		status, err := media.ParseStatus(string(e.Status))
		if err != nil {
			status = media.PlannedStatus(e.Kind)
		}
		copied := e
		copied.Status = status
		copied.ClampProgress()
		p.Lists[status] = append(p.Lists[status], &copied)
	}

	p.Pinned = dedupeNews(d.Pinned)
	p.Favorites = dedupeNews(d.Favorites)

	p.Notifications = make([]notify.Item, 0, len(d.Notifications))
	for _, n := range d.Notifications {
		p.Notifications = notify.Append(p.Notifications, n)
	}

	p.Reminders = make([]*reminder.Reminder, 0, len(d.Reminders))
	for _, r := range d.Reminders {
		copied := r
		copied.RepeatOnDays = reminder.NormalizeDays(r.RepeatOnDays)
		p.Reminders = append(p.Reminders, &copied)
	}

	if len(d.Sections) > 0 {
		p.Sections = append([]Section(nil), d.Sections...)
	}
	p.LastChecked = d.LastChecked
	return p
}

func emptyDocument() Document {
	return Document{
		Version:       DocumentVersion,
		Tracked:       []media.Entry{},
		Pinned:        []NewsRef{},
		Favorites:     []NewsRef{},
		Notifications: []notify.Item{},
		Reminders:     []reminder.Reminder{},
		Sections:      []Section{},
	}
}

func dedupeNews(refs []NewsRef) []NewsRef {
	seen := make(map[string]bool, len(refs))
	out := make([]NewsRef, 0, len(refs))
	for _, r := range refs {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

// stringField reads a string field, coercing wrong-typed values to "".
func stringField(raw map[string]json.RawMessage, key string, recovered *bool) string {
	msg, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		*recovered = true
		return ""
	}
	return s
}

// arrayField reads an array field defensively. Missing fields and JSON null
// become the empty slice; a non-array value is coerced to empty; an array
// with some malformed elements keeps the elements that do decode.
func arrayField[T any](raw map[string]json.RawMessage, key string, recovered *bool) []T {
	msg, ok := raw[key]
	if !ok || string(msg) == "null" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(msg, &out); err == nil {
		if out == nil {
			out = []T{}
		}
		return out
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(msg, &elems); err != nil {
		*recovered = true
		return []T{}
	}
	out = make([]T, 0, len(elems))
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			*recovered = true
			continue
		}
		out = append(out, v)
	}
	return out
}
