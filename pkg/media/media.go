// Package media defines the tracked media model: references into the remote
// catalog, per-status list membership, and progress accounting.
package media

import (
	"fmt"
	"strings"
)

// Kind identifies which side of the catalog a title lives on.
type Kind string

const (
	KindAnime Kind = "anime"
	KindManga Kind = "manga"
)

// AllKinds returns the list of supported media kinds.
func AllKinds() []Kind {
	return []Kind{KindAnime, KindManga}
}

// ParseKind converts a string to a Kind or returns an error for unknown values.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllKinds() {
		if candidate == k {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("media: unknown kind %q", raw)
}

// UnitNoun names the progress unit for the kind.
func (k Kind) UnitNoun() string {
	if k == KindManga {
		return "chapters"
	}
	return "episodes"
}

// Status identifies the list bucket a tracked entry belongs to. Anime entries
// use the watching family, manga entries the reading family.
type Status string

const (
	StatusWatching    Status = "watching"
	StatusCompleted   Status = "completed"
	StatusPlanToWatch Status = "plan-to-watch"
	StatusReading     Status = "reading"
	StatusRead        Status = "read"
	StatusPlanToRead  Status = "plan-to-read"
)

// AllStatuses returns every bucket in display order.
func AllStatuses() []Status {
	return []Status{
		StatusWatching,
		StatusCompleted,
		StatusPlanToWatch,
		StatusReading,
		StatusRead,
		StatusPlanToRead,
	}
}

// ParseStatus converts a string to a Status or returns an error for unknown
// values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("media: unknown status %q", raw)
}

// Kind reports which media kind the bucket belongs to.
func (s Status) Kind() Kind {
	switch s {
	case StatusReading, StatusRead, StatusPlanToRead:
		return KindManga
	default:
		return KindAnime
	}
}

// Terminal reports whether the bucket holds finished titles.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRead
}

// ActiveStatus returns the in-progress bucket for the kind.
func ActiveStatus(k Kind) Status {
	if k == KindManga {
		return StatusReading
	}
	return StatusWatching
}

// TerminalStatus returns the finished bucket for the kind.
func TerminalStatus(k Kind) Status {
	if k == KindManga {
		return StatusRead
	}
	return StatusCompleted
}

// PlannedStatus returns the backlog bucket for the kind.
func PlannedStatus(k Kind) Status {
	if k == KindManga {
		return StatusPlanToRead
	}
	return StatusPlanToWatch
}
