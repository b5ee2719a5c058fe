package media

// Ref is the catalog identity and display metadata for a trackable title.
// ID is the canonical catalog id; AltID is the alternate id some endpoints
// return instead (dedup falls back to it when ID is absent).
type Ref struct {
	ID     int64  `json:"id"`
	AltID  int64  `json:"altId,omitempty"`
	Title  string `json:"title"`
	Kind   Kind   `json:"kind"`
	Total  int    `json:"total,omitempty"` // episodes or chapters, 0 = unknown
	Image  string `json:"image,omitempty"`
}

// CanonicalID returns ID, falling back to AltID when ID is unset.
func (r Ref) CanonicalID() int64 {
	if r.ID != 0 {
		return r.ID
	}
	return r.AltID
}

// Entry is a Ref plus list membership and progress.
type Entry struct {
	Ref
	Status   Status    `json:"status"`
	Progress int       `json:"progress"`
	Created  Timestamp `json:"created,omitempty"`
	Updated  Timestamp `json:"updated,omitempty"`
}

// New creates an entry in the given bucket with zero progress.
func New(ref Ref, status Status) *Entry {
	return &Entry{Ref: ref, Status: status}
}

// ClampProgress forces progress into [0, Total]. A zero Total means the
// count is unknown and only the lower bound applies.
func (e *Entry) ClampProgress() {
	e.Progress = Clamp(e.Progress, e.Total)
}

// Clamp returns progress limited to [0, total], with total 0 meaning
// unbounded above.
func Clamp(progress, total int) int {
	if progress < 0 {
		return 0
	}
	if total > 0 && progress > total {
		return total
	}
	return progress
}

// Completed reports whether the entry crossed its unit count: true exactly
// when the total is a known positive number and progress reached it.
func (e *Entry) Completed() bool {
	return e.Total > 0 && e.Progress >= e.Total
}
