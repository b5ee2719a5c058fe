package catalog

import (
	"fmt"

	"github.com/3mero/anilog/pkg/media"
)

// Dedupe removes duplicate records by canonical id, keeping the first
// occurrence and its position. Records with no usable id at all are kept
// as-is; there is nothing to collapse them on.
func Dedupe(refs []media.Ref) []media.Ref {
	seen := make(map[int64]bool, len(refs))
	out := make([]media.Ref, 0, len(refs))
	for _, r := range refs {
		id := r.CanonicalID()
		if id == 0 {
			out = append(out, r)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, r)
	}
	return out
}

// Recommendation is a community pairing of two titles contributed by a user.
// It has no id of its own.
type Recommendation struct {
	First  media.Ref `json:"first"`
	Second media.Ref `json:"second"`
	User   string    `json:"user,omitempty"`
}

// Key is the uniqueness key for a recommendation: both referenced media ids
// plus the contributing user, so distinct users recommending the same pair
// are not collapsed together.
func (r Recommendation) Key() string {
	return fmt.Sprintf("%d/%d/%s", r.First.CanonicalID(), r.Second.CanonicalID(), r.User)
}

// DedupeRecommendations removes duplicate pairings by composite key,
// preserving first-seen order.
func DedupeRecommendations(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
