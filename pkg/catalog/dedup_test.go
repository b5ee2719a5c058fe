package catalog

import (
	"context"
	"testing"

	"github.com/3mero/anilog/pkg/media"
)

func ref(id int64, title string) media.Ref {
	return media.Ref{ID: id, Title: title, Kind: media.KindAnime}
}

func TestDedupeFirstSeenOrder(t *testing.T) {
	in := []media.Ref{ref(1, "A"), ref(2, "B"), {ID: 1, Title: "A again", Kind: media.KindAnime}}
	out := Dedupe(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Title != "A" || out[1].Title != "B" {
		t.Fatalf("first occurrence not preserved: %v", out)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	in := []media.Ref{ref(3, "C"), ref(1, "A"), ref(3, "C"), ref(2, "B"), ref(1, "A")}
	once := Dedupe(in)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("dedupe changed stable output at %d", i)
		}
	}
}

func TestDedupeAltIDFallback(t *testing.T) {
	in := []media.Ref{
		{AltID: 42, Title: "alt only"},
		{ID: 42, Title: "canonical"},
		{AltID: 42, Title: "alt dup"},
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("alt id should collapse against canonical id, got %d records", len(out))
	}
	if out[0].Title != "alt only" {
		t.Fatalf("expected first occurrence kept, got %q", out[0].Title)
	}
}

func TestDedupeRecommendationsCompositeKey(t *testing.T) {
	pair := func(a, b int64, user string) Recommendation {
		return Recommendation{First: ref(a, ""), Second: ref(b, ""), User: user}
	}
	in := []Recommendation{
		pair(1, 2, "mia"),
		pair(1, 2, "rex"), // same pair, different user: kept
		pair(1, 2, "mia"), // true duplicate: dropped
	}
	out := DedupeRecommendations(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(out))
	}
	if out[0].User != "mia" || out[1].User != "rex" {
		t.Fatalf("order not preserved: %v", out)
	}
}

type scriptedCatalog struct {
	pages []Page
}

func (s *scriptedCatalog) Get(ctx context.Context, kind media.Kind, id int64) (media.Ref, error) {
	return media.Ref{}, nil
}

func (s *scriptedCatalog) Search(ctx context.Context, kind media.Kind, query string, page int) (Page, error) {
	return s.pages[page-1], nil
}

func TestCollectMergesAcrossPages(t *testing.T) {
	c := &scriptedCatalog{pages: []Page{
		{Items: []media.Ref{ref(1, "A"), ref(2, "B")}, HasNext: true},
		{Items: []media.Ref{ref(2, "B shifted"), ref(3, "C")}, HasNext: false},
	}}

	var lastPages, lastItems int
	got, err := Collect(context.Background(), c, media.KindAnime, "q", 0, func(pages, items int) {
		lastPages, lastItems = pages, items
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 merged records, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
		t.Fatalf("merged order wrong: %v", got)
	}
	if lastPages != 2 || lastItems != 3 {
		t.Fatalf("progress not reported: pages=%d items=%d", lastPages, lastItems)
	}
}

func TestCollectNoCatalog(t *testing.T) {
	if _, err := Collect(context.Background(), nil, media.KindAnime, "q", 0, nil); err != ErrNoCatalog {
		t.Fatalf("expected ErrNoCatalog, got %v", err)
	}
}
