package services

import (
	"context"
	"net/http"
	"testing"
)

func TestCommunityBrowseAttachesParticipants(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /community/browse", http.StatusOK,
		`{"results": [{"id": 1, "name": "Alpha", "owner_id": 7}], "total": 1, "page": 1, "limit": 12, "totalPages": 1}`)
	fb.handle("GET /project/1/participants", http.StatusOK,
		`[{"id": 4, "user_id": 8, "user": {"id": 8, "username": "noor"}}]`)

	community := NewCommunity(fb.client(), NewEnricher(fb.client()))
	page, err := community.Browse(context.Background(), 1, 12)
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}

	if len(page.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(page.Results))
	}
	if len(page.Results[0].Participants) != 1 {
		t.Errorf("expected participants attached, got %+v", page.Results[0].Participants)
	}
}

func TestCommunityEmptySearchFallsBackToBrowse(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /community/browse", http.StatusOK,
		`{"results": [], "total": 0, "page": 1, "limit": 12, "totalPages": 0}`)

	community := NewCommunity(fb.client(), NewEnricher(fb.client()))
	if _, err := community.Search(context.Background(), "", 1, 12); err != nil {
		t.Fatalf("Search with empty query failed: %v", err)
	}

	if fb.callCount("GET /community/browse") != 1 {
		t.Error("expected empty search to hit the browse endpoint")
	}
	if fb.callCount("GET /community/search") != 0 {
		t.Error("expected empty search not to hit the search endpoint")
	}
}

func TestCommunityClampsPagination(t *testing.T) {
	fb := newFakeBackend(t)
	var gotQuery string
	fb.handleFunc("GET /community/browse", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [], "total": 0, "page": 1, "limit": 12, "totalPages": 0}`))
	})

	community := NewCommunity(fb.client(), NewEnricher(fb.client()))
	if _, err := community.Browse(context.Background(), -1, 500); err != nil {
		t.Fatalf("Browse failed: %v", err)
	}

	if gotQuery != "page=1&limit=50" {
		t.Errorf("expected clamped pagination, got query %q", gotQuery)
	}
}
