package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/planhive/gateway/internal/upstream"
)

func TestEnrichRequestsFetchesMissingProfiles(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /users/profile/5", http.StatusOK, `{"id": 5, "username": "maya"}`)
	enricher := NewEnricher(fb.client())

	requests := []upstream.ParticipationRequest{
		{ID: 1, ProjectID: 3, UserID: 5},
		{ID: 2, ProjectID: 3, UserID: 6, User: &upstream.User{ID: 6, Username: "theo"}},
	}

	got := enricher.Requests(context.Background(), requests)

	if got[0].User == nil || got[0].User.Username != "maya" {
		t.Errorf("expected fetched profile for request 1, got %+v", got[0].User)
	}
	if got[1].User.Username != "theo" {
		t.Errorf("embedded profile must pass through untouched, got %+v", got[1].User)
	}
	if n := fb.callCount("GET /users/profile/6"); n != 0 {
		t.Errorf("expected no fetch for an already embedded profile, got %d", n)
	}
}

func TestEnrichRequestsPlaceholderOnFailure(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /users/profile/5", http.StatusInternalServerError, `{"error": "boom"}`)
	enricher := NewEnricher(fb.client())

	got := enricher.Requests(context.Background(), []upstream.ParticipationRequest{
		{ID: 1, ProjectID: 3, UserID: 5},
	})

	if len(got) != 1 {
		t.Fatalf("a failed profile fetch must not drop the request, got %d items", len(got))
	}
	if got[0].User == nil || got[0].User.Username != "User 5" {
		t.Errorf("expected placeholder username, got %+v", got[0].User)
	}
}

func TestEnrichParticipantsPlaceholderOnFailure(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /users/profile/8", http.StatusOK, `{"id": 8, "username": "noor"}`)
	fb.handle("GET /users/profile/9", http.StatusBadGateway, "")
	enricher := NewEnricher(fb.client())

	got := enricher.Participants(context.Background(), []upstream.Participant{
		{ID: 1, ProjectID: 3, UserID: 8},
		{ID: 2, ProjectID: 3, UserID: 9},
	})

	if got[0].User == nil || got[0].User.Username != "noor" {
		t.Errorf("expected fetched profile, got %+v", got[0].User)
	}
	if got[1].User == nil || got[1].User.Username != "User 9" {
		t.Errorf("expected placeholder for failed fetch, got %+v", got[1].User)
	}
}

func TestEnrichProjectParticipants(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /project/1/participants", http.StatusOK,
		`[{"id": 4, "user_id": 8, "user": {"id": 8, "username": "noor"}}]`)
	fb.handle("GET /project/2/participants", http.StatusInternalServerError, `{"error": "boom"}`)
	enricher := NewEnricher(fb.client())

	projects := []upstream.Project{
		{ID: uintPtr(1), Name: "Alpha"},
		{ID: uintPtr(2), Name: "Beta"},
		{Name: "Ghost"},
	}

	got := enricher.ProjectParticipants(context.Background(), projects)

	if len(got[0].Participants) != 1 {
		t.Errorf("expected 1 participant on Alpha, got %+v", got[0].Participants)
	}
	if got[1].Participants == nil || len(got[1].Participants) != 0 {
		t.Errorf("failed fetch must yield an empty array, got %+v", got[1].Participants)
	}
	if got[2].Participants != nil {
		t.Errorf("a project without id must pass through untouched, got %+v", got[2].Participants)
	}
}

func TestEnrichInvitations(t *testing.T) {
	fb := newFakeBackend(t)
	fb.handle("GET /users/profile/5", http.StatusOK, `{"id": 5, "username": "maya"}`)
	fb.handle("GET /users/profile/6", http.StatusInternalServerError, `{"error": "boom"}`)
	enricher := NewEnricher(fb.client())

	got := enricher.Invitations(context.Background(), []upstream.Invitation{
		{ID: 1, ProjectID: 3, FromUserID: 5, ToUserID: 6, Status: upstream.InvitationPending},
	})

	if got[0].FromUser == nil || got[0].FromUser.Username != "maya" {
		t.Errorf("expected fetched sender profile, got %+v", got[0].FromUser)
	}
	if got[0].ToUser == nil || got[0].ToUser.Username != "User 6" {
		t.Errorf("expected placeholder recipient profile, got %+v", got[0].ToUser)
	}
}
