package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientForwardsSessionHeaders(t *testing.T) {
	var gotCookie, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	ctx := WithSession(context.Background(), Session{
		Cookie:        "planhive_session=abc123",
		Authorization: "Bearer token456",
	})

	if _, err := client.ListOwnedProjects(ctx); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if gotCookie != "planhive_session=abc123" {
		t.Errorf("expected session cookie forwarded, got %q", gotCookie)
	}
	if gotAuth != "Bearer token456" {
		t.Errorf("expected authorization forwarded, got %q", gotAuth)
	}
}

func TestClientNoSessionSendsNoCredentials(t *testing.T) {
	var gotCookie, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.ListOwnedProjects(context.Background()); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if gotCookie != "" || gotAuth != "" {
		t.Errorf("expected no credentials without a session, got cookie=%q auth=%q", gotCookie, gotAuth)
	}
}

func TestClientStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "not yours"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.GetPermissions(context.Background(), 3)
	if err == nil {
		t.Fatal("expected an error for a 403 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a StatusError in the chain, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != `{"error": "not yours"}` {
		t.Errorf("expected body captured, got %q", statusErr.Body)
	}
}

func TestClientContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(server.URL, 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.ListOwnedProjects(ctx); err == nil {
		t.Fatal("expected an error when the context expires")
	}
}

func TestGetUserProfileBackfillsID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username": "maya"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	user, err := client.GetUserProfile(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != 5 {
		t.Errorf("expected requested id backfilled, got %d", user.ID)
	}
	if user.Username != "maya" {
		t.Errorf("unexpected username %q", user.Username)
	}
}
