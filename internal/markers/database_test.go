package markers

import (
	"context"
	"testing"
	"time"
)

func newTestDatabaseStore(t *testing.T) *DatabaseStore {
	t.Helper()
	store, err := NewDatabaseStore("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDatabaseStoreLifecycle(t *testing.T) {
	store := newTestDatabaseStore(t)
	ctx := context.Background()

	if pending, err := store.Get(ctx, 7, 3); err != nil || pending {
		t.Fatalf("fresh store: pending=%v err=%v", pending, err)
	}

	if err := store.Set(ctx, 7, 3); err != nil {
		t.Fatal(err)
	}
	// Upsert: a repeated Set for the same pair must not fail.
	if err := store.Set(ctx, 7, 3); err != nil {
		t.Fatal(err)
	}

	if pending, err := store.Get(ctx, 7, 3); err != nil || !pending {
		t.Fatalf("after Set: pending=%v err=%v", pending, err)
	}

	if err := store.Clear(ctx, 7, 3); err != nil {
		t.Fatal(err)
	}
	if pending, _ := store.Get(ctx, 7, 3); pending {
		t.Fatal("expected no marker after Clear")
	}
}

func TestDatabaseStorePurge(t *testing.T) {
	store := newTestDatabaseStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, 7, 3); err != nil {
		t.Fatal(err)
	}
	stale := PendingMarker{UserID: 7, ProjectID: 4, CreatedAt: time.Now().AddDate(0, 0, -40)}
	if err := store.db.Create(&stale).Error; err != nil {
		t.Fatal(err)
	}

	removed, err := store.Purge(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 purged marker, got %d", removed)
	}

	if pending, _ := store.Get(ctx, 7, 3); !pending {
		t.Error("recent marker must survive the purge")
	}
	if pending, _ := store.Get(ctx, 7, 4); pending {
		t.Error("stale marker must be purged")
	}
}

func TestDatabaseStoreUnsupportedDriver(t *testing.T) {
	if _, err := NewDatabaseStore("oracle", ""); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
