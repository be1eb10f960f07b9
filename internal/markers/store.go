// Package markers persists pending-request markers: per-user hints that a
// join request for a project is in flight. A marker is set optimistically the
// moment the user asks to join and cleared as soon as authoritative
// permission data shows access. Markers are never authoritative; a fresh
// permissions fetch always wins over them.
package markers

import (
	"context"
	"fmt"
	"time"

	"github.com/planhive/gateway/internal/config"
	"github.com/planhive/gateway/pkg/logger"
)

// Store is the key-value interface over the marker backend. Keys follow the
// SPA's localStorage convention, pending-request-{projectId}, namespaced per
// user because the gateway serves many sessions.
type Store interface {
	// Get reports whether a marker exists for the (user, project) pair.
	Get(ctx context.Context, userID, projectID uint) (bool, error)
	// Set upserts the marker.
	Set(ctx context.Context, userID, projectID uint) error
	// Clear removes the marker. Clearing an absent marker is not an error.
	Clear(ctx context.Context, userID, projectID uint) error
	// Purge removes markers created before the given time and returns the
	// number removed. Backends with native expiry may treat this as a no-op.
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
	// Close releases backend resources.
	Close() error
}

// Key returns the storage key for one marker.
func Key(userID, projectID uint) string {
	return fmt.Sprintf("user:%d:pending-request-%d", userID, projectID)
}

// New selects a backend from config. An unreachable redis or database falls
// back to the in-memory store so the gateway still starts; markers then only
// live for the process lifetime, which is acceptable for a best-effort hint.
func New(cfg *config.MarkersConfig, redisCfg *config.RedisConfig) Store {
	retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour

	switch cfg.Backend {
	case "redis":
		store, err := NewRedisStore(redisCfg, retention)
		if err != nil {
			logger.Warnf("[Markers] Redis unavailable, falling back to in-memory store: %v", err)
			return NewMemoryStore()
		}
		logger.Infof("[Markers] Redis store initialized at %s", redisCfg.Addr)
		return store
	case "database":
		store, err := NewDatabaseStore(cfg.Driver, cfg.DSN)
		if err != nil {
			logger.Warnf("[Markers] Database unavailable, falling back to in-memory store: %v", err)
			return NewMemoryStore()
		}
		logger.Infof("[Markers] Database store initialized (%s)", cfg.Driver)
		return store
	default:
		logger.Infof("[Markers] In-memory store initialized")
		return NewMemoryStore()
	}
}
