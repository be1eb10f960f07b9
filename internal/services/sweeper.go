package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/planhive/gateway/internal/markers"
	"github.com/planhive/gateway/pkg/logger"
)

// MarkerSweeper retires stale pending-request markers on a cron schedule.
// A marker older than the retention window belongs to a request the owner
// long since resolved (or the user abandoned), so keeping it would pin the
// UI on "pending" forever for backends without native expiry.
type MarkerSweeper struct {
	store     markers.Store
	retention time.Duration
	spec      string
	cron      *cron.Cron
}

func NewMarkerSweeper(store markers.Store, retentionDays int, spec string) *MarkerSweeper {
	return &MarkerSweeper{
		store:     store,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		spec:      spec,
	}
}

// Start registers the sweep job and launches the scheduler. An invalid cron
// spec is reported and the sweeper stays idle; marker writes still work.
func (s *MarkerSweeper) Start() {
	c := cron.New()
	if _, err := c.AddFunc(s.spec, s.Sweep); err != nil {
		logger.Errorf("[Sweeper] invalid cron spec %q, purge disabled: %v", s.spec, err)
		return
	}
	c.Start()
	s.cron = c
	logger.Infof("[Sweeper] marker purge scheduled (%s, retention %s)", s.spec, s.retention)
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *MarkerSweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Sweep purges markers older than the retention window.
func (s *MarkerSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-s.retention)
	removed, err := s.store.Purge(ctx, cutoff)
	if err != nil {
		logger.Errorf("[Sweeper] marker purge failed: %v", err)
		return
	}
	if removed > 0 {
		logger.Infof("[Sweeper] purged %d stale markers", removed)
	}
}
