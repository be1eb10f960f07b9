package services

import (
	"context"
	"testing"
	"time"

	"github.com/planhive/gateway/internal/markers"
)

type purgeRecorder struct {
	markers.Store
	gotCutoff time.Time
}

func (p *purgeRecorder) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	p.gotCutoff = olderThan
	return p.Store.Purge(ctx, olderThan)
}

func TestSweepUsesRetentionCutoff(t *testing.T) {
	rec := &purgeRecorder{Store: markers.NewMemoryStore()}
	sweeper := NewMarkerSweeper(rec, 30, "0 3 * * *")

	sweeper.Sweep()

	wantAround := time.Now().AddDate(0, 0, -30)
	if diff := rec.gotCutoff.Sub(wantAround); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expected cutoff about 30 days back, got %v", rec.gotCutoff)
	}
}

func TestSweeperInvalidCronStaysIdle(t *testing.T) {
	sweeper := NewMarkerSweeper(markers.NewMemoryStore(), 30, "not a cron spec")
	sweeper.Start()
	// Stop on an idle sweeper must not panic.
	sweeper.Stop()
}

func TestSweeperStartStop(t *testing.T) {
	sweeper := NewMarkerSweeper(markers.NewMemoryStore(), 30, "0 3 * * *")
	sweeper.Start()
	sweeper.Stop()
}
