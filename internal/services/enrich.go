package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/planhive/gateway/internal/upstream"
	"github.com/planhive/gateway/pkg/logger"
)

// Enricher fills in relational data that list endpoints omit: a request row
// without its user object, a community project without its participants
// array. Per-item fetches run concurrently and settle independently; a
// failed fetch substitutes a renderable placeholder instead of dropping the
// item or failing the batch.
type Enricher struct {
	client *upstream.Client
}

func NewEnricher(client *upstream.Client) *Enricher {
	return &Enricher{client: client}
}

// PlaceholderUsername labels a user whose profile could not be fetched.
func PlaceholderUsername(userID uint) string {
	return fmt.Sprintf("User %d", userID)
}

// enrichEach is the generic map-settle-merge step: items that already carry
// the required field pass through; the rest are fetched concurrently and the
// batch completes once every item settled, successfully or via fallback.
// Results keep their input positions regardless of completion order.
func enrichEach[T any](
	ctx context.Context,
	items []T,
	needs func(T) bool,
	fetch func(context.Context, T) (T, error),
	fallback func(T) T,
) []T {
	out := make([]T, len(items))
	copy(out, items)

	var wg sync.WaitGroup
	for i := range out {
		if !needs(out[i]) {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			enriched, err := fetch(ctx, out[i])
			if err != nil {
				out[i] = fallback(out[i])
				return
			}
			out[i] = enriched
		}(i)
	}
	wg.Wait()

	return out
}

// Requests attaches user profiles to participation requests that arrived
// without one.
func (e *Enricher) Requests(ctx context.Context, requests []upstream.ParticipationRequest) []upstream.ParticipationRequest {
	return enrichEach(ctx, requests,
		func(r upstream.ParticipationRequest) bool {
			return r.User == nil || r.User.Username == ""
		},
		func(ctx context.Context, r upstream.ParticipationRequest) (upstream.ParticipationRequest, error) {
			user, err := e.client.GetUserProfile(ctx, r.UserID)
			if err != nil {
				return r, err
			}
			r.User = user
			return r, nil
		},
		func(r upstream.ParticipationRequest) upstream.ParticipationRequest {
			logger.Warnf("[Enrich] profile unavailable for user %d, using placeholder", r.UserID)
			r.User = &upstream.User{ID: r.UserID, Username: PlaceholderUsername(r.UserID)}
			return r
		},
	)
}

// Participants attaches user profiles to participant rows that arrived
// without one.
func (e *Enricher) Participants(ctx context.Context, participants []upstream.Participant) []upstream.Participant {
	return enrichEach(ctx, participants,
		func(p upstream.Participant) bool {
			return p.User == nil || p.User.Username == ""
		},
		func(ctx context.Context, p upstream.Participant) (upstream.Participant, error) {
			user, err := e.client.GetUserProfile(ctx, p.UserID)
			if err != nil {
				return p, err
			}
			p.User = user
			return p, nil
		},
		func(p upstream.Participant) upstream.Participant {
			logger.Warnf("[Enrich] profile unavailable for user %d, using placeholder", p.UserID)
			p.User = &upstream.User{ID: p.UserID, Username: PlaceholderUsername(p.UserID)}
			return p
		},
	)
}

// ProjectParticipants attaches participant arrays to community rows that
// omit them, so the browse view can show member counts. The fallback is an
// empty array: a count of zero renders, a missing array does not.
func (e *Enricher) ProjectParticipants(ctx context.Context, projects []upstream.Project) []upstream.Project {
	return enrichEach(ctx, projects,
		func(p upstream.Project) bool {
			return p.Participants == nil && p.ID != nil
		},
		func(ctx context.Context, p upstream.Project) (upstream.Project, error) {
			participants, err := e.client.ListParticipants(ctx, *p.ID)
			if err != nil {
				return p, err
			}
			if participants == nil {
				participants = []upstream.Participant{}
			}
			p.Participants = participants
			return p, nil
		},
		func(p upstream.Project) upstream.Project {
			logger.Warnf("[Enrich] participants unavailable for project %d, assuming none", *p.ID)
			p.Participants = []upstream.Participant{}
			return p
		},
	)
}

// Invitations attaches sender and recipient profiles to invitation rows
// that arrived without them.
func (e *Enricher) Invitations(ctx context.Context, invitations []upstream.Invitation) []upstream.Invitation {
	return enrichEach(ctx, invitations,
		func(inv upstream.Invitation) bool {
			missingFrom := inv.FromUserID != 0 && (inv.FromUser == nil || inv.FromUser.Username == "")
			missingTo := inv.ToUserID != 0 && (inv.ToUser == nil || inv.ToUser.Username == "")
			return missingFrom || missingTo
		},
		func(ctx context.Context, inv upstream.Invitation) (upstream.Invitation, error) {
			// Sender and recipient settle independently so one failed
			// profile does not discard the other.
			if inv.FromUserID != 0 && (inv.FromUser == nil || inv.FromUser.Username == "") {
				if user, err := e.client.GetUserProfile(ctx, inv.FromUserID); err != nil {
					logger.Warnf("[Enrich] profile unavailable for user %d, using placeholder", inv.FromUserID)
					inv.FromUser = &upstream.User{ID: inv.FromUserID, Username: PlaceholderUsername(inv.FromUserID)}
				} else {
					inv.FromUser = user
				}
			}
			if inv.ToUserID != 0 && (inv.ToUser == nil || inv.ToUser.Username == "") {
				if user, err := e.client.GetUserProfile(ctx, inv.ToUserID); err != nil {
					logger.Warnf("[Enrich] profile unavailable for user %d, using placeholder", inv.ToUserID)
					inv.ToUser = &upstream.User{ID: inv.ToUserID, Username: PlaceholderUsername(inv.ToUserID)}
				} else {
					inv.ToUser = user
				}
			}
			return inv, nil
		},
		func(inv upstream.Invitation) upstream.Invitation {
			return inv
		},
	)
}
