package services

import (
	"context"

	"github.com/planhive/gateway/internal/markers"
	"github.com/planhive/gateway/internal/upstream"
	"github.com/planhive/gateway/pkg/logger"
)

// UI statuses derived for a (user, project) pair. These drive which action
// button the SPA renders, so Resolve must always produce one of them.
const (
	StatusOwner       = "owner"
	StatusMember      = "member"
	StatusPending     = "pending"
	StatusNone        = "none"
	StatusUnavailable = "unavailable"
)

// ProjectRef is the minimum a caller must know about a project to resolve a
// status. ID may be nil: the backend sometimes returns project rows without
// an id, and those must resolve to "unavailable" without any network call.
type ProjectRef struct {
	ID      *uint
	OwnerID uint
}

// Status is the resolver output: the derived UI status plus the authoritative
// permissions when the backend answered.
type Status struct {
	UIStatus    string                `json:"ui_status"`
	Permissions *upstream.Permissions `json:"permissions,omitempty"`
}

// StatusResolver reconciles the backend's permission answer with the locally
// persisted pending-request marker. Authoritative data always wins; the
// marker is only consulted when the backend reports no access or is
// unreachable.
type StatusResolver struct {
	client  *upstream.Client
	markers markers.Store
}

func NewStatusResolver(client *upstream.Client, store markers.Store) *StatusResolver {
	return &StatusResolver{client: client, markers: store}
}

// Resolve derives the UI status for one project. It never returns an error:
// a failing permissions endpoint degrades to a heuristic answer so the UI
// can always render something.
func (r *StatusResolver) Resolve(ctx context.Context, userID uint, ref ProjectRef) Status {
	if ref.ID == nil {
		return Status{UIStatus: StatusUnavailable}
	}
	projectID := *ref.ID

	perms, err := r.client.GetPermissions(ctx, projectID)
	if err != nil {
		logger.Warnf("[Status] permissions fetch failed for project %d, using fallback: %v", projectID, err)
		return r.fallback(ctx, userID, ref)
	}

	if perms.HasAccess {
		// Access confirmed: a leftover pending marker is stale, drop it.
		if err := r.markers.Clear(ctx, userID, projectID); err != nil {
			logger.Warnf("[Status] failed to clear marker for project %d: %v", projectID, err)
		}
		if perms.Role == upstream.RoleOwner {
			return Status{UIStatus: StatusOwner, Permissions: perms}
		}
		return Status{UIStatus: StatusMember, Permissions: perms}
	}

	if r.hasMarker(ctx, userID, projectID) {
		return Status{UIStatus: StatusPending, Permissions: perms}
	}
	return Status{UIStatus: StatusNone, Permissions: perms}
}

// fallback answers from local state only: the pending marker first, then the
// owner reference embedded in the project row.
func (r *StatusResolver) fallback(ctx context.Context, userID uint, ref ProjectRef) Status {
	if r.hasMarker(ctx, userID, *ref.ID) {
		return Status{UIStatus: StatusPending}
	}
	if userID != 0 && ref.OwnerID == userID {
		return Status{UIStatus: StatusOwner}
	}
	return Status{UIStatus: StatusNone}
}

func (r *StatusResolver) hasMarker(ctx context.Context, userID, projectID uint) bool {
	pending, err := r.markers.Get(ctx, userID, projectID)
	if err != nil {
		logger.Warnf("[Status] marker lookup failed for project %d: %v", projectID, err)
		return false
	}
	return pending
}

// RequestToJoin files a participation request. The pending marker is set
// before the request goes out so the UI flips to "pending" immediately; if
// the request itself fails the marker is rolled back and the error returned.
func (r *StatusResolver) RequestToJoin(ctx context.Context, userID, projectID uint) error {
	if err := r.markers.Set(ctx, userID, projectID); err != nil {
		// The marker is a best-effort hint; a failed write must not block
		// the actual join request.
		logger.Warnf("[Status] failed to set marker for project %d: %v", projectID, err)
	}

	if err := r.client.RequestParticipation(ctx, projectID); err != nil {
		if clearErr := r.markers.Clear(ctx, userID, projectID); clearErr != nil {
			logger.Warnf("[Status] failed to roll back marker for project %d: %v", projectID, clearErr)
		}
		return err
	}
	return nil
}
