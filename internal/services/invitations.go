package services

import (
	"context"

	"github.com/planhive/gateway/internal/upstream"
)

// Invitations serves the invitation inbox and the owner-side invite flow.
type Invitations struct {
	client   *upstream.Client
	enricher *Enricher
}

func NewInvitations(client *upstream.Client, enricher *Enricher) *Invitations {
	return &Invitations{client: client, enricher: enricher}
}

// List returns the session user's invitations with both sender and
// recipient profiles attached.
func (i *Invitations) List(ctx context.Context) ([]upstream.Invitation, error) {
	invitations, err := i.client.ListInvitations(ctx)
	if err != nil {
		return nil, err
	}
	return i.enricher.Invitations(ctx, invitations), nil
}

// Invite sends a project invitation to a user.
func (i *Invitations) Invite(ctx context.Context, projectID, toUserID uint) error {
	return i.client.CreateInvitation(ctx, projectID, toUserID)
}

// Accept accepts an invitation addressed to the session user.
func (i *Invitations) Accept(ctx context.Context, invitationID uint) error {
	return i.client.AcceptInvitation(ctx, invitationID)
}

// Reject rejects an invitation addressed to the session user.
func (i *Invitations) Reject(ctx context.Context, invitationID uint) error {
	return i.client.RejectInvitation(ctx, invitationID)
}

// Delete withdraws an invitation the session user sent.
func (i *Invitations) Delete(ctx context.Context, invitationID uint) error {
	return i.client.DeleteInvitation(ctx, invitationID)
}
