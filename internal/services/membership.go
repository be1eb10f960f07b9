package services

import (
	"context"

	"github.com/planhive/gateway/internal/upstream"
)

// Membership serves the project member management views: the participant
// roster, the pending join requests, and the owner actions on both.
type Membership struct {
	client   *upstream.Client
	enricher *Enricher
}

func NewMembership(client *upstream.Client, enricher *Enricher) *Membership {
	return &Membership{client: client, enricher: enricher}
}

// Participants returns the project roster with user profiles attached.
func (m *Membership) Participants(ctx context.Context, projectID uint) ([]upstream.Participant, error) {
	participants, err := m.client.ListParticipants(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return m.enricher.Participants(ctx, participants), nil
}

// Requests returns the pending join requests with user profiles attached.
func (m *Membership) Requests(ctx context.Context, projectID uint) ([]upstream.ParticipationRequest, error) {
	requests, err := m.client.ListParticipationRequests(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return m.enricher.Requests(ctx, requests), nil
}

// AcceptRequest approves a pending join request.
func (m *Membership) AcceptRequest(ctx context.Context, projectID, requestID uint) error {
	return m.client.AcceptParticipationRequest(ctx, projectID, requestID)
}

// RejectRequest declines a pending join request.
func (m *Membership) RejectRequest(ctx context.Context, projectID, requestID uint) error {
	return m.client.RejectParticipationRequest(ctx, projectID, requestID)
}

// RemoveParticipant removes a member from the project roster.
func (m *Membership) RemoveParticipant(ctx context.Context, projectID, participantID uint) error {
	return m.client.RemoveParticipant(ctx, projectID, participantID)
}
