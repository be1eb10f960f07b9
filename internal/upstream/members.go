package upstream

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListParticipants returns the participant list of a project.
func (c *Client) ListParticipants(ctx context.Context, projectID uint) ([]Participant, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d/participants", projectID), &data); err != nil {
		return nil, fmt.Errorf("list participants for project %d: %w", projectID, err)
	}
	raws, err := decodeList[rawParticipant](data)
	if err != nil {
		return nil, fmt.Errorf("decode participants for project %d: %w", projectID, err)
	}
	participants := make([]Participant, 0, len(raws))
	for _, r := range raws {
		p := normalizeParticipant(r)
		if p.ProjectID == 0 {
			p.ProjectID = projectID
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// ListParticipationRequests returns the pending join requests of a project.
// The backend restricts this to the project owner.
func (c *Client) ListParticipationRequests(ctx context.Context, projectID uint) ([]ParticipationRequest, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d/participationRequests", projectID), &data); err != nil {
		return nil, fmt.Errorf("list participation requests for project %d: %w", projectID, err)
	}
	raws, err := decodeList[rawRequest](data)
	if err != nil {
		return nil, fmt.Errorf("decode participation requests for project %d: %w", projectID, err)
	}
	requests := make([]ParticipationRequest, 0, len(raws))
	for _, r := range raws {
		req := normalizeRequest(r)
		if req.ProjectID == 0 {
			req.ProjectID = projectID
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// RequestParticipation files a join request for the session user.
func (c *Client) RequestParticipation(ctx context.Context, projectID uint) error {
	if err := c.post(ctx, fmt.Sprintf("/community/projects/%d/request", projectID), nil); err != nil {
		return fmt.Errorf("request participation in project %d: %w", projectID, err)
	}
	return nil
}

// AcceptParticipationRequest accepts a pending join request (owner only).
// The backend deletes the request and creates a Participant.
func (c *Client) AcceptParticipationRequest(ctx context.Context, projectID, requestID uint) error {
	if err := c.post(ctx, fmt.Sprintf("/project/%d/participationRequest/%d/accept", projectID, requestID), nil); err != nil {
		return fmt.Errorf("accept participation request %d: %w", requestID, err)
	}
	return nil
}

// RejectParticipationRequest rejects a pending join request (owner only).
func (c *Client) RejectParticipationRequest(ctx context.Context, projectID, requestID uint) error {
	if err := c.post(ctx, fmt.Sprintf("/project/%d/participationRequest/%d/reject", projectID, requestID), nil); err != nil {
		return fmt.Errorf("reject participation request %d: %w", requestID, err)
	}
	return nil
}

// RemoveParticipant removes a participant from a project (owner only).
func (c *Client) RemoveParticipant(ctx context.Context, projectID, participantID uint) error {
	if err := c.delete(ctx, fmt.Sprintf("/project/%d/participants/%d/remove", projectID, participantID)); err != nil {
		return fmt.Errorf("remove participant %d from project %d: %w", participantID, projectID, err)
	}
	return nil
}
