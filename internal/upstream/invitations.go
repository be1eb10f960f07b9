package upstream

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListInvitations returns the invitations addressed to or sent by the
// session user.
func (c *Client) ListInvitations(ctx context.Context) ([]Invitation, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, "/users/me/invitations", &data); err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	raws, err := decodeList[rawInvitation](data)
	if err != nil {
		return nil, fmt.Errorf("decode invitations: %w", err)
	}
	invitations := make([]Invitation, 0, len(raws))
	for _, r := range raws {
		invitations = append(invitations, normalizeInvitation(r))
	}
	return invitations, nil
}

// CreateInvitation invites a user to a project (owner only).
func (c *Client) CreateInvitation(ctx context.Context, projectID, toUserID uint) error {
	body := map[string]uint{"toUserId": toUserID}
	if err := c.post(ctx, fmt.Sprintf("/project/%d/invitations", projectID), body); err != nil {
		return fmt.Errorf("invite user %d to project %d: %w", toUserID, projectID, err)
	}
	return nil
}

// AcceptInvitation accepts an invitation addressed to the session user.
func (c *Client) AcceptInvitation(ctx context.Context, invitationID uint) error {
	if err := c.post(ctx, fmt.Sprintf("/invitations/%d/accept", invitationID), nil); err != nil {
		return fmt.Errorf("accept invitation %d: %w", invitationID, err)
	}
	return nil
}

// RejectInvitation rejects an invitation addressed to the session user.
func (c *Client) RejectInvitation(ctx context.Context, invitationID uint) error {
	if err := c.post(ctx, fmt.Sprintf("/invitations/%d/reject", invitationID), nil); err != nil {
		return fmt.Errorf("reject invitation %d: %w", invitationID, err)
	}
	return nil
}

// DeleteInvitation deletes an invitation the session user sent, regardless
// of its status.
func (c *Client) DeleteInvitation(ctx context.Context, invitationID uint) error {
	if err := c.delete(ctx, fmt.Sprintf("/invitations/%d", invitationID)); err != nil {
		return fmt.Errorf("delete invitation %d: %w", invitationID, err)
	}
	return nil
}
