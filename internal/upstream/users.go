package upstream

import (
	"context"
	"fmt"
)

// GetUserProfile fetches a user's public profile, used to enrich records the
// backend returns without an embedded user object.
func (c *Client) GetUserProfile(ctx context.Context, userID uint) (*User, error) {
	var raw rawUser
	if err := c.getJSON(ctx, fmt.Sprintf("/users/profile/%d", userID), &raw); err != nil {
		return nil, fmt.Errorf("get profile for user %d: %w", userID, err)
	}
	user := normalizeUser(&raw)
	if user.ID == 0 {
		user.ID = userID
	}
	return user, nil
}
