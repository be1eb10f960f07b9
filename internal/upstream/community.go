package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// Browse returns a page of publicly discoverable projects.
func (c *Client) Browse(ctx context.Context, page, limit int) (*CommunityPage, error) {
	path := fmt.Sprintf("/community/browse?page=%d&limit=%d", page, limit)
	var raw rawCommunityPage
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("browse community: %w", err)
	}
	return normalizeCommunityPage(raw), nil
}

// Search returns a page of projects matching the query.
func (c *Client) Search(ctx context.Context, query string, page, limit int) (*CommunityPage, error) {
	path := fmt.Sprintf("/community/search?q=%s&page=%d&limit=%d", url.QueryEscape(query), page, limit)
	var raw rawCommunityPage
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("search community: %w", err)
	}
	return normalizeCommunityPage(raw), nil
}
