package services

import (
	"context"

	"github.com/planhive/gateway/internal/upstream"
)

// Community serves the public project discovery views: paginated browsing
// and search, with participant arrays filled in so the cards can show
// member counts.
type Community struct {
	client   *upstream.Client
	enricher *Enricher
}

func NewCommunity(client *upstream.Client, enricher *Enricher) *Community {
	return &Community{client: client, enricher: enricher}
}

const (
	defaultCommunityPage  = 1
	defaultCommunityLimit = 12
	maxCommunityLimit     = 50
)

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultCommunityPage
	}
	if limit < 1 {
		limit = defaultCommunityLimit
	}
	if limit > maxCommunityLimit {
		limit = maxCommunityLimit
	}
	return page, limit
}

// Browse returns one page of discoverable projects with participants
// attached.
func (c *Community) Browse(ctx context.Context, page, limit int) (*upstream.CommunityPage, error) {
	page, limit = clampPage(page, limit)
	result, err := c.client.Browse(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	result.Results = c.enricher.ProjectParticipants(ctx, result.Results)
	return result, nil
}

// Search returns one page of projects matching the query with participants
// attached. An empty query falls back to browsing.
func (c *Community) Search(ctx context.Context, query string, page, limit int) (*upstream.CommunityPage, error) {
	if query == "" {
		return c.Browse(ctx, page, limit)
	}
	page, limit = clampPage(page, limit)
	result, err := c.client.Search(ctx, query, page, limit)
	if err != nil {
		return nil, err
	}
	result.Results = c.enricher.ProjectParticipants(ctx, result.Results)
	return result, nil
}
