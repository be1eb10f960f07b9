package main

import (
	"github.com/planhive/gateway/internal/config"
	"github.com/planhive/gateway/internal/handlers"
	"github.com/planhive/gateway/internal/markers"
	"github.com/planhive/gateway/internal/services"
	"github.com/planhive/gateway/internal/upstream"
	"github.com/planhive/gateway/internal/utils"
	"github.com/planhive/gateway/pkg/logger"
)

// appServices holds the initialized services and handlers the router needs.
type appServices struct {
	markerStore markers.Store
	sweeper     *services.MarkerSweeper

	overviewHandler   *handlers.OverviewHandler
	projectHandler    *handlers.ProjectHandler
	memberHandler     *handlers.MemberHandler
	communityHandler  *handlers.CommunityHandler
	invitationHandler *handlers.InvitationHandler
}

// bootstrap wires the upstream client, marker store, services and handlers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout())
	store := markers.New(&cfg.Markers, &cfg.Redis)

	sweeper := services.NewMarkerSweeper(store, cfg.Markers.RetentionDays, cfg.Markers.PurgeCron)
	sweeper.Start()

	enricher := services.NewEnricher(client)
	resolver := services.NewStatusResolver(client, store)
	aggregator := services.NewAggregator(client)
	community := services.NewCommunity(client, enricher)
	membership := services.NewMembership(client, enricher)
	invitations := services.NewInvitations(client, enricher)

	return &appServices{
		markerStore: store,
		sweeper:     sweeper,

		overviewHandler:   handlers.NewOverviewHandler(aggregator),
		projectHandler:    handlers.NewProjectHandler(resolver),
		memberHandler:     handlers.NewMemberHandler(membership),
		communityHandler:  handlers.NewCommunityHandler(community),
		invitationHandler: handlers.NewInvitationHandler(invitations),
	}
}

// shutdown stops the sweeper and releases the marker store.
func (s *appServices) shutdown() {
	s.sweeper.Stop()
	if err := s.markerStore.Close(); err != nil {
		logger.Errorf("Failed to close marker store: %v", err)
	}
	logger.Infof("Gateway stopped")
}
