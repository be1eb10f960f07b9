package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/services"
	"github.com/planhive/gateway/pkg/response"
)

type MemberHandler struct {
	membership *services.Membership
}

func NewMemberHandler(membership *services.Membership) *MemberHandler {
	return &MemberHandler{membership: membership}
}

// Participants returns the project roster with user profiles attached.
// GET /api/projects/:id/participants
func (h *MemberHandler) Participants(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	participants, err := h.membership.Participants(c.Request.Context(), projectID)
	if err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, participants)
}

// Requests returns the pending join requests, enriched with user profiles.
// The backend enforces that only the owner may list them.
// GET /api/projects/:id/requests
func (h *MemberHandler) Requests(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	requests, err := h.membership.Requests(c.Request.Context(), projectID)
	if err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, requests)
}

// AcceptRequest approves a pending join request.
// POST /api/projects/:id/requests/:requestId/accept
func (h *MemberHandler) AcceptRequest(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	requestID, ok := parseID(c, "requestId")
	if !ok {
		return
	}

	if err := h.membership.AcceptRequest(c.Request.Context(), projectID, requestID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{"accepted": true})
}

// RejectRequest declines a pending join request.
// POST /api/projects/:id/requests/:requestId/reject
func (h *MemberHandler) RejectRequest(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	requestID, ok := parseID(c, "requestId")
	if !ok {
		return
	}

	if err := h.membership.RejectRequest(c.Request.Context(), projectID, requestID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{"rejected": true})
}

// RemoveParticipant removes a member from the roster.
// DELETE /api/projects/:id/participants/:participantId
func (h *MemberHandler) RemoveParticipant(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	participantID, ok := parseID(c, "participantId")
	if !ok {
		return
	}

	if err := h.membership.RemoveParticipant(c.Request.Context(), projectID, participantID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}
