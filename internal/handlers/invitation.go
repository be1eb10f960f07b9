package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/services"
	"github.com/planhive/gateway/pkg/response"
)

type InvitationHandler struct {
	invitations *services.Invitations
}

func NewInvitationHandler(invitations *services.Invitations) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

// List returns the session user's invitations with sender and recipient
// profiles attached.
// GET /api/invitations
func (h *InvitationHandler) List(c *gin.Context) {
	invitations, err := h.invitations.List(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, invitations)
}

// Create invites a user to a project.
// POST /api/projects/:id/invitations
func (h *InvitationHandler) Create(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ToUserID uint `json:"toUserId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.invitations.Invite(c.Request.Context(), projectID, req.ToUserID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Created(c, gin.H{"invited": true})
}

// Accept accepts an invitation addressed to the session user.
// POST /api/invitations/:id/accept
func (h *InvitationHandler) Accept(c *gin.Context) {
	invitationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.invitations.Accept(c.Request.Context(), invitationID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{"accepted": true})
}

// Reject rejects an invitation addressed to the session user.
// POST /api/invitations/:id/reject
func (h *InvitationHandler) Reject(c *gin.Context) {
	invitationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.invitations.Reject(c.Request.Context(), invitationID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{"rejected": true})
}

// Delete withdraws an invitation the session user sent.
// DELETE /api/invitations/:id
func (h *InvitationHandler) Delete(c *gin.Context) {
	invitationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.invitations.Delete(c.Request.Context(), invitationID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
