package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/middleware"
	"github.com/planhive/gateway/internal/services"
	"github.com/planhive/gateway/pkg/response"
)

type ProjectHandler struct {
	resolver *services.StatusResolver
}

func NewProjectHandler(resolver *services.StatusResolver) *ProjectHandler {
	return &ProjectHandler{resolver: resolver}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// Status resolves the session user's relationship to one project. The
// optional owner_id query parameter feeds the degraded fallback when the
// permissions endpoint is unreachable.
// GET /api/projects/:id/status
func (h *ProjectHandler) Status(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var ownerID uint
	if raw := c.Query("owner_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid owner_id")
			return
		}
		ownerID = uint(parsed)
	}

	userID := middleware.GetUserID(c)
	status := h.resolver.Resolve(c.Request.Context(), userID, services.ProjectRef{
		ID:      &projectID,
		OwnerID: ownerID,
	})

	response.Success(c, status)
}

// Join files a participation request for the session user.
// POST /api/projects/:id/join
func (h *ProjectHandler) Join(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.resolver.RequestToJoin(c.Request.Context(), userID, projectID); err != nil {
		upstreamError(c, err)
		return
	}

	response.Created(c, gin.H{"ui_status": services.StatusPending})
}
