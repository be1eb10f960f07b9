package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/services"
	"github.com/planhive/gateway/pkg/response"
)

type CommunityHandler struct {
	community *services.Community
}

func NewCommunityHandler(community *services.Community) *CommunityHandler {
	return &CommunityHandler{community: community}
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	return page, limit
}

// Browse returns a page of publicly discoverable projects.
// GET /api/community/browse
func (h *CommunityHandler) Browse(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.community.Browse(c.Request.Context(), page, limit)
	if err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, result)
}

// Search returns a page of projects matching the q query parameter.
// GET /api/community/search
func (h *CommunityHandler) Search(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.community.Search(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, result)
}
