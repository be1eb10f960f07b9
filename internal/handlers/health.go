package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/pkg/response"
)

// Health reports gateway liveness.
// GET /health
func Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
