package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/upstream"
	"github.com/planhive/gateway/pkg/response"
)

// upstreamError translates a failed backend call into a gateway response.
// Backend 4xx answers pass through with their status so the SPA can react
// (403 on a private project, 404 on a deleted one); everything else surfaces
// as 502 because the gateway itself is healthy.
func upstreamError(c *gin.Context, err error) {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized:
			response.Unauthorized(c, "backend rejected the session")
		case http.StatusForbidden:
			response.Forbidden(c, "backend denied access")
		case http.StatusNotFound:
			response.NotFound(c, "resource not found")
		default:
			response.BadRequest(c, statusErr.Error())
		}
		return
	}
	response.BadGateway(c, "backend unavailable")
}
