package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated request id in the response")
	}
}

func TestRequestID_EchoesIncoming(t *testing.T) {
	var gotFromContext string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		gotFromContext = c.GetString(ContextRequestID)
		c.JSON(200, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-Id", "trace-42")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-Id"); got != "trace-42" {
		t.Errorf("expected incoming id echoed, got %q", got)
	}
	if gotFromContext != "trace-42" {
		t.Errorf("expected id in gin context, got %q", gotFromContext)
	}
}
