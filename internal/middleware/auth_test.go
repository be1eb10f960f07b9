package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/upstream"
	"github.com/planhive/gateway/internal/utils"
)

const testCookieName = "planhive_session"

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-for-middleware-testing")
}

func protectedRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired(testCookieName))
	router.GET("/protected", handler)
	return router
}

func okHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func TestAuthRequired_NoCredentials(t *testing.T) {
	router := protectedRouter(okHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_InvalidHeaderFormat(t *testing.T) {
	router := protectedRouter(okHandler)

	testCases := []string{
		"InvalidToken",
		"Basic token123",
		"Bearer",
	}

	for _, authHeader := range testCases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", authHeader)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", authHeader, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := protectedRouter(okHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_ValidCookie(t *testing.T) {
	token, err := utils.GenerateToken(7, "maya", "user", 1)
	if err != nil {
		t.Fatal(err)
	}

	var gotUserID uint
	var gotSession upstream.Session
	var hadSession bool
	router := protectedRouter(func(c *gin.Context) {
		gotUserID = GetUserID(c)
		gotSession, hadSession = upstream.SessionFromContext(c.Request.Context())
		okHandler(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotUserID != 7 {
		t.Errorf("expected user id 7 in context, got %d", gotUserID)
	}
	if !hadSession {
		t.Fatal("expected session stashed in request context")
	}
	if gotSession.Cookie == "" {
		t.Error("expected raw cookie header captured for upstream forwarding")
	}
}

func TestAuthRequired_ValidBearer(t *testing.T) {
	token, err := utils.GenerateToken(7, "maya", "user", 1)
	if err != nil {
		t.Fatal(err)
	}

	var gotSession upstream.Session
	router := protectedRouter(func(c *gin.Context) {
		gotSession, _ = upstream.SessionFromContext(c.Request.Context())
		okHandler(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotSession.Authorization != "Bearer "+token {
		t.Errorf("expected authorization header captured, got %q", gotSession.Authorization)
	}
}
