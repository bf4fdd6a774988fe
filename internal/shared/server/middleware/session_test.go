package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSessionKeepsProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	var seen string
	router.GET("/api/v1/questions", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	req.Header.Set("X-Session-Id", "quiz-session-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != "quiz-session-1" {
		t.Fatalf("expected session from header, got %q", seen)
	}
	if got := resp.Header().Get("X-Session-Id"); got != "quiz-session-1" {
		t.Fatalf("expected session echoed in header, got %q", got)
	}
}

func TestSessionGeneratesIDWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	var seen string
	router.GET("/api/v1/questions", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen == "" {
		t.Fatal("expected a generated session id")
	}
	if resp.Header().Get("X-Session-Id") != seen {
		t.Fatal("expected generated session id in response header")
	}
}
