package results

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/shared/server/middleware"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Session())
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestHandlerGetReturnsStoredResult(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	saved, err := svc.Save(context.Background(), Result{
		SessionID:    "session-1",
		ChampionName: "Alistar",
		ChampionRole: "Tank",
		Confidence:   87,
		Answers:      map[int]string{1: "Tank"},
	})
	if err != nil {
		t.Fatalf("seed result: %v", err)
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/results/"+saved.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body Result
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ChampionName != "Alistar" || body.Confidence != 87 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandlerGetUnknownIs404(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/results/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHandlerListScopedToSessionHeader(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	for _, session := range []string{"session-1", "session-2"} {
		if _, err := svc.Save(ctx, Result{
			SessionID:    session,
			ChampionName: "Braum",
			ChampionRole: "Support",
		}); err != nil {
			t.Fatalf("seed result: %v", err)
		}
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/results", nil)
	req.Header.Set("X-Session-Id", "session-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		SessionID string   `json:"sessionId"`
		Total     int      `json:"total"`
		Results   []Result `json:"results"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.SessionID != "session-1" || body.Total != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
