package recommend

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/results"
	"recommender-backend/internal/shared/metrics"
	"recommender-backend/internal/shared/server/middleware"
	"recommender-backend/internal/shared/server/respond"
	"recommender-backend/internal/shared/telemetry"
)

const defaultAlternatives = 4

// Handler serves the recommendation endpoint. Results is optional; scoring
// answers never depends on persistence succeeding.
type Handler struct {
	Engine       *Engine
	Results      *results.Service
	Alternatives int
}

func NewHandler(engine *Engine, resultsSvc *results.Service, alternatives int) *Handler {
	if alternatives <= 0 {
		alternatives = defaultAlternatives
	}
	return &Handler{Engine: engine, Results: resultsSvc, Alternatives: alternatives}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	if h.Engine == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "engine unavailable", nil)
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncInvalidAnswers()
		respond.Error(c, http.StatusBadRequest, "invalid_request", "answers object is required", nil)
		return
	}

	start := time.Now()
	best, ok := h.Engine.Best(req.Answers)
	if !ok {
		respond.Error(c, http.StatusServiceUnavailable, "no_recommendation", "catalog is empty", nil)
		return
	}
	alternatives := h.Engine.Alternatives(req.Answers, best.Champion.Name, h.Alternatives)
	metrics.ObserveRecommendationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncRecommendation()

	explanation := h.Engine.Explain(best.Champion, req.Answers, best.Confidence)
	resp := recommendResponse{
		SessionID: middleware.SessionIDFromContext(c),
		Recommendation: candidatePayload{
			Champion:    toChampionPayload(best.Champion),
			Score:       best.Score,
			Confidence:  best.Confidence,
			Explanation: explanation,
		},
		Alternatives: make([]candidatePayload, 0, len(alternatives)),
	}
	for _, alt := range alternatives {
		resp.Alternatives = append(resp.Alternatives, candidatePayload{
			Champion:    toChampionPayload(alt.Champion),
			Score:       alt.Score,
			Confidence:  alt.Confidence,
			Explanation: h.Engine.Explain(alt.Champion, req.Answers, alt.Confidence),
		})
	}

	resp.ResultID = h.persist(c, resp.SessionID, best, explanation, req.Answers)
	respond.OK(c, resp)
}

// persist stores the outcome best-effort. A failed write is logged and
// counted but never fails the request.
func (h *Handler) persist(c *gin.Context, sessionID string, best Candidate, explanation string, answers map[int]string) string {
	if h.Results == nil {
		return ""
	}
	saved, err := h.Results.Save(c.Request.Context(), results.Result{
		SessionID:    sessionID,
		ChampionName: best.Champion.Name,
		ChampionRole: best.Champion.Role,
		Score:        best.Score,
		Confidence:   best.Confidence,
		Explanation:  explanation,
		Answers:      answers,
	})
	if err != nil {
		metrics.IncPersistFailed()
		telemetry.Error("recommendation.persist_failed", map[string]any{
			"session_id": sessionID,
			"champion":   best.Champion.Name,
			"error":      err.Error(),
		})
		return ""
	}
	c.Set("resultId", saved.ID)
	return saved.ID
}
