package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/summary", h.summary)
	rg.GET("/analytics/champions", h.champions)
	rg.GET("/analytics/roles", h.roles)
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute summary", nil)
		return
	}
	respond.OK(c, summary)
}

func (h *Handler) champions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	top, err := h.Svc.TopChampions(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute champion counts", nil)
		return
	}
	respond.OK(c, gin.H{"champions": top})
}

func (h *Handler) roles(c *gin.Context) {
	dist, err := h.Svc.RoleDistribution(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute role distribution", nil)
		return
	}
	respond.OK(c, gin.H{"roles": dist})
}
