package questionnaire

import (
	"github.com/gin-gonic/gin"

	"recommender-backend/internal/shared/server/respond"
)

// Handler exposes the questionnaire in presentation order.
type Handler struct {
	Questions *Questionnaire
}

// NewHandler constructs a Handler.
func NewHandler(q *Questionnaire) *Handler {
	return &Handler{Questions: q}
}

// RegisterRoutes attaches questionnaire routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.list)
}

func (h *Handler) list(c *gin.Context) {
	questions := h.Questions.All()
	resp := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		options := make([]gin.H, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, gin.H{
				"value":       opt.Value,
				"text":        opt.Text,
				"description": opt.Description,
			})
		}
		resp = append(resp, gin.H{
			"id":       q.ID,
			"text":     q.Text,
			"category": q.Category,
			"options":  options,
		})
	}
	respond.OK(c, gin.H{
		"total":     len(questions),
		"questions": resp,
	})
}
