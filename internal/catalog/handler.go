package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/shared/server/respond"
)

// Handler exposes read-only champion endpoints.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(c *Catalog) *Handler {
	return &Handler{Catalog: c}
}

// RegisterRoutes attaches champion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/champions", h.list)
	rg.GET("/champions/:name", h.get)
}

func (h *Handler) list(c *gin.Context) {
	champs := h.Catalog.All()
	resp := make([]gin.H, 0, len(champs))
	for _, champ := range champs {
		resp = append(resp, summaryResponse(champ))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	name := c.Param("name")
	champ, ok := h.Catalog.Get(name)
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "champion not found", nil)
		return
	}
	respond.OK(c, detailResponse(champ))
}

func summaryResponse(champ Champion) gin.H {
	return gin.H{
		"name":       champ.Name,
		"title":      champ.Title,
		"role":       champ.Role,
		"difficulty": champ.Difficulty,
		"attributes": champ.Attributes,
	}
}

func detailResponse(champ Champion) gin.H {
	resp := summaryResponse(champ)
	resp["tags"] = champ.Tags
	resp["description"] = champ.Description
	resp["abilities"] = champ.Abilities
	resp["hasMatchData"] = champ.HasMatchingFactors()
	return resp
}
