package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/shared/server/middleware"
	"recommender-backend/internal/shared/server/respond"
)

// registerSessionRoutes attaches the /session endpoint. Clients call it once
// to obtain the ID they pass back as X-Session-Id on later requests.
func registerSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", sessionHandler)
}

func sessionHandler(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	if sessionID == "" {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "session unavailable", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"sessionId": sessionID})
}
