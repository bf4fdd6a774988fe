package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/analytics"
	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
	"recommender-backend/internal/recommend"
	"recommender-backend/internal/results"
	"recommender-backend/internal/services/health"
	"recommender-backend/internal/shared/config"
	"recommender-backend/internal/shared/metrics"
	"recommender-backend/internal/shared/server/middleware"
	"recommender-backend/internal/users"
)

// RouterDeps carries the constructed handlers the router wires up.
type RouterDeps struct {
	Config               config.Config
	Health               *health.Service
	CatalogHandler       *catalog.Handler
	QuestionnaireHandler *questionnaire.Handler
	RecommendHandler     *recommend.Handler
	ResultsHandler       *results.Handler
	UsersHandler         *users.Handler
	AnalyticsHandler     *analytics.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Session(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimits()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			c.JSON(http.StatusOK, deps.Health.Status())
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	registerSessionRoutes(api)

	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.QuestionnaireHandler != nil {
		deps.QuestionnaireHandler.RegisterRoutes(api)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterRoutes(api)
	}
	if deps.ResultsHandler != nil {
		deps.ResultsHandler.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.AnalyticsHandler != nil {
		deps.AnalyticsHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				return "READ"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 20},
			"READ":    {Rate: 20, Burst: 60},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
