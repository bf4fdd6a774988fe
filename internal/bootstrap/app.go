package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/analytics"
	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
	"recommender-backend/internal/recommend"
	"recommender-backend/internal/results"
	"recommender-backend/internal/services/health"
	"recommender-backend/internal/shared/config"
	"recommender-backend/internal/shared/server"
	"recommender-backend/internal/shared/storage/db"
	"recommender-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Catalog       *catalog.Catalog
	Questionnaire *questionnaire.Questionnaire
	Engine        *recommend.Engine

	ResultsRepo      results.Repo
	UsersRepo        users.Repo
	ResultsService   *results.Service
	UsersService     *users.Service
	AnalyticsService *analytics.Service
	Health           *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	questions, err := questionnaire.Load()
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	engine := recommend.New(cat, questions, recommend.DefaultConfig())

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Catalog:       cat,
		Questionnaire: questions,
		Engine:        engine,
		Health:        health.NewService(sqlDB),
	}

	if sqlDB != nil {
		app.ResultsRepo = &results.PGRepo{DB: sqlDB}
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.AnalyticsService = analytics.NewPostgresService(analytics.NewPGStore(sqlDB))
	} else {
		memResults := results.NewMemoryRepo()
		app.ResultsRepo = memResults
		app.UsersRepo = users.NewMemoryRepo()
		app.AnalyticsService = analytics.NewService(memResults)
	}
	app.ResultsService = results.NewService(app.ResultsRepo)
	app.UsersService = users.NewService(app.UsersRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               cfg,
		Health:               app.Health,
		CatalogHandler:       catalog.NewHandler(cat),
		QuestionnaireHandler: questionnaire.NewHandler(questions),
		RecommendHandler:     recommend.NewHandler(engine, app.ResultsService, cfg.Alternatives),
		ResultsHandler:       results.NewHandler(app.ResultsService),
		UsersHandler:         users.NewHandler(app.UsersService),
		AnalyticsHandler:     analytics.NewHandler(app.AnalyticsService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable, falling back to memory: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "local":
		return true
	default:
		return false
	}
}
