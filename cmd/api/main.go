package main

import (
	"log"

	"recommender-backend/internal/bootstrap"
	"recommender-backend/internal/shared/config"
	"recommender-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (catalog: %d champions, %d questions)",
		addr, app.Catalog.Len(), app.Questionnaire.Len())

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
