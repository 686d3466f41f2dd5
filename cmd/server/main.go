package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"complypilot/internal/analysis"
	"complypilot/internal/config"
	"complypilot/internal/database"
	"complypilot/internal/documents"
	"complypilot/internal/handlers"
	"complypilot/internal/identity"
	"complypilot/internal/risk"
	"complypilot/internal/server"

	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC3339,
		}),
	))

	cfg := config.Load()
	database.Init(cfg.DBDSN)

	analyzer, err := analysis.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("analyzer init: %v", err)
	}

	handlers.Init(
		cfg,
		identity.NewClient(cfg.AuthServiceURL),
		risk.NewManager(database.NewRegisterStore()),
		documents.NewService(database.NewDocumentStore(), analyzer, cfg.AnalysisTimeout),
	)

	r := server.NewRouter()

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	slog.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
