package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/cta-tracker/internal/common/config"
	"github.com/cta-tracker/internal/common/logger"
	"github.com/cta-tracker/internal/tracker/fetcher"
	"github.com/cta-tracker/internal/tracker/renderer"
)

func main() {
	// Load .env if present; required values may also come from the real
	// environment, so a missing file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(
		logger.ParseLevel(cfg.Logging.Level),
		logger.ConsoleWriter(),
		logger.FileWriter(cfg.Logging.FilePath),
	)

	log.Info("CTA arrivals tracker starting",
		"stop_id", cfg.API.StopID,
		"output_dir", cfg.Board.OutputDir,
		"refresh_interval_seconds", cfg.Board.RefreshInterval,
	)

	f := fetcher.New(cfg, log)
	r := renderer.New(cfg, log)

	records, err := f.Fetch(context.Background())
	if err != nil {
		log.Fatal("Failed to fetch arrivals", "error", err)
	}

	if err := r.Render(records); err != nil {
		log.Fatal("Failed to render arrivals board", "error", err)
	}
}
