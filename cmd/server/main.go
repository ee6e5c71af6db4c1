package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/api"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/catalog"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/config"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/stats"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if err != nil {
		log.Error("load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	sources, err := catalog.SourcesFromConfig(cfg.Sources)
	if err != nil {
		log.Error("invalid sources", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat := catalog.New(sources, catalog.NewLoader(cfg.DecodeWorkers, log), catalog.NewCache(), log)
	if cfg.WarmCache {
		go cat.Warm(ctx)
	}

	latency := stats.NewLatency(cfg.StatsWindow)
	engine := search.NewEngine(cat, latency, log)
	srv := api.NewServer(engine, cat, latency, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting remedy search", "port", cfg.Port, "sources", len(sources))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
