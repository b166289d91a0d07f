// cmd/tagger-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"german-tagger/internal/common/config"
	"german-tagger/internal/common/logger"
	"german-tagger/internal/common/metrics"
	"german-tagger/internal/common/observability"
	"german-tagger/internal/engine"
	"german-tagger/internal/engine/spacy"
	"german-tagger/internal/engine/stanza"
	"german-tagger/internal/server"
	"german-tagger/internal/tagging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting tagger server...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load engines ---
	// Load failures are recorded as unavailable, never fatal: the service can
	// run on a single engine, and /health reports what actually loaded.
	registry := loadEngines(ctx, cfg, log, zapLog)
	if !registry.AnyAvailable() {
		zapLog.Warn("no tagging engine loaded; every /tag call will return 503")
	}

	service := tagging.NewService(registry, obs, log)
	srv := server.New(cfg.Server, service, log)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}

// loadEngines attempts both model loads synchronously; the process does not
// accept requests until both attempts finish.
func loadEngines(ctx context.Context, cfg *config.Config, log logger.Logger, zapLog *zap.Logger) *engine.Registry {
	var primary, secondary engine.Provider

	if cfg.Engines.Spacy.BaseURL != "" {
		client := spacy.NewClient(&spacy.Config{
			BaseURL: cfg.Engines.Spacy.BaseURL,
			Model:   cfg.Engines.Spacy.Model,
			Timeout: config.GetDuration(cfg.Engines.Spacy.Timeout),
		}, log)

		if err := client.Load(ctx); err != nil {
			zapLog.Warn("spaCy model not loaded",
				zap.String("model", cfg.Engines.Spacy.Model),
				zap.Error(err),
			)
		} else {
			primary = client
		}
	} else {
		zapLog.Warn("spaCy engine not configured, skipping")
	}

	if cfg.Engines.Stanza.BaseURL != "" {
		client := stanza.NewClient(&stanza.Config{
			BaseURL: cfg.Engines.Stanza.BaseURL,
			Timeout: config.GetDuration(cfg.Engines.Stanza.Timeout),
		}, log)

		if err := client.Load(ctx); err != nil {
			zapLog.Warn("Stanza pipeline not loaded",
				zap.String("lang", stanza.Language),
				zap.Error(err),
			)
		} else {
			secondary = client
		}
	} else {
		zapLog.Warn("Stanza engine not configured, skipping")
	}

	registry := engine.NewRegistry(primary, secondary)
	for name, available := range registry.Availability() {
		val := 0.0
		if available {
			val = 1.0
		}
		metrics.EngineAvailable.WithLabelValues(name).Set(val)
	}
	return registry
}
