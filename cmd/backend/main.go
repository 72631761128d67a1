package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	configloader "github.com/sobeslab/intervox/external/config"
	repositoryimpl "github.com/sobeslab/intervox/external/repository"
	speechimpl "github.com/sobeslab/intervox/external/speech"
	transcodeimpl "github.com/sobeslab/intervox/external/transcode"
	webhookimpl "github.com/sobeslab/intervox/external/webhook"
	"github.com/sobeslab/intervox/external/ws"
	"github.com/sobeslab/intervox/internal/config"
	"github.com/sobeslab/intervox/internal/interview"
)

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "speech_provider", cfg.ResolveSpeechProvider())

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching interview server")
	runServer(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	transcodeimpl.RegisterDI(injector)
	speechimpl.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	interview.RegisterDI(injector)
	ws.RegisterDI(injector)

	return injector
}

func runServer(injector do.Injector) {
	server, err := do.Invoke[*ws.Server](injector)
	if err != nil {
		slog.Error("failed to resolve websocket server", "error", err)
		os.Exit(1)
	}
	monitor, err := do.Invoke[*interview.HealthMonitor](injector)
	if err != nil {
		slog.Error("failed to resolve health monitor", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	done := make(chan struct{})
	go func() {
		if err := server.ListenAndServe(); err != nil {
			slog.Error("websocket server failed", "error", err)
		}
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	case <-done:
	}
}
