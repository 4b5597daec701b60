package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"bizval-service/internal/common/config"
	"bizval-service/internal/common/logger"
	"bizval-service/internal/email"
	"bizval-service/internal/llm"
	"bizval-service/internal/server"
	"bizval-service/internal/valuation"
)

func main() {
	configPath := flag.String("config", "", "path to a config file; the default search paths are used when empty")
	flag.Parse()

	zapLog := logger.New("info", "console")
	// Deferred as a closure so the rebuilt production logger is the one
	// synced on shutdown.
	defer func() { _ = zapLog.Sync() }()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting valuation service...")

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	ctx := context.Background()

	// --- Language model client ---
	generator, err := llm.NewGeminiGenerator(ctx, llm.Config{
		APIKey:     cfg.APIs.Gemini.APIKey,
		Model:      cfg.APIs.Gemini.Model,
		Timeout:    config.GetDuration(cfg.APIs.Gemini.Timeout),
		MaxRetries: cfg.APIs.Gemini.MaxRetries,
	}, log)
	if err != nil {
		zapLog.Fatal("gemini client init failed", zap.Error(err))
	}
	defer generator.Close()

	// --- Email sender ---
	var sender email.Sender
	if cfg.Integrations.AWS.SES.Enabled {
		sesSender, err := email.NewSESSender(ctx, cfg.Integrations.AWS.Region, log)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		sender = sesSender
	} else {
		zapLog.Warn("SES disabled, valuation emails will be logged and dropped")
		sender = &email.LogSender{Logger: log}
	}

	handler, err := valuation.NewHandler(&valuation.Config{
		FromEmail:     cfg.Integrations.AWS.SES.FromEmail,
		Subject:       cfg.Email.Subject,
		AssetsBaseURL: cfg.Email.AssetsBaseURL,
	}, generator, sender, log)
	if err != nil {
		zapLog.Fatal("handler init failed", zap.Error(err))
	}

	router := server.NewRouter(handler, cfg.App.Name, cfg.App.Version, log)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}
