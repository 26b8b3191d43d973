package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"todo-manager/internal/assistant"
	"todo-manager/internal/config"
	router "todo-manager/internal/http"
	"todo-manager/internal/http/handlers"
	"todo-manager/internal/logging"
	"todo-manager/internal/service"
	"todo-manager/internal/store/memory"
	"todo-manager/internal/workerpool"
)

type askerCloser interface {
	assistant.Asker
	Close() error
}

func main() {
	configPath := flag.String("config", os.Getenv("TODO_CONFIG"), "path to a TOML config file")
	flag.Parse()

	logger := logging.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config load failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	store := memory.New()

	todoService, err := service.NewTodoService(store, logger)
	if err != nil {
		logger.Error("todo service initiation failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	asker := newAsker(cfg.Gemini, logger)

	pool := workerpool.New(cfg.Assistant.QueueSize)
	pool.Start(cfg.Assistant.Workers)

	assistantService, err := service.NewAssistantService(asker, pool, cfg.Gemini.Timeout, logger)
	if err != nil {
		logger.Error("assistant service initiation failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	handler := router.New(
		handlers.NewTodoHandler(todoService, logger),
		handlers.NewAskHandler(assistantService),
		router.RequestLogger(logger),
		router.CORS(cfg.CORSOrigins),
	)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}

	go func() {
		logger.Info("listening", map[string]interface{}{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	logger.Info("shut down signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	if err := pool.Shutdown(ctx); err != nil {
		logger.Error("worker pool shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	if err := asker.Close(); err != nil {
		logger.Error("assistant close failed", map[string]interface{}{"error": err.Error()})
	}

	logger.Info("shut down gracefully")
}

// newAsker falls back to an unconfigured assistant so the todo API still
// serves when Gemini is unavailable.
func newAsker(cfg config.GeminiConfig, logger *logging.Logger) askerCloser {
	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
		return assistant.Unconfigured{}
	}

	gemini, err := assistant.NewGemini(context.Background(), assistant.GeminiConfig{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		logger.Warn("gemini client unavailable, assistant disabled", map[string]interface{}{"error": err.Error()})
		return assistant.Unconfigured{}
	}

	logger.Info("assistant enabled", map[string]interface{}{"model": cfg.Model})
	return gemini
}
