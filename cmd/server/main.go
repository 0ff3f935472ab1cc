package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/pdf-summarizer/internal/analyzer"
	"github.com/BerylCAtieno/pdf-summarizer/internal/config"
	"github.com/BerylCAtieno/pdf-summarizer/internal/router"
	"github.com/BerylCAtieno/pdf-summarizer/internal/services"
	"github.com/BerylCAtieno/pdf-summarizer/internal/storage"
	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
	"github.com/BerylCAtieno/pdf-summarizer/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize upload storage
	store, err := storage.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize upload storage", "error", err, "backend", cfg.UploadBackend)
	}

	// Initialize models
	timeout := time.Duration(cfg.ModelTimeoutSec) * time.Second
	summaryModel := analyzer.NewHuggingFaceModel(cfg.HFAPIURL, cfg.HFAPIToken, cfg.SummarizerModel, timeout, logger)
	generatorModel := analyzer.NewHuggingFaceModel(cfg.HFAPIURL, cfg.HFAPIToken, cfg.GeneratorModel, timeout, logger)

	summaryService := services.NewService(
		store,
		analyzer.NewChunkSummarizer(summaryModel, cfg.SummaryMinLength, cfg.SummaryMaxLength, logger),
		analyzer.NewStructuredGenerator(generatorModel),
		services.Options{ChunkMaxWords: cfg.ChunkMaxWords, BulletMaxItems: cfg.BulletMaxItems},
		logger,
	)

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal("Failed to parse templates", "error", err)
	}

	// Setup HTTP router
	handler := router.NewRouter(summaryService, cfg.MaxFileSize, router.Assets{
		Templates: templates,
		Static:    web.Static(),
	}, logger)

	// Summarization blocks on several model calls, so the write timeout is
	// generous.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			"addr", cfg.Addr(),
			"upload_backend", cfg.UploadBackend,
			"summarizer_model", summaryModel.Name(),
			"generator_model", generatorModel.Name())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
