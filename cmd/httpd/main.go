package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/northhealth/triage/internal/api"
	"github.com/northhealth/triage/internal/config"
	"github.com/northhealth/triage/internal/logging"
	"github.com/northhealth/triage/internal/processor"
	"github.com/northhealth/triage/internal/sentimentml"
	"github.com/northhealth/triage/internal/taxonomy"
	"github.com/northhealth/triage/internal/telemetry"
	"github.com/northhealth/triage/internal/triage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if cfg.Logging.Output != "" {
		logCfg.OutputPaths = []string{cfg.Logging.Output}
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting triage service",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port))

	if err := run(cfg, logger); err != nil {
		logger.Error("Service failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx := context.Background()
	kvLogger := logging.NewAdapter(logger)

	tax := taxonomy.Default()

	tel := telemetry.NewProvider()

	var modelClient triage.ModelClient
	if cfg.Sentiment.ModelEnabled {
		modelClient = sentimentml.NewClient(cfg.Sentiment.ModelServiceURL)
		logger.Info("Sentiment model client configured",
			logging.String("url", cfg.Sentiment.ModelServiceURL))
	}

	sentiment := triage.NewSentimentClassifier(ctx, modelClient, cfg.Sentiment.MaxInputChars,
		cfg.Sentiment.ProbeTimeout, logger.With(logging.String("component", "sentiment")))

	pipeline := triage.NewPipeline(
		triage.NewEmergencyDetector(tax.Emergency, logger.With(logging.String("component", "emergency"))),
		triage.NewCategoryDetector(tax, cfg.Triage.SaturationRatio, logger.With(logging.String("component", "category"))),
		sentiment,
		triage.NewUrgencyClassifier(cfg.Triage.SentimentThreshold, cfg.Triage.ScoreThreshold),
		triage.NewAdviceSelector(tax, cfg.Triage.AdviceThreshold, logger.With(logging.String("component", "advice"))),
		tel,
		logger.With(logging.String("component", "pipeline")),
	)

	limiter := processor.NewRateLimiter(cfg.Service.AnalyzeRPS, cfg.Service.AnalyzeRPS, kvLogger)
	batchProcessor := processor.NewBatchProcessor(pipeline, cfg.Service.Concurrency, limiter, tel, kvLogger)

	handler := api.NewHandler(
		pipeline,
		batchProcessor,
		cfg.Service.MaxBatchTexts,
		cfg.Service.MaxFileRows,
		cfg.Service.Name,
		cfg.Service.Version,
		kvLogger,
	)

	server := api.NewServer(handler, tel.Handler(), api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, kvLogger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("Shutdown signal received", logging.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		logger.Info("Server stopped gracefully")
	}

	return nil
}
