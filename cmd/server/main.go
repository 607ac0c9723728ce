package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/internal/infrastructure/router"
	"railstatus-service/internal/interface/api"
	"railstatus-service/internal/interface/repository"
	"railstatus-service/internal/usecase"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Railstatus Service", "version", cfg.AppVersion,
		"pnrProvider", cfg.PNRProvider, "trainStatusProvider", cfg.TrainStatusProvider)

	// Set up metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// One client for every upstream; the session adapter derives its own jar from it
	client := httpclient.New(cfg.UpstreamTimeout)

	// Register the upstream variants and pick the configured ones
	pnrRouter := router.NewProviderRouter[usecase.PNRProvider](log)
	pnrRouter.Register(repository.NewIRCTCPNRRepository(cfg, client, m, log))
	pnrRouter.Register(repository.NewSessionPNRRepository(cfg, client, m, log))

	trainRouter := router.NewProviderRouter[usecase.TrainRunProvider](log)
	trainRouter.Register(repository.NewRailYatriTrainRepository(cfg, client, m, log))
	trainRouter.Register(repository.NewLegacyTrainRepository(cfg, client, m, log))

	pnrRepo, ok := pnrRouter.GetProvider(cfg.PNRProvider)
	if !ok {
		log.Fatal("No adapter for PNR provider", "provider", cfg.PNRProvider)
	}
	trainRepo, ok := trainRouter.GetProvider(cfg.TrainStatusProvider)
	if !ok {
		log.Fatal("No adapter for train status provider", "provider", cfg.TrainStatusProvider)
	}
	searchRepo := repository.NewSearchRepository(cfg, client, m, log)

	// Set up use cases
	pnrService := usecase.NewPNRService(pnrRepo, m, log)
	trainService := usecase.NewTrainService(trainRepo, m, log)

	app := api.NewApp(&api.APIServer{
		PNRs:     pnrService,
		Trains:   trainService,
		Journeys: usecase.NewJourneyService(pnrService, trainService, log),
		Search:   usecase.NewSearchService(searchRepo, cfg.SearchLimit, m, log),
		Gatherer: registry,
		Version:  cfg.AppVersion,
		Logger:   log,
	}, cfg.ReadTimeout, cfg.WriteTimeout)

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Service stopped")
}
