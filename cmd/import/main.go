package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkraj/jobtrack/internal/config"
	"github.com/mkraj/jobtrack/internal/logger"
	"github.com/mkraj/jobtrack/internal/repository"
	"github.com/mkraj/jobtrack/internal/service"
	"github.com/mkraj/jobtrack/internal/source"
	"github.com/mkraj/jobtrack/internal/source/csvfile"
	"github.com/mkraj/jobtrack/internal/source/jsonlfile"
)

func main() {
	// Initialize logger first (with defaults)
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "jobtrack-import",
	})
	logger.SetDefaultLogger(appLogger)

	// Parse command line flags
	sourceType := flag.String("source", "csvfile", "Legacy source format: csvfile or jsonlfile")
	filePath := flag.String("file", "", "Path to the legacy export file")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *filePath == "" {
		appLogger.Fatal("The -file flag is required")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	appLogger.WithFields(logger.Fields{
		"source": *sourceType,
		"file":   *filePath,
	}).Info("Starting legacy import")

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories and services
	recordRepo := repository.NewRecordRepository(db)
	importService := service.NewImportService(recordRepo)

	// Get legacy source
	var src source.LegacySource
	switch *sourceType {
	case "csvfile":
		src = csvfile.NewAdapter(*filePath)
	case "jsonlfile":
		src = jsonlfile.NewAdapter(*filePath)
	default:
		appLogger.WithField("source", *sourceType).Fatal("Unknown source type")
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.Info("Received shutdown signal, canceling...")
		cancel()
	}()

	// Run import
	result, err := importService.Run(ctx, src)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to import legacy records")
	}
	appLogger.WithFields(logger.Fields{
		"total":    result.Total,
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"failed":   result.Failed,
	}).Info("Import completed")
}
