package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/dramfinder/backend/config"
	httpDelivery "github.com/dramfinder/backend/internal/delivery/http"
	"github.com/dramfinder/backend/internal/infrastructure/baxus"
	"github.com/dramfinder/backend/internal/infrastructure/scrape"
	"github.com/dramfinder/backend/internal/infrastructure/snapshot"
	"github.com/dramfinder/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server with background catalog refresh",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Printf("Starting Dramfinder Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog API: %s (page size %d)", cfg.Catalog.BaseURL, cfg.Catalog.PageSize)
	log.Printf("Matching: min score %d, boosts +%d producer / +%d year",
		cfg.Matching.MinScore, cfg.Matching.ProducerBoost, cfg.Matching.YearBoost)

	// Initialize infrastructure dependencies
	listingsClient := baxus.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.PageSize, cfg.Catalog.MaxRetries)
	snapshotStore := snapshot.NewFileStore(cfg.Catalog.SnapshotPath)
	scrapeClient := scrape.NewClient(cfg.Scrape.ServiceURL, cfg.Scrape.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		listingsClient.SetDebug(true)
		log.Printf("Listings client debug mode enabled")
	}

	// Initialize usecase layer
	syncService := usecase.NewSyncService(listingsClient, snapshotStore, usecase.SyncConfig{
		RefreshInterval: cfg.Catalog.RefreshInterval,
	})
	matcher := usecase.NewMatcher(usecase.MatchConfig{
		MinScore:           cfg.Matching.MinScore,
		ProducerBoost:      cfg.Matching.ProducerBoost,
		YearBoost:          cfg.Matching.YearBoost,
		EnableDebugLogging: cfg.Matching.EnableDebug,
	})
	comparisonService := usecase.NewComparisonService(syncService, matcher, scrapeClient, cfg.Matching.EnableDebug)

	// Warm the catalog from the persisted snapshot and schedule refreshes
	syncService.Start(context.Background())

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService, syncService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	return router.Run(addr)
}
