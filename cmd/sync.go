package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dramfinder/backend/config"
	"github.com/dramfinder/backend/internal/domain"
	"github.com/dramfinder/backend/internal/infrastructure/baxus"
	"github.com/dramfinder/backend/internal/infrastructure/snapshot"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the full catalog once and write the snapshot file",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := baxus.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.PageSize, cfg.Catalog.MaxRetries)
	store := snapshot.NewFileStore(cfg.Catalog.SnapshotPath)

	ctx := context.Background()
	entries, fetchErr := client.FetchAll(ctx)
	if len(entries) == 0 {
		if fetchErr != nil {
			return fmt.Errorf("no entries fetched: %w", fetchErr)
		}
		return fmt.Errorf("no entries fetched, snapshot not updated")
	}
	if fetchErr != nil {
		log.Printf("[SYNC] Fetch incomplete, saving partial catalog: %v", fetchErr)
	}

	catalog := &domain.Catalog{
		Entries:     entries,
		LastUpdated: time.Now().UTC(),
	}
	if err := store.Save(ctx, catalog); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	fmt.Printf("Saved %d entries to %s\n", catalog.Len(), cfg.Catalog.SnapshotPath)
	return nil
}
