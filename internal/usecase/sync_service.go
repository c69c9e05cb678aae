package usecase

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/dramfinder/backend/internal/domain"
	"golang.org/x/sync/singleflight"
)

// SyncConfig holds configuration for the sync service
type SyncConfig struct {
	RefreshInterval time.Duration
}

// SyncService owns the current catalog snapshot and keeps it fresh.
//
// The snapshot is an immutable value behind an atomic pointer: readers always
// see either the complete previous catalog or the complete new one. Syncs are
// deduplicated through singleflight so the periodic refresher and on-demand
// callers never run two fetches at once; a late caller joins the in-flight
// sync and shares its result.
type SyncService struct {
	client          domain.ListingsClient
	store           domain.SnapshotStore
	refreshInterval time.Duration

	current atomic.Pointer[domain.Catalog]
	syncing atomic.Bool
	group   singleflight.Group
}

// NewSyncService creates a sync service with dependencies
func NewSyncService(client domain.ListingsClient, store domain.SnapshotStore, config SyncConfig) *SyncService {
	refreshInterval := config.RefreshInterval
	if refreshInterval <= 0 {
		refreshInterval = 24 * time.Hour
	}

	return &SyncService{
		client:          client,
		store:           store,
		refreshInterval: refreshInterval,
	}
}

// Current returns the latest complete snapshot, or nil before the first
// successful sync.
func (s *SyncService) Current() *domain.Catalog {
	return s.current.Load()
}

// State reports the synchronizer lifecycle state. A failed refresh never
// regresses a ready catalog back to syncing or empty.
func (s *SyncService) State() domain.CatalogState {
	if s.current.Load() != nil {
		return domain.CatalogStateReady
	}
	if s.syncing.Load() {
		return domain.CatalogStateSyncing
	}
	return domain.CatalogStateEmpty
}

// Sync fetches the remote catalog and atomically publishes a new snapshot.
//
// Transient fetch errors are absorbed here: a partial fetch that yielded any
// entries still becomes a usable snapshot, and a fetch that yielded nothing
// leaves the previous snapshot untouched. Sync only returns an error when no
// catalog exists at all afterward. Concurrent callers share one fetch.
func (s *SyncService) Sync(ctx context.Context) (*domain.Catalog, error) {
	result, err, _ := s.group.Do("catalog", func() (interface{}, error) {
		return s.doSync(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Catalog), nil
}

func (s *SyncService) doSync(ctx context.Context) (*domain.Catalog, error) {
	s.syncing.Store(true)
	defer s.syncing.Store(false)

	log.Printf("[SYNC] Starting catalog sync")
	entries, fetchErr := s.client.FetchAll(ctx)

	if len(entries) == 0 {
		if prev := s.current.Load(); prev != nil {
			log.Printf("[SYNC] Fetch yielded no entries (%v), keeping previous snapshot of %d", fetchErr, prev.Len())
			return prev, nil
		}
		log.Printf("[SYNC] Fetch yielded no entries and no previous snapshot exists: %v", fetchErr)
		return nil, domain.ErrCatalogUnavailable
	}

	if fetchErr != nil {
		log.Printf("[SYNC] Sync incomplete, publishing partial catalog of %d entries: %v", len(entries), fetchErr)
	}

	catalog := &domain.Catalog{
		Entries:     entries,
		LastUpdated: time.Now().UTC(),
	}
	s.current.Store(catalog)

	if err := s.store.Save(ctx, catalog); err != nil {
		log.Printf("[SYNC] Failed to persist snapshot: %v", err)
	}

	log.Printf("[SYNC] Catalog ready: %d entries", catalog.Len())
	return catalog, nil
}

// Start warms the service from the persisted snapshot, runs an initial sync
// if none was usable, and refreshes on the configured interval until ctx is
// cancelled.
func (s *SyncService) Start(ctx context.Context) {
	if cat, err := s.store.Load(ctx); err == nil && cat.Len() > 0 {
		s.current.Store(cat)
		log.Printf("[SYNC] Loaded persisted snapshot: %d entries (updated %s)", cat.Len(), cat.LastUpdated.Format(time.RFC3339))
	} else if err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		log.Printf("[SYNC] Could not load persisted snapshot: %v", err)
	}

	if s.current.Load() == nil {
		if _, err := s.Sync(ctx); err != nil {
			log.Printf("[SYNC] Initial sync failed: %v", err)
		}
	}

	go s.refreshLoop(ctx)
}

// refreshLoop re-runs Sync on a fixed wall-clock interval
func (s *SyncService) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sync(ctx); err != nil {
				log.Printf("[SYNC] Scheduled refresh failed: %v", err)
			}
		}
	}
}
