package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dramfinder/backend/internal/domain"
)

// fileFormat is the on-disk snapshot document
type fileFormat struct {
	LastUpdated time.Time             `json:"lastUpdated"`
	TotalCount  int                   `json:"totalCount"`
	Entries     []domain.CatalogEntry `json:"entries"`
}

// FileStore persists catalog snapshots as a single JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a snapshot store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted snapshot. Returns ErrSnapshotNotFound when no
// snapshot file exists yet.
func (s *FileStore) Load(ctx context.Context) (*domain.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var doc fileFormat
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	return &domain.Catalog{
		Entries:     doc.Entries,
		LastUpdated: doc.LastUpdated,
	}, nil
}

// Save writes the snapshot via a temp file and rename so a reader never
// observes a torn file.
func (s *FileStore) Save(ctx context.Context, catalog *domain.Catalog) error {
	doc := fileFormat{
		LastUpdated: catalog.LastUpdated,
		TotalCount:  len(catalog.Entries),
		Entries:     catalog.Entries,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}
