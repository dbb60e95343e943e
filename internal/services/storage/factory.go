package storage

import (
	"fmt"

	"github.com/denisAlshanov/ytgrab/internal/config"
)

// NewStorage creates the S3 archive backend.
func NewStorage(cfg *config.ArchiveConfig) (StorageInterface, error) {
	fmt.Printf("Creating S3 archive storage (endpoint: %s)\n", cfg.EndpointURL)
	storage, err := NewS3Storage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 storage: %w", err)
	}

	return storage, nil
}
