package storage

import (
	"context"
	"fmt"

	"hardware-inventory/config"
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/image/repository"
	gcsRepo "hardware-inventory/internal/image/repository/gcs"
	"hardware-inventory/internal/image/repository/local"
	"hardware-inventory/pkg/gcs"
	"hardware-inventory/pkg/log"
)

// Connect builds the image backend selected by cfg.Backend.
// Without a credentials path the GCS client falls back to application default credentials.
func Connect(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return local.New(cfg.Local.Root, cfg.Local.PublicPrefix, l), nil

	case config.BackendGCS:
		gcsCfg := gcs.Config{Bucket: cfg.GCS.Bucket, PublicBaseURL: cfg.GCS.PublicBaseURL}
		var (
			client *gcs.Client
			err    error
		)
		if cfg.GCS.CredentialsPath != "" {
			client, err = gcs.NewClientFromCredentialsFile(ctx, cfg.GCS.CredentialsPath, gcsCfg)
		} else {
			client, err = gcs.NewClientFromDefaultCredentials(ctx, gcsCfg)
		}
		if err != nil {
			return nil, fmt.Errorf("gcs client: %w", err)
		}
		return gcsRepo.New(client, l), nil

	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}

// ImageConfig maps the storage section onto the image manager settings.
func ImageConfig(cfg config.StorageConfig) image.Config {
	return image.Config{
		StagingDir:   cfg.StagingDir,
		SizeRule:     image.SizeRule(cfg.SizeRule),
		MaxSizeBytes: cfg.MaxSizeBytes,
	}
}

// LocalImages returns the directory to serve images from, or nil when images live remotely.
func LocalImages(cfg config.StorageConfig) *config.LocalStorageConfig {
	if cfg.Backend != config.BackendLocal {
		return nil
	}
	local := cfg.Local
	return &local
}
