package storage

import (
	"context"
	"fmt"

	"couponscan/internal/config"
)

// NewProvider builds the provider selected by cfg.Provider.
func NewProvider(ctx context.Context, cfg *config.StorageConfig) (Provider, error) {
	var (
		provider Provider
		err      error
	)
	switch cfg.Provider {
	case config.StorageLocal:
		provider, err = NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	case config.StorageS3:
		provider, err = NewAWSS3Storage(ctx, cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case config.StorageGCS:
		provider, err = NewGCPStorage(ctx, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return provider, nil
}
