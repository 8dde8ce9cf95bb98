package storage

import (
	"context"
	"io"
)

// Provider stores uploaded bill images and hands back a public URL.
type Provider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	FileExists(ctx context.Context, key string) (bool, error)
}

type UploadRequest struct {
	Key          string    `json:"key"`
	Reader       io.Reader `json:"-"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CacheControl string    `json:"cache_control"`
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	ETag string `json:"etag,omitempty"`
}
