package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"couponscan/internal/config"
	"couponscan/internal/utils"
	"couponscan/pkg/backend"
	"couponscan/pkg/logger"
)

type ImageService interface {
	// UploadBillImage shrinks a jpeg or png bill photo, re-encodes it as
	// jpeg and uploads it. The returned URL goes into the redemption record.
	UploadBillImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

type imageService struct {
	client backend.Client
	config *config.UploadConfig
	logger *logger.Logger
}

func NewImageService(client backend.Client, cfg *config.UploadConfig, logger *logger.Logger) ImageService {
	return &imageService{client: client, config: cfg, logger: logger}
}

func (s *imageService) UploadBillImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	if !utils.IsImageFile(filename) {
		return "", ErrNotImage
	}

	raw, err := io.ReadAll(io.LimitReader(r, s.config.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(raw)) > s.config.MaxBytes {
		return "", ErrImageTooLarge
	}

	data, dims, err := utils.CompressImage(bytes.NewReader(raw), s.config.MaxWidth, s.config.MaxHeight, s.config.JPEGQuality)
	if err != nil {
		if errors.Is(err, utils.ErrUnsupportedImage) {
			return "", fmt.Errorf("%w: %w", ErrNotImage, err)
		}
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + ".jpg"
	link, err := s.client.UploadImage(ctx, name, bytes.NewReader(data))
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Bill image upload failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"original_bytes": len(raw),
		"sent_bytes":     len(data),
		"width":          dims.Width,
		"height":         dims.Height,
	}).Info("Bill image uploaded")

	return link, nil
}
