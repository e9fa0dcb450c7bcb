package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/extractor"
)

// MediaService resolves source URLs into client-usable media catalogs.
type MediaService struct {
	engine extractor.Engine
	logger *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(engine extractor.Engine, logger *slog.Logger) *MediaService {
	return &MediaService{
		engine: engine,
		logger: logger,
	}
}

// Extract asks the extraction engine to resolve url and builds the
// bounded rendition catalog from the result. The engine's failure message
// passes through verbatim; no retries, no partial recovery.
func (s *MediaService) Extract(ctx context.Context, url string) (*domain.MediaInfo, error) {
	if url == "" {
		return nil, domain.ErrNoURL
	}

	extractionID := "ext_" + uuid.New().String()[:8]
	start := time.Now()

	info, err := s.engine.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}

	media := &domain.MediaInfo{
		ID:         info.ID,
		Title:      info.Title,
		Thumbnail:  info.Thumbnail,
		Duration:   info.Duration,
		Author:     info.Author,
		Renditions: SelectRenditions(info.Renditions),
	}

	s.logger.Info("media extracted",
		"extraction_id", extractionID,
		"media_id", media.ID,
		"raw_renditions", len(info.Renditions),
		"selected", len(media.Renditions),
		"duration", time.Since(start),
	)
	return media, nil
}
