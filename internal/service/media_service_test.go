package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockEngine is a test implementation of extractor.Engine.
type mockEngine struct {
	result  *domain.Extraction
	err     error
	lastURL string
}

func (m *mockEngine) Resolve(ctx context.Context, url string) (*domain.Extraction, error) {
	m.lastURL = url
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func TestMediaService_Extract_Success(t *testing.T) {
	engine := &mockEngine{
		result: &domain.Extraction{
			ID:        "abc",
			Title:     "Clip",
			Thumbnail: "https://cdn.example/t.jpg",
			Duration:  "1:00",
			Author:    "Channel",
			Renditions: []domain.RawRendition{
				{ID: "22", Ext: "mp4", Height: 720, VCodec: "avc1", ACodec: "mp4a", Filesize: 2048, URL: "https://cdn.example/720.mp4"},
				{ID: "247", Ext: "webm", Height: 1080, VCodec: "vp9", ACodec: "opus", URL: "https://cdn.example/1080.webm"},
			},
		},
	}
	svc := NewMediaService(engine, testLogger())

	media, err := svc.Extract(context.Background(), "https://example.com/v")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if engine.lastURL != "https://example.com/v" {
		t.Errorf("engine URL = %q, want request URL", engine.lastURL)
	}
	if media.ID != "abc" || media.Title != "Clip" || media.Author != "Channel" {
		t.Errorf("metadata = %+v, want engine metadata passed through", media)
	}

	// One qualifying mp4 rendition plus the audio placeholder.
	if len(media.Renditions) != 2 {
		t.Fatalf("renditions = %d, want 2", len(media.Renditions))
	}
	if media.Renditions[0].ID != "22" {
		t.Errorf("first rendition = %q, want the mp4 entry", media.Renditions[0].ID)
	}
	if media.Renditions[1].ID != "audio_mp3" {
		t.Errorf("last rendition = %q, want the audio placeholder", media.Renditions[1].ID)
	}
}

func TestMediaService_Extract_EmptyURL(t *testing.T) {
	svc := NewMediaService(&mockEngine{}, testLogger())

	_, err := svc.Extract(context.Background(), "")
	if !errors.Is(err, domain.ErrNoURL) {
		t.Errorf("error = %v, want ErrNoURL", err)
	}
}

func TestMediaService_Extract_EngineErrorPassesThrough(t *testing.T) {
	engineErr := domain.NewExtractionError("ERROR: no renditions found")
	svc := NewMediaService(&mockEngine{err: engineErr}, testLogger())

	_, err := svc.Extract(context.Background(), "https://example.com/v")

	var extErr *domain.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error type = %T, want *domain.ExtractionError", err)
	}
	if extErr.Message != "ERROR: no renditions found" {
		t.Errorf("message = %q, want engine message verbatim", extErr.Message)
	}
}
