package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockEngine is a test implementation of extractor.Engine.
type mockEngine struct {
	result *domain.Extraction
	err    error
}

func (m *mockEngine) Resolve(ctx context.Context, url string) (*domain.Extraction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
