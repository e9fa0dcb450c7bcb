package extractor

import (
	"context"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
)

// Engine resolves a media-source URL into normalized metadata plus the
// raw rendition list. Implementations wrap an external extraction engine
// so it can be swapped or mocked without touching rendition selection.
type Engine interface {
	// Resolve returns the extraction result for url, or an error carrying
	// the engine's message verbatim. No retries are performed.
	Resolve(ctx context.Context, url string) (*domain.Extraction, error)
}
