package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/api/handler"
	mw "github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/api/middleware"
)

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	mediaHandler *handler.MediaHandler,
	downloadHandler *handler.DownloadHandler,
	healthHandler *handler.HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. No request timeout: relayed downloads may run
	// for as long as the origin keeps serving bytes.
	r.Use(middleware.CleanPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	// CORS for the separately hosted frontend
	r.Use(mw.CORS)

	// Liveness (no payload semantics)
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Live)
	r.Get("/stats", healthHandler.Stats)

	// Media operations
	r.Post("/extract", mediaHandler.Extract)
	r.Get("/download", downloadHandler.Download)

	return r
}
