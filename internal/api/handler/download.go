package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/relay"
)

// defaultFilename is offered when the caller does not name the download.
const defaultFilename = "video.mp4"

// DownloadHandler handles streaming download requests.
type DownloadHandler struct {
	relay  *relay.Client
	logger *slog.Logger
}

// NewDownloadHandler creates a new download handler.
func NewDownloadHandler(relayClient *relay.Client, logger *slog.Logger) *DownloadHandler {
	return &DownloadHandler{
		relay:  relayClient,
		logger: logger,
	}
}

// Download handles GET /download
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	originURL := r.URL.Query().Get("url")
	if originURL == "" {
		http.Error(w, "Missing URL", http.StatusBadRequest)
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = defaultFilename
	}

	relayID := "rly_" + uuid.New().String()[:8]
	logger := h.logger.With("relay_id", relayID, "filename", filename)
	logger.Info("relay start", "origin", originURL)

	// Relay failures never reach the client as protocol errors: the
	// stream just ends, and the log line below is the only trace.
	sent, err := h.relay.Relay(r.Context(), w, domain.RelayRequest{
		OriginURL: originURL,
		Filename:  filename,
	})
	if err != nil {
		logger.Error("relay ended early", "bytes_sent", sent, "error", err)
		return
	}

	logger.Info("relay complete", "bytes_sent", sent)
}
