package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/service"
)

// MediaHandler handles media extraction HTTP requests.
type MediaHandler struct {
	mediaSvc *service.MediaService
	logger   *slog.Logger
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(mediaSvc *service.MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
		logger:   logger,
	}
}

// ExtractRequest is the JSON request body for extraction.
type ExtractRequest struct {
	URL string `json:"url"`
}

// RenditionResponse represents one downloadable option in the catalog.
type RenditionResponse struct {
	ID       string `json:"id"`
	Quality  string `json:"quality"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Category string `json:"category"`
	Badge    string `json:"badge"`
	URL      string `json:"url,omitempty"`
}

// MediaResponse is the JSON response for a successful extraction.
type MediaResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Thumbnail string              `json:"thumbnail"`
	Duration  string              `json:"duration"`
	Author    string              `json:"author"`
	Formats   []RenditionResponse `json:"formats"`
}

// Extract handles POST /extract
func (h *MediaHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "No URL provided")
		return
	}
	if req.URL == "" {
		h.writeError(w, http.StatusBadRequest, "No URL provided")
		return
	}

	media, err := h.mediaSvc.Extract(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrNoURL) {
			h.writeError(w, http.StatusBadRequest, "No URL provided")
			return
		}
		var extErr *domain.ExtractionError
		if errors.As(err, &extErr) {
			// The engine's message goes to the client verbatim.
			h.writeError(w, http.StatusInternalServerError, extErr.Message)
			return
		}
		h.logger.Error("extract failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "extraction failed")
		return
	}

	resp := MediaResponse{
		ID:        media.ID,
		Title:     media.Title,
		Thumbnail: media.Thumbnail,
		Duration:  media.Duration,
		Author:    media.Author,
		Formats:   make([]RenditionResponse, 0, len(media.Renditions)),
	}
	for _, e := range media.Renditions {
		resp.Formats = append(resp.Formats, RenditionResponse{
			ID:       e.ID,
			Quality:  e.Quality,
			Type:     e.Type,
			Size:     e.Size,
			Category: string(e.Category),
			Badge:    e.Badge,
			URL:      e.URL,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *MediaHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *MediaHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
