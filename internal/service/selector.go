package service

import (
	"fmt"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
)

// hdThreshold is the minimum pixel height for the HD badge.
const hdThreshold = 720

// SelectRenditions turns the engine's raw rendition list into the bounded
// display catalog. Raw renditions are admitted iff the container is mp4,
// a pixel height is present, and the rendition carries its own audio
// track (no separate muxing step exists downstream). Discovery order is
// preserved, one synthetic audio entry is appended, and the combined list
// is truncated to the cap last — so with six or more qualifying video
// renditions the audio entry is silently dropped.
func SelectRenditions(raw []domain.RawRendition) []domain.RenditionEntry {
	entries := make([]domain.RenditionEntry, 0, len(raw)+1)

	for _, r := range raw {
		if !admissible(r) {
			continue
		}
		entries = append(entries, domain.RenditionEntry{
			ID:       r.ID,
			Quality:  qualityLabel(r),
			Type:     "MP4",
			Size:     domain.FormatSize(pickSize(r)),
			Category: domain.CategoryVideo,
			Badge:    badge(r.Height),
			URL:      r.URL,
		})
	}

	entries = append(entries, audioPlaceholder())

	if len(entries) > domain.RenditionCap {
		entries = entries[:domain.RenditionCap]
	}
	return entries
}

func admissible(r domain.RawRendition) bool {
	return r.Ext == "mp4" && r.Height != 0 && r.ACodec != "" && r.ACodec != "none"
}

// qualityLabel renders "{height}p {vcodec[:4]}". An empty codec name
// yields a trailing space, matching the display contract.
func qualityLabel(r domain.RawRendition) string {
	codec := r.VCodec
	if len(codec) > 4 {
		codec = codec[:4]
	}
	return fmt.Sprintf("%dp %s", r.Height, codec)
}

// pickSize prefers the exact file size, then the approximation, then zero
// (which FormatSize renders as "N/A").
func pickSize(r domain.RawRendition) int64 {
	if r.Filesize > 0 {
		return r.Filesize
	}
	if r.FilesizeApprox > 0 {
		return r.FilesizeApprox
	}
	return 0
}

func badge(height int) string {
	if height >= hdThreshold {
		return domain.BadgeHD
	}
	return ""
}

// audioPlaceholder is the fixed-quality audio option appended after the
// video entries. It is illustrative only: it carries no direct URL and is
// not independently downloadable.
func audioPlaceholder() domain.RenditionEntry {
	return domain.RenditionEntry{
		ID:       "audio_mp3",
		Quality:  "320kbps",
		Type:     "MP3",
		Size:     "5.5 MB",
		Category: domain.CategoryAudio,
		Badge:    domain.BadgeHQ,
	}
}
