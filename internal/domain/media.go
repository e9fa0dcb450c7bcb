package domain

// RenditionCap is the maximum number of rendition entries surfaced to a
// client for one media item.
const RenditionCap = 6

// Category labels a rendition entry as a video or audio option.
type Category string

const (
	CategoryVideo Category = "video"
	CategoryAudio Category = "audio"
)

// Badge values shown next to a rendition entry.
const (
	BadgeHD = "HD"
	BadgeHQ = "HQ"
)

// RawRendition is one encodable option as described by the extraction
// engine. It is read-only input to rendition selection.
type RawRendition struct {
	ID             string
	Ext            string
	Height         int
	VCodec         string
	ACodec         string
	Filesize       int64
	FilesizeApprox int64
	URL            string
}

// RenditionEntry is the display-ready projection of a rendition. Entries
// with CategoryVideo always carry a direct URL; the synthetic audio entry
// does not.
type RenditionEntry struct {
	ID       string   `json:"id"`
	Quality  string   `json:"quality"`
	Type     string   `json:"type"`
	Size     string   `json:"size"`
	Category Category `json:"category"`
	Badge    string   `json:"badge"`
	URL      string   `json:"url,omitempty"`
}

// Extraction is the normalized result of one engine resolve call: media
// metadata plus the raw rendition list, before selection. Fields absent
// from the engine output pass through empty.
type Extraction struct {
	ID         string
	Title      string
	Thumbnail  string
	Duration   string
	Author     string
	Renditions []RawRendition
}

// MediaInfo is the client-facing catalog for one media item. It is
// created fresh per extraction request and never persisted.
type MediaInfo struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Thumbnail  string           `json:"thumbnail"`
	Duration   string           `json:"duration"`
	Author     string           `json:"author"`
	Renditions []RenditionEntry `json:"formats"`
}

// RelayRequest describes one streaming relay: where to pull bytes from
// and the filename offered to the client. Scoped to a single connection.
type RelayRequest struct {
	OriginURL string
	Filename  string
}
