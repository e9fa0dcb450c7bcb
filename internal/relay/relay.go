package relay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/config"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
)

// Client relays media bytes from an origin host to a waiting HTTP
// response without buffering the file.
type Client struct {
	// streamClient has no overall timeout so arbitrarily large bodies can
	// relay; only the wait for response headers is bounded.
	streamClient *http.Client
	userAgent    string
	chunkSize    int
	logger       *slog.Logger
}

// NewClient creates a streaming relay client.
func NewClient(cfg config.RelayConfig, logger *slog.Logger) *Client {
	transport := &http.Transport{
		ResponseHeaderTimeout: cfg.HeaderTimeout,
	}

	return &Client{
		streamClient: &http.Client{Transport: transport},
		userAgent:    cfg.UserAgent,
		chunkSize:    cfg.ChunkSize,
		logger:       logger,
	}
}

// Relay pulls the body at req.OriginURL and forwards it to w in fixed-size
// chunks, flushing each chunk as it is read. Attachment headers are
// emitted before the first byte and never change. Any origin failure ends
// the stream with no client-visible error; the returned error is the only
// signal. A client disconnect cancels the pending origin read through ctx
// and returns ErrClientGone. Returns the number of bytes forwarded.
func (c *Client) Relay(ctx context.Context, w http.ResponseWriter, req domain.RelayRequest) (int64, error) {
	body, err := c.open(ctx, req.OriginURL)
	if err != nil {
		// The client sees a 200 with an empty body and no attachment
		// headers: relay failures carry no protocol-level error, and a
		// connect failure must not hand out a named zero-byte download.
		w.WriteHeader(http.StatusOK)
		return 0, fmt.Errorf("%w: %v", domain.ErrRelayOriginFailed, err)
	}
	defer body.Close()

	// Attachment headers go out only once the origin connection is up,
	// before the first chunk, and never change while streaming.
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.Filename))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	return c.stream(w, body)
}

// open issues the outbound request. The origin is assumed to reject
// requests lacking a recognizable browser identity, hence the desktop
// User-Agent. The body streams regardless of origin status; an unexpected
// status is only logged.
func (c *Client) open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "video/mp4,video/*;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("origin returned unexpected status",
			"url", url,
			"status", resp.StatusCode,
		)
	}

	return resp.Body, nil
}

// stream is the chunk loop: read up to chunkSize bytes from the origin,
// write them to the client, flush, repeat. The blocking client write
// paces origin reads, bounding memory to the chunk size.
func (c *Client) stream(w http.ResponseWriter, body io.Reader) (int64, error) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, c.chunkSize)

	var sent int64
	for {
		n, rerr := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return sent, fmt.Errorf("%w: %v", domain.ErrClientGone, werr)
			}
			sent += int64(n)
			if flusher != nil {
				flusher.Flush()
			}
		}
		if rerr == io.EOF {
			return sent, nil
		}
		if rerr != nil {
			return sent, fmt.Errorf("%w: %v", domain.ErrRelayOriginFailed, rerr)
		}
	}
}
