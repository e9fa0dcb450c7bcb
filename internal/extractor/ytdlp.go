package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/config"
	"github.com/Dushan-Edirisinghe/Nexus-DownLoader/internal/domain"
)

// runFunc executes the engine binary and returns its stdout and stderr.
// Swappable in tests.
type runFunc func(ctx context.Context, bin string, args ...string) (stdout, stderr []byte, err error)

// YtDlp invokes the yt-dlp binary as the extraction engine.
type YtDlp struct {
	bin     string
	timeout time.Duration
	opts    Options
	logger  *slog.Logger
	run     runFunc
}

// Options enumerates the engine configuration applied to every resolve
// call, fixed at construction.
type Options struct {
	Quiet      bool
	NoWarnings bool
	Format     string
}

// NewYtDlp creates a yt-dlp backed extraction engine.
func NewYtDlp(cfg config.ExtractorConfig, logger *slog.Logger) *YtDlp {
	return &YtDlp{
		bin:     cfg.BinPath,
		timeout: cfg.Timeout,
		opts: Options{
			Quiet:      cfg.Quiet,
			NoWarnings: cfg.NoWarnings,
			Format:     cfg.Format,
		},
		logger: logger,
		run:    runCommand,
	}
}

// Resolve runs the engine against url and parses its JSON dump. The
// caller's context does not cancel a running engine call; the engine is
// bounded only by the adapter's own configured timeout.
func (y *YtDlp) Resolve(_ context.Context, url string) (*domain.Extraction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), y.timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, err := y.run(ctx, y.bin, y.args(url)...)
	if err != nil {
		msg := engineMessage(stderr, err)
		y.logger.Warn("extraction failed",
			"url", url,
			"error", msg,
			"duration", time.Since(start),
		)
		return nil, domain.NewExtractionError(msg)
	}

	info, err := parseInfo(stdout)
	if err != nil {
		return nil, domain.NewExtractionError(fmt.Sprintf("parse engine output: %v", err))
	}

	y.logger.Info("extraction complete",
		"url", url,
		"media_id", info.ID,
		"renditions", len(info.Renditions),
		"duration", time.Since(start),
	)
	return info, nil
}

// args builds the engine command line for one resolve call.
func (y *YtDlp) args(url string) []string {
	args := []string{"-J", "--no-playlist"}
	if y.opts.Quiet {
		args = append(args, "--quiet")
	}
	if y.opts.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if y.opts.Format != "" {
		args = append(args, "-f", y.opts.Format)
	}
	return append(args, url)
}

// engineJSON matches the subset of the yt-dlp -J dump this service reads.
type engineJSON struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Thumbnail      string `json:"thumbnail"`
	DurationString string `json:"duration_string"`
	Uploader       string `json:"uploader"`
	Formats        []struct {
		FormatID       string  `json:"format_id"`
		Ext            string  `json:"ext"`
		Height         int     `json:"height"`
		VCodec         string  `json:"vcodec"`
		ACodec         string  `json:"acodec"`
		Filesize       int64   `json:"filesize"`
		FilesizeApprox float64 `json:"filesize_approx"`
		URL            string  `json:"url"`
	} `json:"formats"`
}

func parseInfo(data []byte) (*domain.Extraction, error) {
	var raw engineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	info := &domain.Extraction{
		ID:         raw.ID,
		Title:      raw.Title,
		Thumbnail:  raw.Thumbnail,
		Duration:   raw.DurationString,
		Author:     raw.Uploader,
		Renditions: make([]domain.RawRendition, 0, len(raw.Formats)),
	}

	for _, f := range raw.Formats {
		info.Renditions = append(info.Renditions, domain.RawRendition{
			ID:             f.FormatID,
			Ext:            f.Ext,
			Height:         f.Height,
			VCodec:         f.VCodec,
			ACodec:         f.ACodec,
			Filesize:       f.Filesize,
			FilesizeApprox: int64(f.FilesizeApprox),
			URL:            f.URL,
		})
	}

	return info, nil
}

// engineMessage extracts the engine's own diagnostic for failed calls,
// falling back to the exec error when the engine wrote nothing.
func engineMessage(stderr []byte, err error) string {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return msg
	}
	return err.Error()
}

func runCommand(ctx context.Context, bin string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
