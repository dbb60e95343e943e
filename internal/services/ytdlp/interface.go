package ytdlp

import (
	"context"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

// ProgressFunc receives one raw progress line per callback while a download
// is running.
type ProgressFunc func(line string)

// DownloadOptions selects what the download mode produces.
type DownloadOptions struct {
	// FormatSpec is a tool format selector: a bare format code or
	// "video+audio" for a merged download.
	FormatSpec string
	// OutputTemplate is the tool output path template, e.g. "dir/id.%(ext)s".
	OutputTemplate string
	// AudioOnly extracts an m4a audio track instead of merging into mp4.
	AudioOnly bool
}

// Extractor defines the interface for the extraction tool.
type Extractor interface {
	DumpInfo(ctx context.Context, url string, overrides Args) (*models.VideoMetadata, error)
	Download(ctx context.Context, url string, opts DownloadOptions, progress ProgressFunc) error
}
