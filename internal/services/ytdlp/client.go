package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// Args is a flag-to-value option set for the tool. An empty value renders as
// a bare flag. Caller-supplied Args override the client's baseline keys.
type Args map[string]string

func (a Args) render() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(a)*2)
	for _, k := range keys {
		out = append(out, k)
		if v := a[k]; v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Client invokes the yt-dlp binary as a subprocess.
type Client struct {
	cfg *config.YtdlpConfig
}

func NewClient(cfg *config.YtdlpConfig) *Client {
	return &Client{cfg: cfg}
}

// baseArgs is the baseline argument set shared by both modes: cookie-file
// authentication and the proof-of-origin token provider. Overrides are
// applied on top so callers can still replace individual keys.
func (c *Client) baseArgs(overrides Args) Args {
	args := Args{}
	if c.cfg.CookieFile != "" {
		args["--cookies"] = c.cfg.CookieFile
	}
	if c.cfg.POTProviderURL != "" {
		args["--extractor-args"] = fmt.Sprintf("youtubepot-bgutilhttp:base_url=%s", c.cfg.POTProviderURL)
	}
	for k, v := range overrides {
		args[k] = v
	}
	return args
}

// DumpInfo runs the tool in quiet structured-dump mode and parses the
// resulting JSON document. The call blocks for as long as the tool runs,
// typically several seconds.
func (c *Client) DumpInfo(ctx context.Context, url string, overrides Args) (*models.VideoMetadata, error) {
	args := c.baseArgs(overrides)
	args["--quiet"] = ""
	args["--dump-json"] = ""

	cmd := exec.CommandContext(ctx, c.cfg.BinaryPath, append(args.render(), url)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	utils.LogDebug(ctx, "Invoking extractor for metadata", utils.Fields{"url": url})
	if err := cmd.Run(); err != nil {
		if appErr := classifyExtractorError(stderr.String(), url); appErr != nil {
			return nil, appErr
		}
		return nil, utils.NewMetadataFetchError(fmt.Errorf("%w: %s", err, stderr.String()))
	}

	var meta models.VideoMetadata
	if err := json.Unmarshal(stdout.Bytes(), &meta); err != nil {
		return nil, utils.NewMetadataFetchError(fmt.Errorf("failed to parse extractor output: %w", err))
	}
	return &meta, nil
}

// Download runs the tool in download mode. Progress lines from stdout are
// forwarded to the callback as they arrive; artifacts land at the paths
// derived from opts.OutputTemplate.
func (c *Client) Download(ctx context.Context, url string, opts DownloadOptions, progress ProgressFunc) error {
	args := c.baseArgs(Args{
		"-f":                   opts.FormatSpec,
		"-o":                   opts.OutputTemplate,
		"--newline":            "",
		"--progress":           "",
		"--no-playlist":        "",
		"--write-thumbnail":    "",
		"--convert-thumbnails": "jpg",
		"--ffmpeg-location":    c.cfg.FfmpegPath,
	})
	if opts.AudioOnly {
		args["--extract-audio"] = ""
		args["--audio-format"] = "m4a"
	} else {
		args["--merge-output-format"] = "mp4"
	}

	cmd := exec.CommandContext(ctx, c.cfg.BinaryPath, append(args.render(), url)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return utils.NewDownloadError(err)
	}

	utils.LogInfo(ctx, "Starting media download", utils.Fields{
		"url":    url,
		"format": opts.FormatSpec,
	})
	if err := cmd.Start(); err != nil {
		return utils.NewDownloadError(err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if progress != nil {
			progress(scanner.Text())
		}
	}

	if err := cmd.Wait(); err != nil {
		if appErr := classifyExtractorError(stderr.String(), url); appErr != nil {
			return appErr
		}
		return utils.NewDownloadError(fmt.Errorf("%w: %s", err, stderr.String()))
	}
	return nil
}
