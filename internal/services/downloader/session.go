package downloader

import (
	"context"
	"os"
	"path/filepath"

	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// Session tracks the temporary artifacts of one in-flight download. Paths
// are keyed by video id, so concurrent downloads of different videos never
// collide. Two near-simultaneous downloads of the same video id do share
// paths and can race; that is a known limitation of the id-based naming.
type Session struct {
	dir     string
	videoID string
	audio   bool
}

func NewSession(dir string, action models.SelectionAction) *Session {
	return &Session{
		dir:     dir,
		videoID: action.VideoID,
		audio:   action.IsAudio(),
	}
}

// MediaPath is where the downloaded media lands: .m4a for audio extraction,
// .mp4 for merged video.
func (s *Session) MediaPath() string {
	ext := ".mp4"
	if s.audio {
		ext = ".m4a"
	}
	return filepath.Join(s.dir, s.videoID+ext)
}

// ThumbnailPath is where the converted thumbnail lands. For audio downloads
// the tool names the thumbnail after the final media file, so the path gains
// an extra extension segment.
func (s *Session) ThumbnailPath() string {
	if s.audio {
		return s.MediaPath() + ".jpg"
	}
	return filepath.Join(s.dir, s.videoID+".jpg")
}

// DescriptionPath is the sidecar file written when the menu was built.
func (s *Session) DescriptionPath() string {
	return descriptionPath(s.dir, s.videoID)
}

// OutputTemplate is the output path template handed to the download tool.
func (s *Session) OutputTemplate() string {
	return filepath.Join(s.dir, s.videoID+".%(ext)s")
}

// Cleanup deletes every session artifact. Each deletion is attempted
// independently and failures are only logged: cleanup runs on success and
// failure paths alike and must never become a failure source itself.
func (s *Session) Cleanup(ctx context.Context) {
	for _, path := range []string{s.MediaPath(), s.ThumbnailPath(), s.DescriptionPath()} {
		if err := os.Remove(path); err != nil {
			utils.LogWarn(ctx, "Failed to remove session artifact", utils.Fields{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}

func descriptionPath(dir, videoID string) string {
	return filepath.Join(dir, videoID+"-descr.txt")
}
