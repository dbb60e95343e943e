package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/telegram"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// deliver sends the finished media into the chat. Send failures map to the
// download-failed category: in practice they are platform size or time
// limits.
func (s *Service) deliver(ctx context.Context, chatID int64, action models.SelectionAction, session *Session) error {
	description := s.readDescription(ctx, session)

	if action.IsAudio() {
		title, performer := parseAudioTags(description, action.VideoID)
		err := s.telegram.SendAudio(ctx, telegram.AudioMessage{
			ChatID:        chatID,
			FilePath:      session.MediaPath(),
			ThumbnailPath: session.ThumbnailPath(),
			Title:         title,
			Performer:     performer,
			Duration:      action.Duration,
		})
		if err != nil {
			return utils.NewDownloadError(err)
		}
		return nil
	}

	err := s.telegram.SendVideo(ctx, telegram.VideoMessage{
		ChatID:        chatID,
		FilePath:      session.MediaPath(),
		ThumbnailPath: session.ThumbnailPath(),
		Caption:       description,
		SourceURL:     youtube.WatchURL(action.VideoID),
		Duration:      action.Duration,
		Width:         action.Width,
		Height:        action.Height,
	})
	if err != nil {
		return utils.NewDownloadError(err)
	}
	return nil
}

// readDescription loads the sidecar file. Absence is tolerated: delivery
// proceeds with an empty description and fallback tags.
func (s *Service) readDescription(ctx context.Context, session *Session) string {
	data, err := os.ReadFile(session.DescriptionPath())
	if err != nil {
		utils.LogWarn(ctx, "Description sidecar missing, delivering without it", utils.Fields{
			"path":  session.DescriptionPath(),
			"error": err.Error(),
		})
		return ""
	}
	return string(data)
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// parseAudioTags extracts title and performer from the first two sidecar
// lines, expected as "[3m 32s] Title" and "By Author" once markup is
// stripped. Auto-generated channels carry a " - Topic" suffix, which is
// dropped. Anything that does not match falls back to the video id and
// "Unknown Artist".
func parseAudioTags(description, videoID string) (title, performer string) {
	title = videoID
	performer = "Unknown Artist"

	lines := strings.Split(description, "\n")
	if len(lines) > 0 {
		first := strings.TrimSpace(htmlTagPattern.ReplaceAllString(lines[0], ""))
		if strings.HasPrefix(first, "[") {
			if idx := strings.Index(first, "] "); idx >= 0 && idx+2 < len(first) {
				title = first[idx+2:]
			}
		}
	}
	if len(lines) > 1 {
		second := strings.TrimSpace(htmlTagPattern.ReplaceAllString(lines[1], ""))
		if rest := strings.TrimPrefix(second, "By "); rest != second && rest != "" {
			performer = strings.TrimSuffix(rest, " - Topic")
		}
	}
	return title, performer
}

// archiveMedia uploads the delivered file to the configured archive bucket.
// Best-effort: archival failures are logged and never affect delivery. A
// video that was already archived under the same key is not uploaded again.
func (s *Service) archiveMedia(ctx context.Context, action models.SelectionAction, session *Session) {
	if s.archive == nil {
		return
	}

	key := fmt.Sprintf("youtube/%s/%s", action.VideoID, filepath.Base(session.MediaPath()))
	exists, err := s.archive.Exists(ctx, key)
	if err != nil {
		utils.LogWarn(ctx, "Archive existence check failed, uploading anyway", utils.Fields{
			"key":   key,
			"error": err.Error(),
		})
	} else if exists {
		utils.LogInfo(ctx, "Media already archived, skipping upload", utils.Fields{"key": key})
		return
	}

	file, err := os.Open(session.MediaPath())
	if err != nil {
		utils.LogWarn(ctx, "Archive skipped, cannot open media file", utils.Fields{
			"path":  session.MediaPath(),
			"error": err.Error(),
		})
		return
	}
	defer file.Close()

	contentType := "video/mp4"
	if action.IsAudio() {
		contentType = "audio/mp4"
	}
	metadata := map[string]string{
		"video_id":    action.VideoID,
		"format_spec": action.FormatSpec,
		"duration":    strconv.Itoa(action.Duration),
	}

	if err := s.archive.UploadWithMetadata(ctx, key, file, contentType, metadata); err != nil {
		utils.LogWarn(ctx, "Archive upload failed", utils.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	utils.LogInfo(ctx, "Media archived", utils.Fields{"key": key, "bucket": s.archive.BucketName()})
}
