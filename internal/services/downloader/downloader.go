package downloader

import (
	"context"
	"errors"
	"fmt"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/storage"
	"github.com/denisAlshanov/ytgrab/internal/services/telegram"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
	"github.com/denisAlshanov/ytgrab/internal/services/ytdlp"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// Service drives the whole download-and-delivery pipeline: URL extraction,
// metadata fetch, quality menu, download with progress, delivery, cleanup.
type Service struct {
	telegram  telegram.Client
	extractor ytdlp.Extractor
	archive   storage.StorageInterface
	cfg       *config.DownloadConfig
}

// NewService wires the pipeline. archive may be nil when archival is
// disabled.
func NewService(tg telegram.Client, extractor ytdlp.Extractor, archive storage.StorageInterface, cfg *config.DownloadConfig) *Service {
	return &Service{
		telegram:  tg,
		extractor: extractor,
		archive:   archive,
		cfg:       cfg,
	}
}

// IncomingMessage is an inbound chat message, already unwrapped from the
// transport's update envelope.
type IncomingMessage struct {
	ChatID    int64
	MessageID int
	Text      string
	// FormatOnly is set for the /format command: reply with the formatted
	// description only, no download menu.
	FormatOnly bool
}

// IncomingCallback is an inbound quality-menu selection.
type IncomingCallback struct {
	ID        string
	ChatID    int64
	MessageID int
	Data      string
}

// HandleMessage runs the first half of the pipeline, up to the quality menu
// (or the plain description for /format). All failures are reported to the
// user through the status message; nothing propagates to the caller.
func (s *Service) HandleMessage(ctx context.Context, msg IncomingMessage) {
	url, ok := youtube.ExtractURL(msg.Text)
	if !ok {
		appErr := utils.NewNoURLFoundError()
		utils.LogInfo(ctx, "No URL in message", utils.Fields{"chat_id": msg.ChatID})
		if _, err := s.telegram.SendText(ctx, msg.ChatID, appErr.UserMessage()); err != nil {
			utils.LogError(ctx, "Failed to send error reply", err)
		}
		return
	}

	// The acknowledgment has to exist before the metadata fetch: the
	// transport can only edit messages that have been sent, and the fetch
	// may take several seconds.
	pending := telegram.NewPendingStatus(s.telegram, msg.ChatID)
	status, err := pending.Publish(ctx, "⏳ Fetching video info...")
	if err != nil {
		utils.LogError(ctx, "Failed to send acknowledgment", err, utils.Fields{"chat_id": msg.ChatID})
		return
	}

	meta, err := s.extractor.DumpInfo(ctx, url, nil)
	if err != nil {
		s.reportError(ctx, status, err)
		return
	}

	description := buildDescription(meta, url)
	if msg.FormatOnly {
		status.Edit(ctx, description)
		return
	}

	selection := youtube.SelectFormats(meta.Formats)
	keyboard := s.buildMenu(ctx, meta, selection, msg.MessageID)
	if len(keyboard) == 0 {
		status.Edit(ctx, "No downloadable formats were found for this video.")
		return
	}

	s.writeDescription(ctx, meta.ID, description)

	if err := status.EditWithKeyboard(ctx, description, keyboard); err != nil {
		utils.LogError(ctx, "Failed to attach quality menu", err, utils.Fields{"video_id": meta.ID})
		status.Edit(ctx, utils.NewInternalError(err).UserMessage())
	}
}

// HandleCallback runs the second half of the pipeline for one selected
// quality: download, delivery, archive, cleanup. Cleanup runs on every exit
// path.
func (s *Service) HandleCallback(ctx context.Context, cb IncomingCallback) {
	action, err := models.DecodeSelectionAction(cb.Data)
	if err != nil {
		utils.LogError(ctx, "Malformed callback payload", err, utils.Fields{"data": cb.Data})
		if err := s.telegram.AnswerCallback(ctx, cb.ID, "This menu is no longer valid."); err != nil {
			utils.LogWarn(ctx, "Failed to answer callback", utils.Fields{"error": err.Error()})
		}
		return
	}

	if err := s.telegram.AnswerCallback(ctx, cb.ID, ""); err != nil {
		utils.LogWarn(ctx, "Failed to answer callback", utils.Fields{"error": err.Error()})
	}

	status := telegram.AttachStatus(s.telegram, cb.ChatID, cb.MessageID)
	session := NewSession(s.cfg.Dir, action)
	defer session.Cleanup(ctx)

	utils.LogInfo(ctx, "Selection received", utils.Fields{
		"video_id": action.VideoID,
		"format":   action.FormatSpec,
		"chat_id":  cb.ChatID,
	})

	downloadCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		downloadCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	opts := ytdlp.DownloadOptions{
		FormatSpec:     action.FormatSpec,
		OutputTemplate: session.OutputTemplate(),
		AudioOnly:      action.IsAudio(),
	}
	err = s.extractor.Download(downloadCtx, youtube.WatchURL(action.VideoID), opts, func(string) {
		status.Animate(ctx, "⬇️ Downloading")
	})
	if err != nil {
		s.reportError(ctx, status, err)
		return
	}

	status.Edit(ctx, "⬆️ Uploading...")
	if err := s.deliver(ctx, cb.ChatID, action, session); err != nil {
		s.reportError(ctx, status, err)
		return
	}

	s.archiveMedia(ctx, action, session)

	// Only the delivered media message remains in the chat.
	if err := s.telegram.DeleteMessage(ctx, cb.ChatID, action.MessageID); err != nil {
		utils.LogWarn(ctx, "Failed to delete triggering message", utils.Fields{
			"message_id": action.MessageID,
			"error":      err.Error(),
		})
	}
	status.Delete(ctx)
}

// reportError logs the failure and shows its user-facing category on the
// status message. Unclassified errors surface as the internal category.
func (s *Service) reportError(ctx context.Context, status *telegram.StatusMessage, err error) {
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		appErr = utils.NewInternalError(err)
	}
	utils.LogError(ctx, "Pipeline step failed", appErr)
	status.Edit(ctx, appErr.UserMessage())
}

// buildDescription renders the human-readable summary used both as the chat
// caption and as the sidecar content.
func buildDescription(meta *models.VideoMetadata, url string) string {
	return fmt.Sprintf("<b>[%s]</b> %s\nBy <b>%s</b>\n\n%s",
		utils.FormatDuration(meta.DurationSeconds()), meta.Title, meta.Uploader, url)
}
