package downloader

import (
	"context"
	"fmt"
	"os"

	"github.com/denisAlshanov/ytgrab/internal/models"
	"github.com/denisAlshanov/ytgrab/internal/services/telegram"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// audioFormatCode is the fixed m4a format requested for audio-only
// downloads. The menu's size estimate still comes from the largest
// audio-bearing entry in the format list.
const audioFormatCode = "140"

// buildMenu turns a format selection into inline-keyboard rows, one action
// per row: audio first, then video tiers in ascending tier order regardless
// of the order formats arrived in. When no audio-bearing entry exists the
// audio row is omitted and video rows fall back to video-only downloads.
func (s *Service) buildMenu(ctx context.Context, meta *models.VideoMetadata, sel youtube.Selection, triggerMessageID int) [][]telegram.Button {
	var rows [][]telegram.Button

	if sel.Audio != nil {
		action := models.SelectionAction{
			VideoID:    meta.ID,
			FormatSpec: audioFormatCode,
			Duration:   meta.DurationSeconds(),
			MessageID:  triggerMessageID,
		}
		if button, ok := s.menuButton(ctx, action, fmt.Sprintf("🎵 Audio (%s)", utils.FormatSize(sel.Audio.Size()))); ok {
			rows = append(rows, []telegram.Button{button})
		}
	}

	for _, tier := range models.AllTiers {
		entry, ok := sel.Tiers[tier]
		if !ok {
			continue
		}
		spec := entry.FormatID
		if sel.Audio != nil {
			spec = entry.FormatID + "+" + sel.Audio.FormatID
		}
		action := models.SelectionAction{
			VideoID:    meta.ID,
			FormatSpec: spec,
			Duration:   meta.DurationSeconds(),
			Height:     entry.Height,
			Width:      entry.Width,
			MessageID:  triggerMessageID,
		}
		label := fmt.Sprintf("🎬 %s (%s)", tier, utils.FormatSize(sel.MergedSize(tier)))
		if button, ok := s.menuButton(ctx, action, label); ok {
			rows = append(rows, []telegram.Button{button})
		}
	}

	return rows
}

func (s *Service) menuButton(ctx context.Context, action models.SelectionAction, label string) (telegram.Button, bool) {
	data, err := action.Encode()
	if err != nil {
		utils.LogError(ctx, "Dropping menu entry that does not encode", err, utils.Fields{
			"video_id": action.VideoID,
			"format":   action.FormatSpec,
		})
		return telegram.Button{}, false
	}
	return telegram.Button{Label: label, Data: data}, true
}

// writeDescription persists the sidecar file later read back at delivery
// time. The callback payload is far too small to carry title and uploader
// text, hence the file indirection. Write failures degrade delivery (empty
// caption) instead of aborting anything. The sidecar is only removed by the
// session cleanup after a selection; if the user never taps a button it stays
// behind in the download dir, the same trade-off as the id-keyed paths on
// Session.
func (s *Service) writeDescription(ctx context.Context, videoID, description string) {
	path := descriptionPath(s.cfg.Dir, videoID)
	if err := os.WriteFile(path, []byte(description), 0o644); err != nil {
		appErr := utils.NewFileIOError("write description sidecar", err)
		utils.LogWarn(ctx, "Description sidecar write failed", utils.Fields{
			"path":  path,
			"error": appErr.Error(),
		})
	}
}
