package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxActionSize is the transport limit for callback payloads. Telegram
// rejects callback data longer than 64 bytes, so an encoded SelectionAction
// must never exceed it.
const MaxActionSize = 64

// actionSeparator delimits the encoded fields. No field may contain it.
const actionSeparator = "|"

// SelectionAction is the self-contained payload behind one quality-menu
// button. It carries everything needed to replay the download without any
// server-held session state: the action itself is the complete session seed.
type SelectionAction struct {
	VideoID string
	// FormatSpec is a bare audio format code, a bare video format code when
	// the source has no audio stream, or "<video_format_id>+<audio_format_id>"
	// for a merged download.
	FormatSpec string
	Duration   int
	// Height and Width are the selected video dimensions. Audio actions leave
	// both zero; every video action carries the height of its format entry.
	Height int
	Width  int
	// MessageID is the id of the message that triggered the request, kept so
	// it can be deleted once the media has been delivered.
	MessageID int
}

// IsAudio reports whether the action targets an audio-only download. The
// format spec cannot distinguish the two kinds: a video-only source yields
// video actions with a bare format code, the same shape as an audio code.
// The dimensions can, since only video actions carry a height.
func (a SelectionAction) IsAudio() bool {
	return a.Height == 0
}

// Encode serializes the action for the callback channel. It fails when a
// field contains the separator or the result exceeds MaxActionSize; both are
// programming-contract violations, not runtime conditions.
func (a SelectionAction) Encode() (string, error) {
	for _, field := range []string{a.VideoID, a.FormatSpec} {
		if strings.Contains(field, actionSeparator) {
			return "", fmt.Errorf("action field %q contains reserved separator", field)
		}
	}

	encoded := strings.Join([]string{
		a.VideoID,
		a.FormatSpec,
		strconv.Itoa(a.Duration),
		strconv.Itoa(a.Height),
		strconv.Itoa(a.Width),
		strconv.Itoa(a.MessageID),
	}, actionSeparator)

	if len(encoded) > MaxActionSize {
		return "", fmt.Errorf("encoded action is %d bytes, limit is %d", len(encoded), MaxActionSize)
	}
	return encoded, nil
}

// DecodeSelectionAction reverses Encode.
func DecodeSelectionAction(data string) (SelectionAction, error) {
	parts := strings.Split(data, actionSeparator)
	if len(parts) != 6 {
		return SelectionAction{}, fmt.Errorf("malformed action payload: expected 6 fields, got %d", len(parts))
	}

	duration, err := strconv.Atoi(parts[2])
	if err != nil {
		return SelectionAction{}, fmt.Errorf("malformed action duration: %w", err)
	}
	height, err := strconv.Atoi(parts[3])
	if err != nil {
		return SelectionAction{}, fmt.Errorf("malformed action height: %w", err)
	}
	width, err := strconv.Atoi(parts[4])
	if err != nil {
		return SelectionAction{}, fmt.Errorf("malformed action width: %w", err)
	}
	messageID, err := strconv.Atoi(parts[5])
	if err != nil {
		return SelectionAction{}, fmt.Errorf("malformed action message id: %w", err)
	}

	return SelectionAction{
		VideoID:    parts[0],
		FormatSpec: parts[1],
		Duration:   duration,
		Height:     height,
		Width:      width,
		MessageID:  messageID,
	}, nil
}
