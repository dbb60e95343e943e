package telegram

import (
	"context"
	"strings"

	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// PendingStatus is a status report slot before its chat message exists. The
// transport can only edit a message that has been sent, so every pipeline
// phase after the acknowledgment goes through the StatusMessage returned by
// Publish; the pending value deliberately has no edit methods.
type PendingStatus struct {
	client Client
	chatID int64
}

func NewPendingStatus(client Client, chatID int64) PendingStatus {
	return PendingStatus{client: client, chatID: chatID}
}

// Publish sends the initial acknowledgment text and transitions to an active
// status message.
func (p PendingStatus) Publish(ctx context.Context, text string) (*StatusMessage, error) {
	messageID, err := p.client.SendText(ctx, p.chatID, text)
	if err != nil {
		return nil, err
	}
	return &StatusMessage{client: p.client, chatID: p.chatID, messageID: messageID}, nil
}

// StatusMessage is a single chat message edited in place to reflect the
// current pipeline phase.
type StatusMessage struct {
	client    Client
	chatID    int64
	messageID int
	edits     int
}

// AttachStatus wraps an already-sent message, e.g. the menu message a
// callback arrived on.
func AttachStatus(client Client, chatID int64, messageID int) *StatusMessage {
	return &StatusMessage{client: client, chatID: chatID, messageID: messageID}
}

func (s *StatusMessage) MessageID() int {
	return s.messageID
}

// Edit updates the status text best-effort. Edit failures are logged and
// swallowed; a failed status update must never abort the pipeline it
// reports on.
func (s *StatusMessage) Edit(ctx context.Context, text string) {
	if err := s.client.EditText(ctx, s.chatID, s.messageID, text); err != nil {
		utils.LogWarn(ctx, "Status message edit failed", utils.Fields{
			"code":       utils.ErrorCodeStatusEditFailure,
			"message_id": s.messageID,
			"error":      err.Error(),
		})
	}
}

// Animate renders the phase with a rotating one-to-three dot suffix, cycling
// with each call. Progress callbacks arrive far more often than the
// transport tolerates edits, so the animation doubles as a visible heartbeat
// without a numeric percentage.
func (s *StatusMessage) Animate(ctx context.Context, phase string) {
	s.edits++
	s.Edit(ctx, phase+strings.Repeat(".", 1+(s.edits-1)%3))
}

// EditWithKeyboard replaces the text and attaches an inline keyboard. Unlike
// Edit this reports failure: losing the quality menu is a real error, not a
// cosmetic one.
func (s *StatusMessage) EditWithKeyboard(ctx context.Context, text string, keyboard [][]Button) error {
	return s.client.EditTextWithKeyboard(ctx, s.chatID, s.messageID, text, keyboard)
}

// Delete removes the status message best-effort.
func (s *StatusMessage) Delete(ctx context.Context) {
	if err := s.client.DeleteMessage(ctx, s.chatID, s.messageID); err != nil {
		utils.LogWarn(ctx, "Status message delete failed", utils.Fields{
			"message_id": s.messageID,
			"error":      err.Error(),
		})
	}
}
