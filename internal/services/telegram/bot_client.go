package telegram

import (
	"context"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/denisAlshanov/ytgrab/internal/config"
)

// BotClient implements Client over the Telegram Bot API.
type BotClient struct {
	bot *tgbotapi.BotAPI
}

// NewBotClient creates the Bot API client. An API endpoint override points
// the client at a self-hosted Bot API server, which raises the upload size
// limit well past the hosted API's 50 MB.
func NewBotClient(cfg *config.TelegramConfig) (*BotClient, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	var bot *tgbotapi.BotAPI
	var err error
	if cfg.APIEndpoint != "" {
		bot, err = tgbotapi.NewBotAPIWithAPIEndpoint(cfg.BotToken, cfg.APIEndpoint)
	} else {
		bot, err = tgbotapi.NewBotAPI(cfg.BotToken)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotClient{bot: bot}, nil
}

// Self returns the bot's username.
func (c *BotClient) Self() string {
	return c.bot.Self.UserName
}

// UpdatesChannel starts long polling and returns the inbound update stream.
func (c *BotClient) UpdatesChannel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	return c.bot.GetUpdatesChan(u)
}

// StopReceivingUpdates stops the long-polling loop.
func (c *BotClient) StopReceivingUpdates() {
	c.bot.StopReceivingUpdates()
}

func (c *BotClient) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	sent, err := c.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send message: %w", err)
	}
	return sent.MessageID, nil
}

func (c *BotClient) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	if _, err := c.bot.Send(edit); err != nil {
		return fmt.Errorf("failed to edit message %d: %w", messageID, err)
	}
	return nil
}

func (c *BotClient) EditTextWithKeyboard(ctx context.Context, chatID int64, messageID int, text string, keyboard [][]Button) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, buildInlineKeyboard(keyboard))
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	if _, err := c.bot.Send(edit); err != nil {
		return fmt.Errorf("failed to edit message %d: %w", messageID, err)
	}
	return nil
}

func (c *BotClient) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if _, err := c.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to delete message %d: %w", messageID, err)
	}
	return nil
}

// SendVideo uploads the media file with explicit dimensions and duration.
// The request is assembled by hand because the library's video config does
// not expose the width/height parameters.
func (c *BotClient) SendVideo(ctx context.Context, msg VideoMessage) error {
	params := make(tgbotapi.Params)
	params.AddNonZero64("chat_id", msg.ChatID)
	params.AddNonZero("duration", msg.Duration)
	params.AddNonZero("width", msg.Width)
	params.AddNonZero("height", msg.Height)
	params.AddNonEmpty("caption", msg.Caption)
	params.AddNonEmpty("parse_mode", tgbotapi.ModeHTML)
	params.AddBool("supports_streaming", true)

	if msg.SourceURL != "" {
		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open on YouTube", msg.SourceURL),
			),
		)
		if err := params.AddInterface("reply_markup", markup); err != nil {
			return fmt.Errorf("failed to encode reply markup: %w", err)
		}
	}

	files := []tgbotapi.RequestFile{
		{Name: "video", Data: tgbotapi.FilePath(msg.FilePath)},
	}
	if fileExists(msg.ThumbnailPath) {
		files = append(files, tgbotapi.RequestFile{Name: "thumb", Data: tgbotapi.FilePath(msg.ThumbnailPath)})
	}

	if _, err := c.bot.UploadFiles("sendVideo", params, files); err != nil {
		return fmt.Errorf("failed to send video: %w", err)
	}
	return nil
}

func (c *BotClient) SendAudio(ctx context.Context, msg AudioMessage) error {
	audio := tgbotapi.NewAudio(msg.ChatID, tgbotapi.FilePath(msg.FilePath))
	audio.Title = msg.Title
	audio.Performer = msg.Performer
	audio.Duration = msg.Duration
	if fileExists(msg.ThumbnailPath) {
		audio.Thumb = tgbotapi.FilePath(msg.ThumbnailPath)
	}
	if _, err := c.bot.Send(audio); err != nil {
		return fmt.Errorf("failed to send audio: %w", err)
	}
	return nil
}

func (c *BotClient) AnswerCallback(ctx context.Context, callbackID string, text string) error {
	if _, err := c.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

func (c *BotClient) RegisterCommands(ctx context.Context, commands []Command) error {
	botCommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botCommands = append(botCommands, tgbotapi.BotCommand{
			Command:     cmd.Name,
			Description: cmd.Description,
		})
	}
	if _, err := c.bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// Ping verifies the API connection.
func (c *BotClient) Ping(ctx context.Context) error {
	if _, err := c.bot.GetMe(); err != nil {
		return fmt.Errorf("failed to reach Telegram Bot API: %w", err)
	}
	return nil
}

func buildInlineKeyboard(keyboard [][]Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
			} else {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
			}
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
