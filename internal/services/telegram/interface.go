package telegram

import "context"

// Command is one entry of the bot command list shown by clients.
type Command struct {
	Name        string
	Description string
}

// Button is one inline-keyboard button. Data buttons carry a callback
// payload; URL buttons open a link. Exactly one of Data/URL is set.
type Button struct {
	Label string
	Data  string
	URL   string
}

// VideoMessage describes an outgoing video with its sidecar metadata.
type VideoMessage struct {
	ChatID        int64
	FilePath      string
	ThumbnailPath string
	Caption       string
	SourceURL     string
	Duration      int
	Width         int
	Height        int
}

// AudioMessage describes an outgoing audio track.
type AudioMessage struct {
	ChatID        int64
	FilePath      string
	ThumbnailPath string
	Title         string
	Performer     string
	Duration      int
}

// Client defines the messaging-transport operations the bot consumes.
type Client interface {
	SendText(ctx context.Context, chatID int64, text string) (messageID int, err error)
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	EditTextWithKeyboard(ctx context.Context, chatID int64, messageID int, text string, keyboard [][]Button) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendVideo(ctx context.Context, msg VideoMessage) error
	SendAudio(ctx context.Context, msg AudioMessage) error
	AnswerCallback(ctx context.Context, callbackID string, text string) error
	RegisterCommands(ctx context.Context, commands []Command) error
	Ping(ctx context.Context) error
}
