// Package main provides the entry point for the YouTube grabber bot: a
// Telegram bot that turns YouTube links into downloadable media with a
// per-quality selection menu.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/denisAlshanov/ytgrab/internal/api/handlers"
	"github.com/denisAlshanov/ytgrab/internal/api/router"
	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/services/downloader"
	"github.com/denisAlshanov/ytgrab/internal/services/storage"
	"github.com/denisAlshanov/ytgrab/internal/services/telegram"
	"github.com/denisAlshanov/ytgrab/internal/services/ytdlp"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

const helpText = `Send me a YouTube link and I will offer quality options to download.

/format <link> — reply with the formatted description only`

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting YouTube Grabber bot")

	// Initialize Telegram bot client
	botClient, err := telegram.NewBotClient(&cfg.Telegram)
	if err != nil {
		logger.Fatalf("Failed to initialize Telegram bot: %v", err)
	}
	logger.Infof("Authorized as bot: @%s", botClient.Self())

	// Initialize optional S3 archive
	var archive storage.StorageInterface
	if cfg.Archive.Enabled {
		archive, err = storage.NewStorage(&cfg.Archive)
		if err != nil {
			logger.Fatalf("Failed to initialize archive storage: %v", err)
		}
	}

	// Initialize extraction tool client and the orchestration service
	extractor := ytdlp.NewClient(&cfg.Ytdlp)
	downloaderService := downloader.NewService(botClient, extractor, archive, &cfg.Download)

	// Register the user-facing command list
	if err := botClient.RegisterCommands(context.Background(), []telegram.Command{
		{Name: "start", Description: "Show usage help"},
		{Name: "help", Description: "Show usage help"},
		{Name: "format", Description: "Show the formatted description for a link"},
	}); err != nil {
		logger.Errorf("Failed to register commands: %v", err)
	}

	// Start the ops HTTP server
	healthHandler := handlers.NewHealthHandler(botClient, archive)
	r := router.NewRouter(cfg, healthHandler)
	go func() {
		logger.Infof("Starting ops server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start ops server: %v", err)
		}
	}()

	// Consume updates until shutdown
	updates := botClient.UpdatesChannel()
	go func() {
		for update := range updates {
			go handleUpdate(downloaderService, botClient, update)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	botClient.StopReceivingUpdates()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		logger.Errorf("Failed to shut down ops server: %v", err)
	}

	logger.Info("Shutdown complete")
}

// handleUpdate unwraps one transport update and routes it into the
// pipeline. Each update gets its own correlation id for log tracing.
func handleUpdate(svc *downloader.Service, bot *telegram.BotClient, update tgbotapi.Update) {
	ctx := utils.WithCorrelationID(context.Background(), utils.GenerateCorrelationID())

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if cb.Message == nil {
			return
		}
		svc.HandleCallback(ctx, downloader.IncomingCallback{
			ID:        cb.ID,
			ChatID:    cb.Message.Chat.ID,
			MessageID: cb.Message.MessageID,
			Data:      cb.Data,
		})

	case update.Message != nil:
		msg := update.Message
		if msg.IsCommand() {
			switch msg.Command() {
			case "start", "help":
				if _, err := bot.SendText(ctx, msg.Chat.ID, helpText); err != nil {
					utils.LogError(ctx, "Failed to send help", err)
				}
			case "format":
				svc.HandleMessage(ctx, downloader.IncomingMessage{
					ChatID:     msg.Chat.ID,
					MessageID:  msg.MessageID,
					Text:       msg.CommandArguments(),
					FormatOnly: true,
				})
			}
			return
		}
		if msg.Text == "" {
			return
		}
		svc.HandleMessage(ctx, downloader.IncomingMessage{
			ChatID:    msg.Chat.ID,
			MessageID: msg.MessageID,
			Text:      msg.Text,
		})
	}
}
