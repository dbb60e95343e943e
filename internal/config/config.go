package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	Ytdlp    YtdlpConfig
	Download DownloadConfig
	Archive  ArchiveConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type TelegramConfig struct {
	BotToken    string
	APIEndpoint string
}

type YtdlpConfig struct {
	BinaryPath     string
	FfmpegPath     string
	CookieFile     string
	POTProviderURL string
}

type DownloadConfig struct {
	Dir     string
	Timeout time.Duration
}

type ArchiveConfig struct {
	Enabled         bool
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	EndpointURL     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// Telegram configuration
	cfg.Telegram.BotToken = getEnvRequired("BOT_TOKEN")
	cfg.Telegram.APIEndpoint = getEnv("BOT_API_ENDPOINT", "")

	// Extraction tool configuration
	cfg.Ytdlp.BinaryPath = getEnv("YTDLP_PATH", defaultBinary("yt-dlp"))
	cfg.Ytdlp.FfmpegPath = getEnv("FFMPEG_PATH", defaultBinary("ffmpeg"))
	cfg.Ytdlp.CookieFile = getEnv("COOKIE_FILE", "cookies.txt")
	cfg.Ytdlp.POTProviderURL = getEnv("POT_PROVIDER_URL", "")

	// Download configuration
	cfg.Download.Dir = getEnv("DOWNLOAD_DIR", ".")
	downloadTimeout, err := time.ParseDuration(getEnv("DOWNLOAD_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOWNLOAD_TIMEOUT: %w", err)
	}
	cfg.Download.Timeout = downloadTimeout

	// Archive configuration (optional)
	cfg.Archive.Enabled = getEnvBool("ARCHIVE_ENABLED", false)
	if cfg.Archive.Enabled {
		cfg.Archive.Region = getEnv("AWS_REGION", "us-east-1")
		cfg.Archive.BucketName = getEnvRequired("S3_BUCKET_NAME")
		cfg.Archive.EndpointURL = getEnv("AWS_ENDPOINT_URL", "") // Optional for LocalStack
		cfg.Archive.AccessKeyID = getEnvRequired("AWS_ACCESS_KEY_ID")
		cfg.Archive.SecretAccessKey = getEnvRequired("AWS_SECRET_ACCESS_KEY")
	}

	return cfg, nil
}

// defaultBinary picks the tool name for the host OS; PATH lookup does the
// rest unless an explicit path is configured.
func defaultBinary(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
