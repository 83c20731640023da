package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the planner daemon.
type Config struct {
	// StorageBackend selects the key-value backend: "diskv" or "sqlite".
	StorageBackend string
	// DatabasePath is the diskv base directory or the SQLite file path.
	DatabasePath string

	HolidayBaseURL string
	HolidayCountry string

	// Telegram delivery for reminders. Both must be set, otherwise the
	// notification gateway stays unavailable and reminders are a no-op.
	TelegramToken  string
	TelegramChatID int64

	// RebuildTime is the daily HH:MM at which the reminder schedule is
	// re-derived from the task list.
	RebuildTime string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		StorageBackend: getEnv("PLANNER_STORAGE", "diskv"),
		DatabasePath:   getEnv("PLANNER_DB", "planner.db"),
		HolidayBaseURL: getEnv("HOLIDAY_BASE_URL", "https://date.nager.at/api/v3"),
		HolidayCountry: getEnv("HOLIDAY_COUNTRY", "PT"),
		TelegramToken:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		TelegramChatID: getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		RebuildTime:    getEnv("REMINDER_REBUILD_TIME", "08:50"),
	}

	if cfg.StorageBackend != "diskv" && cfg.StorageBackend != "sqlite" {
		return cfg, fmt.Errorf("PLANNER_STORAGE must be \"diskv\" or \"sqlite\", got %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}
