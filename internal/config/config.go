package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Astonish AstonishConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Status   StatusConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// AstonishConfig holds the forum account the bot signs in with.
type AstonishConfig struct {
	BaseURL      string
	Username     string
	Password     string
	ShopCategory int
	Timeout      time.Duration
}

// CacheConfig sizes the character cache. Size caps the entry count of both
// the in-memory and the Redis tier.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps the
// character cache in memory.
type RedisConfig struct {
	URL string
}

// StatusConfig holds the status server listen address. Empty disables it.
type StatusConfig struct {
	Addr string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Astonish: AstonishConfig{
			BaseURL:      getEnvOrDefault("ASTONISH_BASE_URL", "https://astonish.jcink.net"),
			Username:     os.Getenv("ASTONISH_USERNAME"),
			Password:     os.Getenv("ASTONISH_PASSWORD"),
			ShopCategory: getEnvAsIntOrDefault("ASTONISH_SHOP_CATEGORY", 1),
			Timeout:      getEnvAsDurationOrDefault("ASTONISH_HTTP_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Size: getEnvAsIntOrDefault("CHARACTER_CACHE_SIZE", 256),
			TTL:  getEnvAsDurationOrDefault("CHARACTER_CACHE_TTL", 10*time.Minute),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Status: StatusConfig{
			Addr: os.Getenv("STATUS_ADDR"),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if err := cfg.Astonish.Validate(); err != nil {
		return nil, err
	}
	if cfg.Cache.Size <= 0 {
		return nil, fmt.Errorf("CHARACTER_CACHE_SIZE must be positive, got %d", cfg.Cache.Size)
	}

	return cfg, nil
}

// LoadAstonish reads only the forum settings, for tools that never talk to Discord.
func LoadAstonish() (*AstonishConfig, error) {
	cfg := &AstonishConfig{
		BaseURL:      getEnvOrDefault("ASTONISH_BASE_URL", "https://astonish.jcink.net"),
		Username:     os.Getenv("ASTONISH_USERNAME"),
		Password:     os.Getenv("ASTONISH_PASSWORD"),
		ShopCategory: getEnvAsIntOrDefault("ASTONISH_SHOP_CATEGORY", 1),
		Timeout:      getEnvAsDurationOrDefault("ASTONISH_HTTP_TIMEOUT", 30*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AstonishConfig) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("ASTONISH_USERNAME is required")
	}
	if c.Password == "" {
		return fmt.Errorf("ASTONISH_PASSWORD is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
