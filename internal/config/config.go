// Package config loads vcal-notify settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"

	"github.com/pfrederiksen/vcal-notify/internal/logger"
)

// Config holds every setting for one pipeline run
type Config struct {
	BotToken      string `env:"TELEGRAM_BOT_TOKEN,required"`
	ChatID        string `env:"TELEGRAM_CHAT_ID,required"`
	CommunityName string `env:"COMMUNITY_NAME,required"`
	DataURL       string `env:"DATA_URL,required"`

	// Optional: mirror every message to this SNS topic
	SNSTopicARN string `env:"SNS_TOPIC_ARN"`

	// Send a "no special events" notice instead of staying silent on an empty range
	SendEmptyNotice bool `env:"SEND_EMPTY_NOTICE" envDefault:"false"`

	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"30"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from dotenvPath (ignored when missing),
// then parses and validates the environment.
// Variables already present in the environment win over the .env file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env.Parse cannot
func (c *Config) Validate() error {
	required := map[string]string{
		"TELEGRAM_BOT_TOKEN": c.BotToken,
		"TELEGRAM_CHAT_ID":   c.ChatID,
		"COMMUNITY_NAME":     c.CommunityName,
		"DATA_URL":           c.DataURL,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	u, err := url.Parse(c.DataURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("DATA_URL must be an absolute http(s) URL, got %q", c.DataURL)
	}

	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", c.HTTPTimeoutSeconds)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

// HTTPTimeout returns the timeout applied to both outbound HTTP calls
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Level returns the parsed log level
func (c *Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}
