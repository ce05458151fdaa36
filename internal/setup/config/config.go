// Package config loads the bot configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
	ErrMissingToken          = errors.New("config is missing discord token")
	ErrMissingLogChannel     = errors.New("config is missing log channel ID")
	ErrMissingRoleName       = errors.New("config is missing a role name")
)

// CurrentVersion of the config file format.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version int `koanf:"version"`
	// Discord connection and notification settings.
	Discord Discord `koanf:"discord"`
	// Role names resolved against each guild's role list at use time.
	Roles Roles `koanf:"roles"`
	// Debug contains logging configuration.
	Debug Debug `koanf:"debug"`
}

// Discord contains credentials and the administrator notification channel.
type Discord struct {
	// Token for the bot account. Secret, never logged.
	Token string `koanf:"token"`
	// Channel ID that receives administrator notifications.
	LogChannelID uint64 `koanf:"log_channel_id"`
}

// Roles contains the names of the three gating roles.
type Roles struct {
	// Flagged is assigned to accounts younger than the trust threshold.
	Flagged string `koanf:"flagged"`
	// Pending is assigned to accounts awaiting admin verification.
	Pending string `koanf:"pending"`
	// Verified is assigned by the approval command.
	Verified string `koanf:"verified"`
}

// Debug contains logging configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log session directories to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// LoadConfig reads bot.toml from configDir when given, otherwise from the
// first search path containing it. The returned string is the directory the
// config was loaded from.
func LoadConfig(configDir string) (*Config, string, error) {
	k := koanf.New(".")

	configPaths := []string{configDir}
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get home directory: %w", err)
		}

		configPaths = []string{
			".gatewarden",
			homeDir + "/.gatewarden/config",
			"/etc/gatewarden/config",
			"/app/config",
			"config",
			".",
		}
	}

	var usedConfigPath string
	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/bot.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: bot.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Version != CurrentVersion {
		return nil, "", fmt.Errorf("%w: expected version %d, got %d (please update your config file)",
			ErrConfigVersionMismatch, CurrentVersion, config.Version)
	}

	if err := config.validate(); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// validate rejects configs the bot cannot start with. A role that later
// disappears from a guild degrades silently at use time, but the names
// themselves must be configured.
func (c *Config) validate() error {
	if c.Discord.Token == "" {
		return ErrMissingToken
	}

	if c.Discord.LogChannelID == 0 {
		return ErrMissingLogChannel
	}

	for name, value := range map[string]string{
		"flagged":  c.Roles.Flagged,
		"pending":  c.Roles.Pending,
		"verified": c.Roles.Verified,
	} {
		if value == "" {
			return fmt.Errorf("%w: roles.%s", ErrMissingRoleName, name)
		}
	}

	return nil
}
