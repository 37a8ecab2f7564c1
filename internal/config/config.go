// Package config provides configuration management for Todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Todo application.
type Config struct {
	UserName      string             `mapstructure:"user_name"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	MCP           MCPConfig          `mapstructure:"mcp"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ThemeConfig holds theme customization settings (colors and icons).
// Category colors follow the original palette: Work blue, Fitness green,
// Personal yellow.
type ThemeConfig struct {
	ColorAccent    string `mapstructure:"color_accent"`
	ColorDone      string `mapstructure:"color_done"`
	ColorDim       string `mapstructure:"color_dim"`
	ColorTitle     string `mapstructure:"color_title"`
	ColorWork      string `mapstructure:"color_work"`
	ColorPersonal  string `mapstructure:"color_personal"`
	ColorFitness   string `mapstructure:"color_fitness"`
	IconApp        string `mapstructure:"icon_app"`
	IconTask       string `mapstructure:"icon_task"`
	IconTracker    string `mapstructure:"icon_tracker"`
	IconCheckempty string `mapstructure:"icon_check_empty"`
	IconCheckDone  string `mapstructure:"icon_check_done"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorAccent:    "#14B8A6",
		ColorDone:      "#4ADE80",
		ColorDim:       "#9CA3AF",
		ColorTitle:     "#111827",
		ColorWork:      "#60A5FA",
		ColorPersonal:  "#EAB308",
		ColorFitness:   "#4ADE80",
		IconApp:        "📝",
		IconTask:       "📋",
		IconTracker:    "📊",
		IconCheckempty: "○",
		IconCheckDone:  "●",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UserName: "Alex",
		Notifications: NotificationConfig{
			Enabled: true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("user_name", cfg.UserName)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("mcp.enabled", cfg.MCP.Enabled)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_done", cfg.Theme.ColorDone)
	viper.Set("theme.color_dim", cfg.Theme.ColorDim)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_work", cfg.Theme.ColorWork)
	viper.Set("theme.color_personal", cfg.Theme.ColorPersonal)
	viper.Set("theme.color_fitness", cfg.Theme.ColorFitness)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_task", cfg.Theme.IconTask)
	viper.Set("theme.icon_tracker", cfg.Theme.IconTracker)
	viper.Set("theme.icon_check_empty", cfg.Theme.IconCheckempty)
	viper.Set("theme.icon_check_done", cfg.Theme.IconCheckDone)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".todo", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("user_name", "Alex")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("mcp.enabled", true)

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_done", defaults.ColorDone)
	viper.SetDefault("theme.color_dim", defaults.ColorDim)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_work", defaults.ColorWork)
	viper.SetDefault("theme.color_personal", defaults.ColorPersonal)
	viper.SetDefault("theme.color_fitness", defaults.ColorFitness)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_task", defaults.IconTask)
	viper.SetDefault("theme.icon_tracker", defaults.IconTracker)
	viper.SetDefault("theme.icon_check_empty", defaults.IconCheckempty)
	viper.SetDefault("theme.icon_check_done", defaults.IconCheckDone)
}

// CategoryColor returns the themed color for a category name, falling back
// to the dim color for uncategorized tasks.
func (t ThemeConfig) CategoryColor(category string) string {
	switch category {
	case "Work":
		return t.ColorWork
	case "Personal":
		return t.ColorPersonal
	case "Fitness":
		return t.ColorFitness
	default:
		return t.ColorDim
	}
}
