// Package config loads user settings for the atlas CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyLogLevel  = "logging.level"
	KeyLogFormat = "logging.format"
	KeyTheme     = "display.theme"
	KeyDecimals  = "display.decimals"
	KeyTopN      = "analytics.top_n"
)

// Settings holds the resolved configuration.
type Settings struct {
	LogLevel  string
	LogFormat string
	Theme     string
	Decimals  int
	TopN      int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "console",
		Theme:     "default",
		Decimals:  1,
		TopN:      5,
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyDecimals, d.Decimals)
	v.SetDefault(KeyTopN, d.TopN)
}

// LoadSettings reads settings from v (config file, ATLAS_ env vars, bound
// flags) and validates them.
func LoadSettings(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	s := Settings{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Theme:     v.GetString(KeyTheme),
		Decimals:  v.GetInt(KeyDecimals),
		TopN:      v.GetInt(KeyTopN),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every setting is in range.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, s.LogFormat)
	}
	switch s.Theme {
	case "default", "catppuccin-mocha":
	default:
		return fmt.Errorf("%w: unknown theme: %s", common.ErrInvalidConfig, s.Theme)
	}
	if s.Decimals < 0 || s.Decimals > 4 {
		return fmt.Errorf("%w: display.decimals must be between 0 and 4, got %d", common.ErrInvalidConfig, s.Decimals)
	}
	if s.TopN < 1 {
		return fmt.Errorf("%w: analytics.top_n must be at least 1, got %d", common.ErrInvalidConfig, s.TopN)
	}
	return nil
}

// ExpandPath expands a leading ~ and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
