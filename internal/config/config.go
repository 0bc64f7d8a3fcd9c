package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type WindowConfig struct {
	PastMinutes       int `mapstructure:"past_minutes"`       // window span before "now"
	FutureMinutes     int `mapstructure:"future_minutes"`     // window span after "now"
	HysteresisMinutes int `mapstructure:"hysteresis_minutes"` // follow/unfollow threshold
}

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Theme       string       `mapstructure:"theme"`
	Timezone    string       `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
	TickSeconds int          `mapstructure:"tick_seconds"`
	Window      WindowConfig `mapstructure:"window"`
	Notify      NotifyConfig `mapstructure:"notify"`
}

func Default() Config {
	return Config{
		Theme:       "default",
		Timezone:    "",
		TickSeconds: 15,
		Window: WindowConfig{
			PastMinutes:       30,
			FutureMinutes:     90,
			HysteresisMinutes: 3,
		},
		Notify: NotifyConfig{Enabled: true},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "dayline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("tick_seconds", cfg.TickSeconds)
	v.SetDefault("window.past_minutes", cfg.Window.PastMinutes)
	v.SetDefault("window.future_minutes", cfg.Window.FutureMinutes)
	v.SetDefault("window.hysteresis_minutes", cfg.Window.HysteresisMinutes)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to the
// process-local zone when unset or unloadable.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func (c Config) PastSpan() time.Duration {
	return time.Duration(c.Window.PastMinutes) * time.Minute
}

func (c Config) FutureSpan() time.Duration {
	return time.Duration(c.Window.FutureMinutes) * time.Minute
}

func (c Config) Hysteresis() time.Duration {
	return time.Duration(c.Window.HysteresisMinutes) * time.Minute
}

func (c Config) TickInterval() time.Duration {
	if c.TickSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TickSeconds) * time.Second
}
