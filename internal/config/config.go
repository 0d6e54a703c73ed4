// Package config loads settings for the demo binary from file and
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	UI    UIConfig
	Timer TimerConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent   string
	MinWidth int `mapstructure:"min_width"`
}

// TimerConfig holds countdown demo settings.
type TimerConfig struct {
	Duration time.Duration
}

// Load reads configuration from file and env. Env var overrides use
// prefix TEAKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.accent", "#0EA5E9")
	v.SetDefault("ui.min_width", 60)
	v.SetDefault("timer.duration", "90s")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TEAKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "teakit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TEAKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
