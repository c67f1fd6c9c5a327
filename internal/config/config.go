package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the server needs to boot. Values come from
// NUTRICLIN_* environment variables, with an optional nutriclin.yaml file
// underneath them.
type Config struct {
	Port         string `mapstructure:"PORT"`
	DBPath       string `mapstructure:"DB_PATH"`
	SecretKey    string `mapstructure:"SECRET_KEY"`
	Timezone     string `mapstructure:"TZ"`
	CookieSecure bool   `mapstructure:"COOKIE_SECURE"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	LogPretty    bool   `mapstructure:"LOG_PRETTY"`
}

const envPrefix = "NUTRICLIN"

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", filepath.Join("data", "nutriclin.db"))
	v.SetDefault("SECRET_KEY", "change_me_in_production")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	for _, key := range []string{
		"PORT", "DB_PATH", "SECRET_KEY", "TZ", "COOKIE_SECURE", "LOG_LEVEL", "LOG_PRETTY",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	v.SetConfigName("nutriclin")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Port) == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("DB_PATH must not be empty")
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown.
func (cfg *Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
