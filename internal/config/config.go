package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppEnv  string
	AppPort string

	// Storage
	DataDir string

	// Session
	SessionSecret   string
	SessionTTLHours int

	// Rate limiting
	RateLimitPerMin int

	ShutdownTimeout time.Duration

	// Derived
	SessionTTL time.Duration
}

// Load reads configuration from config.yaml and environment variables.
// A missing config file is fine; env vars and defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		AppEnv:          v.GetString("APP_ENV"),
		AppPort:         v.GetString("APP_PORT"),
		DataDir:         v.GetString("DATA_DIR"),
		SessionSecret:   v.GetString("SESSION_SECRET"),
		SessionTTLHours: v.GetInt("SESSION_TTL_HOURS"),
		RateLimitPerMin: v.GetInt("RATE_LIMIT_PER_MIN"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT") * time.Second,
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "your_secret_key"
	}
	if cfg.SessionTTLHours == 0 {
		cfg.SessionTTLHours = 24
	}
	if cfg.RateLimitPerMin == 0 {
		cfg.RateLimitPerMin = 60
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	cfg.SessionTTL = time.Duration(cfg.SessionTTLHours) * time.Hour
	return cfg, nil
}
