package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional
// config file and PARLO_* environment variables.
type Config struct {
	Env        string `mapstructure:"env"`         // local, production
	Endpoint   string `mapstructure:"endpoint"`    // study service GraphQL URL
	LearnerID  int    `mapstructure:"learner_id"`  // id of the studying learner
	BatchLimit int    `mapstructure:"batch_limit"` // challenges per fetch
	LogPath    string `mapstructure:"log_path"`    // debug log file (the terminal belongs to the TUI)
}

// Load reads configuration from ./config/config.yaml when present and
// from the environment, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("endpoint", "http://127.0.0.1:3001/gql")
	v.SetDefault("learner_id", 1)
	v.SetDefault("batch_limit", 5)
	v.SetDefault("log_path", "parlo.log")

	v.SetEnvPrefix("parlo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if c.LearnerID < 1 {
		return fmt.Errorf("learner_id must be positive, got %d", c.LearnerID)
	}
	if c.BatchLimit < 1 {
		return fmt.Errorf("batch_limit must be positive, got %d", c.BatchLimit)
	}
	return nil
}
