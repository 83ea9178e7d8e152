package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	pkgerr "github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

type (
	// Config holds the optional integrations; the zero-configuration run
	// only prints to standard output.
	Config struct {
		Log   `yaml:"logger"`
		Redis `yaml:"redis"`
		MySQL `yaml:"mysql"`
		HTTP  `yaml:"http"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL"`
	}

	Redis struct {
		Addr        string `yaml:"addr" env:"REDIS_ADDR"`
		Channel     string `yaml:"channel" env:"REDIS_CHANNEL"`
		HistoryKey  string `yaml:"history-key" env:"REDIS_HISTORY_KEY"`
		HistorySize int    `yaml:"history-size" env:"REDIS_HISTORY_SIZE"`
	}

	MySQL struct {
		DSN string `yaml:"dsn" env:"MYSQL_DSN"`
	}

	HTTP struct {
		Addr string `yaml:"addr" env:"HTTP_ADDR"`
	}
)

// NewConfig applies defaults, then the yaml file at path (if any), then the
// environment.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	cfg.Log.Level = "warn"
	cfg.Redis.Channel = "cafeteria:stock:notifications"
	cfg.Redis.HistoryKey = "cafeteria:stock:history"
	cfg.Redis.HistorySize = 100

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, pkgerr.Wrap(err, "config error")
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, pkgerr.Wrap(err, "read env")
	}

	return cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file without overriding
// variables already set.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	return pkgerr.Wrapf(gotenv.Load(path), "load %s", path)
}

func (c *Config) Validate() error {
	if c.Redis.Addr != "" {
		if c.Redis.Channel == "" {
			return pkgerr.New("redis channel is required when redis is enabled")
		}
		if c.Redis.HistorySize < 1 {
			return pkgerr.Errorf("redis history size must be positive, got %d", c.Redis.HistorySize)
		}
	}
	return nil
}
