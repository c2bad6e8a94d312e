package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Masks  MasksConfig  `yaml:"masks"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"SERVER_ADDR" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type MasksConfig struct {
	Dir string `yaml:"dir" env:"MASKS_DIR" env-default:"./masks"`
}

type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout" env:"FETCH_TIMEOUT" env-default:"30s"`
	MaxImageSize int64         `yaml:"max_image_size" env:"MAX_IMAGE_SIZE" env-default:"10485760"`
}

type AuthConfig struct {
	// Empty APIKey disables authentication entirely.
	APIKey string `yaml:"api_key" env:"API_KEY"`
}

func MustLoad() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from env: %w", err)
	}

	return &cfg, nil
}
