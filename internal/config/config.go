package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeShell = "shell"
	ModeHTTP  = "http"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MODE" env-default:"shell"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Board    Board  `yaml:"board"`
}

// Board holds the dimensions used when a game does not ask for its own.
type Board struct {
	Width  int `yaml:"width" env:"BOARD_WIDTH" env-default:"16"`
	Height int `yaml:"height" env:"BOARD_HEIGHT" env-default:"12"`
	Mines  int `yaml:"mines" env:"BOARD_MINES" env-default:"10"`
}

// MustLoad - load configuration from the config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeShell, ModeHTTP:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}
}
