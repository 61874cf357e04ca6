package config

import (
	"github.com/spacemeshos/go-chief/log"
)

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Encoder string `mapstructure:"encoder"`
	Level   string `mapstructure:"level"`
}

func DefaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder: log.ConsoleEncoder,
		Level:   "info",
	}
}
