package config

import "os"

type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, ErrInvalidLogFormat
	}

	cfg := &Config{
		Addr:      addr,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}

	return cfg, nil
}
