package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

const defaultLogLevel = "warn"

func newLogger(w io.Writer, level, format string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(w)

	if level == "" {
		level = defaultLogLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return logger, nil
}
