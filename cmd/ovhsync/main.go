package main

import (
	"log/slog"
	"os"

	"github.com/zoneops/ovhsync/internal/cli"
	"github.com/zoneops/ovhsync/internal/logger"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("OVHSYNC_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("OVHSYNC_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("OVHSYNC_DEBUG") != "",
	})

	cli.Execute()
}
