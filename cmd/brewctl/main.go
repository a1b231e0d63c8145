package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/brewlog/brewlog/cmd/brewctl/cmd"
	"github.com/brewlog/brewlog/internal/config"
	"github.com/brewlog/brewlog/internal/logger"
)

func main() {
	// Config warnings go to stderr until the configured logger is up
	logger.Init(os.Stderr, false, "")
	cfg := config.Load()
	logger.Init(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)

	if !cfg.EnvFile {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := cmd.NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
