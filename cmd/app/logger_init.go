package main

import (
	"github.com/osse101/chestmenus/internal/config"
	"github.com/osse101/chestmenus/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// source locations only help while developing
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
