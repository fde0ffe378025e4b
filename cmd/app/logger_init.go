package main

import (
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// initLogger installs the process-wide logger from the app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(loggerConfig(cfg))
}

// loggerConfig starts from the environment's preset; an explicit level or
// format in the app configuration wins
func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.ConfigFor(cfg.Environment)
	lc.ServiceName = cfg.ServiceName
	lc.Version = cfg.Version
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	return lc
}
