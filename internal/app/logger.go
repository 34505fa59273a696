// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/basket-service/config"
	"github.com/guttosm/basket-service/internal/logger"
)

// InitializeLogger initializes the global logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
