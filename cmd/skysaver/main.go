// Package main is the entry point for the sky screensaver.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/skysaver/internal/config"
	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/internal/logger"
	"github.com/Faultbox/skysaver/internal/saver"
	"github.com/Faultbox/skysaver/internal/sky"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
	fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
	fileCfg.MaxBackups = cfg.Logging.MaxBackups
	fileCfg.MaxAgeDays = cfg.Logging.MaxAgeDays
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Skysaver ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	catalog, err := loadCatalog(cfg.Scene.ConstellationsFile)
	if err != nil {
		logger.Fatal("failed to load constellations", zap.Error(err))
	}

	s, err := saver.New(cfg, catalog)
	if err != nil {
		var cfgErr *geometry.ConfigError
		if errors.As(err, &cfgErr) {
			logger.Fatal("invalid scene configuration",
				zap.String("field", cfgErr.Field),
				zap.Any("value", cfgErr.Value),
				zap.String("rule", cfgErr.Rule),
			)
		}
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer s.Close()

	if err := s.Run(); err != nil {
		logger.Error("screensaver error", zap.Error(err))
		s.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("screensaver closed normally")
}

func loadCatalog(path string) (*sky.Catalog, error) {
	if path == "" {
		return sky.DefaultCatalog()
	}
	return sky.LoadCatalog(path)
}
