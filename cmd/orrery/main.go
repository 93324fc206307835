// Package main is the entry point for the orrery solar system simulator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/sim"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Orrery ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the simulator
	s, err := sim.New(cfg)
	if err != nil {
		logger.Error("failed to create simulator", zap.Error(err))
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Run(); err != nil {
		logger.Error("simulator error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulator closed normally")
}
