// Package main opens a top-down preview of the pond's normal map.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/internal/preview"
	"github.com/Faultbox/kaczka/internal/sim"
)

const windowScale = 3

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rng, seed := sim.NewRNG(cfg.Simulation.Seed)
	s, err := sim.New(cfg, rng)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("preview starting", zap.Uint64("seed", seed))

	step := cfg.Simulation.TimeStep
	v := preview.New(s, step.Seconds(), cfg.Logging.Level == "debug")
	tps := int(1 / step.Seconds())
	if err := preview.Run(v, "Kaczka preview", windowScale, tps); err != nil {
		logger.Error("preview error", zap.Error(err))
		os.Exit(1)
	}
}
