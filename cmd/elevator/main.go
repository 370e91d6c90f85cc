package main

import (
	"context"
	"os"

	"github.com/heislab/elevcomedi/internal/config"
	"github.com/heislab/elevcomedi/internal/elevator"
	"github.com/heislab/elevcomedi/internal/elevutils"
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/portdev/comedi"
	"github.com/rs/zerolog"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	args := elevutils.ProcessCmdArgs("elevator", "Patrols the elevator car until the stop switch is pressed")

	cfg, err := config.Load(args.ConfigPath, args.EnvPath)
	if err != nil {
		Logger.Fatal().Msgf("Error loading config %v", err)
	}
	logger.GetLoggerConfigured(cfg.Level())

	// Starting Programme
	Logger.Info().Msg("Starting Elevator Programme")

	elev, err := elevator.NewElevator(cfg, comedi.Opener{Path: cfg.Device})
	if err != nil {
		Logger.Error().Msgf("Init of elevator hardware failed: %v", err)
		os.Exit(1)
	}

	if err := elev.Run(context.Background()); err != nil {
		Logger.Error().Msgf("Elevator failed: %v", err)
		os.Exit(1)
	}
}
