package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/heislab/elevcomedi/internal/config"
	"github.com/heislab/elevcomedi/internal/elevator"
	"github.com/heislab/elevcomedi/internal/elevsim"
	"github.com/heislab/elevcomedi/internal/elevutils"
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/portdev/memdev"
	"github.com/rs/zerolog"
)

var Logger = logger.GetLoggerConfigured(zerolog.DebugLevel)

const simPollInterval = 20 * time.Millisecond

func main() {
	args := elevutils.ProcessCmdArgs("elevsim", "Runs the patrol loop against a keyboard driven elevator shaft")

	cfg, err := config.Load(args.ConfigPath, args.EnvPath)
	if err != nil {
		Logger.Fatal().Msgf("Error loading config %v", err)
	}
	cfg.Device = "memdev"
	if cfg.PollInterval == 0 {
		cfg.PollInterval = simPollInterval
	}

	dev := memdev.New()
	elev, err := elevator.NewElevator(cfg, &memdev.Opener{Device: dev})
	if err != nil {
		Logger.Error().Msgf("Init of simulated elevator failed: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	console := elevsim.NewConsole(dev, elev.IO.AddressMap())
	if err := console.Listen(cancel); err != nil {
		Logger.Error().Msgf("Error opening keyboard: %v", err)
		os.Exit(1)
	}

	err = elev.Run(ctx)
	console.Close()
	Logger.Info().Msg(console.Status())
	if err != nil && !errors.Is(err, context.Canceled) {
		Logger.Error().Msgf("Elevator failed: %v", err)
		os.Exit(1)
	}
}
