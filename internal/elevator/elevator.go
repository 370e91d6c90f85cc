package elevator

import (
	"context"

	"github.com/heislab/elevcomedi/internal/config"
	"github.com/heislab/elevcomedi/internal/elevio"
	"github.com/heislab/elevcomedi/internal/elevmetadata"
	"github.com/heislab/elevcomedi/internal/elevutils"
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/motion"
	"github.com/heislab/elevcomedi/internal/portdev"

	"github.com/xyproto/randomstring"
)

var Logger = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

type Elevator struct {
	MetaData   *elevmetadata.ElevMetaData
	IO         *elevio.Adapter
	Controller *motion.Controller
}

// NewElevator opens the port device and builds the adapter and controller.
// Any failure leaves nothing open.
func NewElevator(cfg config.Config, opener portdev.Opener) (*Elevator, error) {
	identifier := cfg.Identifier
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
		Logger.Warn().Msgf("No elevator identifier provided, generated random identifier \"%v\"", identifier)
	}

	metadata := &elevmetadata.ElevMetaData{
		SoftwareVersion: elevutils.GetGitHash(),
		Identifier:      identifier,
		Device:          cfg.Device,
		UpperFloor:      cfg.UpperTurnaroundFloor,
		LowerFloor:      cfg.LowerTurnaroundFloor,
	}

	io, err := elevio.Open(opener, elevio.DefaultAddressMap(), elevio.WithMotorSpeed(cfg.MotorSpeed))
	if err != nil {
		return nil, err
	}

	controller, err := motion.New(io, cfg.Policy())
	if err != nil {
		io.Close()
		return nil, err
	}

	return &Elevator{
		MetaData:   metadata,
		IO:         io,
		Controller: controller,
	}, nil
}

// Run patrols until the stop sensor stops the car or an error occurs, then
// releases the port device.
func (e *Elevator) Run(ctx context.Context) error {
	Logger.Info().Msgf("Elevator: %v", e.MetaData.String())

	err := e.Controller.Run(ctx)
	if closeErr := e.IO.Close(); closeErr != nil {
		Logger.Error().Msgf("Error when closing port device %v", closeErr)
	}
	if err != nil {
		return err
	}

	Logger.Info().Msg("Elevator stopped by stop sensor")
	return nil
}
