// Package elevsim lets a person at the keyboard play the elevator shaft for
// an in-memory port device: moving the car between floor sensors and
// flipping the stop and obstruction switches.
package elevsim

import (
	"fmt"
	"sync"

	"github.com/eiannone/keyboard"
	"github.com/heislab/elevcomedi/internal/elevconsts"
	"github.com/heislab/elevcomedi/internal/elevio"
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/portdev/memdev"
)

var Log = logger.GetLogger()

const Help = "keys: 1-4 car at floor, 0 between floors, s stop switch, o obstruction switch, q quit"

type Console struct {
	dev   *memdev.Device
	addrs *elevio.AddressMap

	stop        bool
	obstruction bool

	closeOnce sync.Once
}

func NewConsole(dev *memdev.Device, addrs *elevio.AddressMap) *Console {
	return &Console{dev: dev, addrs: addrs}
}

// HandleKey applies one key press to the device and reports whether the
// user asked to quit.
func (c *Console) HandleKey(char rune, key keyboard.Key) (quit bool) {
	switch {
	case key == keyboard.KeyCtrlC || key == keyboard.KeyEsc || char == 'q':
		return true
	case char == '0':
		c.placeCar(-1)
		Log.Info().Msg("Car between floors")
	case char >= '1' && char < '1'+elevconsts.NumFloors:
		floor := elevconsts.Floor(char - '1')
		c.placeCar(floor)
		Log.Info().Msgf("Car at floor %d", floor)
	case char == 's':
		c.stop = !c.stop
		c.dev.SetInput(c.addrs.StopSensor, toBit(c.stop))
		Log.Info().Msgf("Stop switch %v", c.stop)
	case char == 'o':
		c.obstruction = !c.obstruction
		c.dev.SetInput(c.addrs.ObstructionSensor, toBit(c.obstruction))
		Log.Info().Msgf("Obstruction switch %v", c.obstruction)
	default:
		Log.Info().Msg(Help)
	}
	Log.Debug().Msg(c.Status())
	return false
}

// placeCar raises the sensor of floor and lowers all others. A floor
// outside the shaft lowers them all.
func (c *Console) placeCar(floor elevconsts.Floor) {
	for f, addr := range c.addrs.FloorSensor {
		c.dev.SetInput(addr, toBit(elevconsts.Floor(f) == floor))
	}
}

// Status describes the outputs the controller has driven.
func (c *Console) Status() string {
	dir := "up"
	if c.dev.Analog(c.addrs.Motor) != 0 {
		dir = "down"
		if c.dev.Bit(c.addrs.MotorDir) != 0 {
			dir = "stop"
		}
	}
	floor := elevio.DecodeFloorDisplay(c.dev.Bit(c.addrs.FloorDisplay[0]), c.dev.Bit(c.addrs.FloorDisplay[1]))
	return fmt.Sprintf("motor %s, display %d, stop lamp %d, door lamp %d", dir, floor, c.dev.Bit(c.addrs.StopLight), c.dev.Bit(c.addrs.DoorLight))
}

// Listen reads keys until the user quits, then calls quit. It returns an
// error if the terminal cannot be put in raw mode.
func (c *Console) Listen(quit func()) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	Log.Info().Msg(Help)

	go func() {
		defer c.Close()
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				Log.Error().Msgf("Error when getting key: %v", err)
				quit()
				return
			}
			if c.HandleKey(char, key) {
				quit()
				return
			}
		}
	}()
	return nil
}

func toBit(v bool) uint {
	if v {
		return 1
	}
	return 0
}

// Close gives the terminal back. It is safe to call more than once.
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		keyboard.Close()
	})
}
