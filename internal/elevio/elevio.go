package elevio

import (
	"errors"
	"fmt"
	"io"

	"github.com/heislab/elevcomedi/internal/elevconsts"
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/portdev"
)

var Log = logger.GetLogger()

// DefaultMotorSpeed is the analog drive level written for Down and Stop.
const DefaultMotorSpeed = 200

// Adapter translates elevator operations into port card accesses. It is not
// safe for concurrent use; the control loop is its only caller.
type Adapter struct {
	dev        portdev.Device
	addrs      *AddressMap
	motorSpeed uint
}

type Option func(*Adapter)

func WithMotorSpeed(speed uint) Option {
	return func(a *Adapter) {
		a.motorSpeed = speed
	}
}

// Open opens the port device and initializes the car. If the device cannot
// be opened nothing is written to it.
func Open(opener portdev.Opener, addrs *AddressMap, opts ...Option) (*Adapter, error) {
	dev, err := opener.Open()
	if err != nil {
		if !errors.Is(err, portdev.ErrConfiguration) {
			err = fmt.Errorf("%w: %v", portdev.ErrConfiguration, err)
		}
		Log.Error().Msgf("Error when opening port device %v", err)
		return nil, err
	}

	adapter, err := New(dev, addrs, opts...)
	if err != nil {
		if closer, ok := dev.(io.Closer); ok {
			closer.Close()
		}
		return nil, err
	}
	return adapter, nil
}

// New initializes the car on an open device: every light off and the floor
// display at the ground floor.
func New(dev portdev.Device, addrs *AddressMap, opts ...Option) (*Adapter, error) {
	if addrs == nil {
		addrs = DefaultAddressMap()
	}
	if err := addrs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", portdev.ErrConfiguration, err)
	}

	adapter := &Adapter{
		dev:        dev,
		addrs:      addrs,
		motorSpeed: DefaultMotorSpeed,
	}
	for _, opt := range opts {
		opt(adapter)
	}

	if err := adapter.SetAllLights(elevconsts.Off); err != nil {
		return nil, fmt.Errorf("initializing lights: %w", err)
	}
	if err := adapter.SetFloorLight(0); err != nil {
		return nil, fmt.Errorf("initializing floor display: %w", err)
	}

	Log.Debug().Msg("Elevator I/O initialized")
	return adapter, nil
}

func (a *Adapter) AddressMap() *AddressMap {
	return a.addrs
}

// Close releases the port device if it can be released.
func (a *Adapter) Close() error {
	if closer, ok := a.dev.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// SetMotorDirection drives the motor. The card expects Up as a zero drive
// level with the polarity bit untouched, while Down and Stop both drive at
// motorSpeed and differ only in polarity.
func (a *Adapter) SetMotorDirection(dir elevconsts.MotorDirection) error {
	Log.Debug().Msgf("Setting motor direction %v", dir)

	switch dir {
	case elevconsts.Up:
		return a.dev.WriteAnalog(a.addrs.Motor, 0)
	case elevconsts.Down:
		if err := a.dev.ClearBit(a.addrs.MotorDir); err != nil {
			return err
		}
		return a.dev.WriteAnalog(a.addrs.Motor, a.motorSpeed)
	case elevconsts.Stop:
		if err := a.dev.SetBit(a.addrs.MotorDir); err != nil {
			return err
		}
		return a.dev.WriteAnalog(a.addrs.Motor, a.motorSpeed)
	default:
		return fmt.Errorf("set_motor_direction: unknown direction %d: %w", int(dir), ErrInvalidInput)
	}
}

// SetAllLights writes mode to every button lamp, the stop lamp and the door
// lamp. The floor display is left alone.
func (a *Adapter) SetAllLights(mode elevconsts.Light) error {
	for _, button := range elevconsts.AllButtons() {
		if err := a.SetButtonLight(button, mode); err != nil {
			return err
		}
	}
	if err := a.SetStopLight(mode); err != nil {
		return err
	}
	return a.SetDoorLight(mode)
}

func (a *Adapter) SetButtonLight(button elevconsts.Button, mode elevconsts.Light) error {
	addr, err := a.addrs.ButtonLight(button)
	if err != nil {
		return err
	}
	return a.writeLight(addr, mode)
}

// SetFloorLight shows floor on the two-bit floor display.
func (a *Adapter) SetFloorLight(floor elevconsts.Floor) error {
	if !floor.Valid() {
		return &InvalidInputError{Op: "set_floor_light", Floor: floor}
	}
	hi, lo := EncodeFloorDisplay(floor)
	if err := a.writeLight(a.addrs.FloorDisplay[0], hi); err != nil {
		return err
	}
	return a.writeLight(a.addrs.FloorDisplay[1], lo)
}

func (a *Adapter) SetDoorLight(mode elevconsts.Light) error {
	return a.writeLight(a.addrs.DoorLight, mode)
}

func (a *Adapter) SetStopLight(mode elevconsts.Light) error {
	return a.writeLight(a.addrs.StopLight, mode)
}

func (a *Adapter) GetButtonSignal(button elevconsts.Button) (elevconsts.Signal, error) {
	addr, err := a.addrs.ButtonSignal(button)
	if err != nil {
		return elevconsts.Low, err
	}
	return a.readSignal(addr)
}

func (a *Adapter) GetFloorSignal(floor elevconsts.Floor) (elevconsts.Signal, error) {
	addr, err := a.addrs.FloorSensorAt(floor)
	if err != nil {
		return elevconsts.Low, err
	}
	return a.readSignal(addr)
}

func (a *Adapter) GetStopSignal() (elevconsts.Signal, error) {
	return a.readSignal(a.addrs.StopSensor)
}

func (a *Adapter) GetObstructionSignal() (elevconsts.Signal, error) {
	return a.readSignal(a.addrs.ObstructionSensor)
}

// CurrentFloor scans the floor sensors bottom up and reports the first one
// that is high. ok is false while the car is between floors.
func (a *Adapter) CurrentFloor() (floor elevconsts.Floor, ok bool, err error) {
	for f := elevconsts.Floor(0); f < elevconsts.NumFloors; f++ {
		signal, err := a.GetFloorSignal(f)
		if err != nil {
			return 0, false, err
		}
		if signal == elevconsts.High {
			return f, true, nil
		}
	}
	return 0, false, nil
}

func (a *Adapter) writeLight(addr portdev.ChannelAddress, mode elevconsts.Light) error {
	Log.Trace().Msgf("Light %s %v", addr, mode)
	if mode == elevconsts.On {
		return a.dev.SetBit(addr)
	}
	return a.dev.ClearBit(addr)
}

func (a *Adapter) readSignal(addr portdev.ChannelAddress) (elevconsts.Signal, error) {
	value, err := a.dev.ReadBit(addr)
	if err != nil {
		return elevconsts.Low, err
	}
	return elevconsts.SignalFromRaw(value), nil
}

// EncodeFloorDisplay splits floor into the lamp states of the two display
// channels, most significant bit first.
func EncodeFloorDisplay(floor elevconsts.Floor) (hi, lo elevconsts.Light) {
	hi, lo = elevconsts.Off, elevconsts.Off
	if floor&0x2 != 0 {
		hi = elevconsts.On
	}
	if floor&0x1 != 0 {
		lo = elevconsts.On
	}
	return hi, lo
}

// DecodeFloorDisplay reads a floor back from the raw display bits.
func DecodeFloorDisplay(hi, lo uint) elevconsts.Floor {
	var floor elevconsts.Floor
	if hi != 0 {
		floor |= 0x2
	}
	if lo != 0 {
		floor |= 0x1
	}
	return floor
}
