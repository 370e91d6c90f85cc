package portdev

import "fmt"

type Direction uint8

const (
	Input  Direction = 0
	Output Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "undefined"
	}
}

// Port is a bank of digital channels sharing one direction.
type Port struct {
	Subdevice  uint8
	ChanOffset uint8
	Dir        Direction
}

// Ports is the direction layout of the elevator card. Channels
// FirstPortChannel..LastPortChannel of each port are configured at open.
var Ports = [...]Port{
	{Subdevice: 2, ChanOffset: 0, Dir: Input},
	{Subdevice: 3, ChanOffset: 0, Dir: Output},
	{Subdevice: 3, ChanOffset: 8, Dir: Output},
	{Subdevice: 3, ChanOffset: 16, Dir: Input},
}

const (
	FirstPortChannel = 1
	LastPortChannel  = 7
)

// ConfigurePorts calls configure for every channel of every port and stops
// at the first failure, which is returned wrapped in ErrConfiguration.
func ConfigurePorts(configure func(ch ChannelAddress, dir Direction) error) error {
	for offset := uint8(FirstPortChannel); offset <= LastPortChannel; offset++ {
		for _, port := range Ports {
			ch := ChannelAddress{Subdevice: port.Subdevice, Offset: port.ChanOffset + offset}
			if err := configure(ch, port.Dir); err != nil {
				return fmt.Errorf("%w: configuring (%d,%d,%s): %v", ErrConfiguration, ch.Subdevice, ch.Offset, port.Dir, err)
			}
		}
	}
	return nil
}
