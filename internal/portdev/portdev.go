// Package portdev is the boundary to the digital/analog port card the
// elevator is wired to. Channels are addressed by a sub-device selector and
// an offset within that sub-device.
package portdev

import "fmt"

type ChannelAddress struct {
	Subdevice uint8
	Offset    uint8
}

// Addr builds an address from the packed subdevice<<8|offset form used on
// the wiring sheets.
func Addr(packed uint16) ChannelAddress {
	return ChannelAddress{Subdevice: uint8(packed >> 8), Offset: uint8(packed & 0xff)}
}

func (c ChannelAddress) Packed() uint16 {
	return uint16(c.Subdevice)<<8 | uint16(c.Offset)
}

func (c ChannelAddress) String() string {
	return fmt.Sprintf("0x%03x", c.Packed())
}

// Device is a port card with every channel already configured.
// Implementations may also satisfy io.Closer.
type Device interface {
	SetBit(ch ChannelAddress) error
	ClearBit(ch ChannelAddress) error
	ReadBit(ch ChannelAddress) (uint, error)
	WriteAnalog(ch ChannelAddress, value uint) error
	ReadAnalog(ch ChannelAddress) (uint, error)
}

type Opener interface {
	Open() (Device, error)
}

type OpenerFunc func() (Device, error)

func (f OpenerFunc) Open() (Device, error) {
	return f()
}
