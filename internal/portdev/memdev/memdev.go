// Package memdev is a port device held in memory. Inputs are driven with
// SetInput and every call made through the portdev.Device interface is
// recorded in a journal.
package memdev

import (
	"sync"

	"github.com/heislab/elevcomedi/internal/portdev"
)

type OpKind int

const (
	OpSetBit OpKind = iota
	OpClearBit
	OpReadBit
	OpWriteAnalog
	OpReadAnalog
)

func (k OpKind) String() string {
	switch k {
	case OpSetBit:
		return "set_bit"
	case OpClearBit:
		return "clear_bit"
	case OpReadBit:
		return "read_bit"
	case OpWriteAnalog:
		return "write_analog"
	case OpReadAnalog:
		return "read_analog"
	default:
		return "unknown"
	}
}

type Op struct {
	Kind  OpKind
	Addr  portdev.ChannelAddress
	Value uint
}

type Device struct {
	mtx     sync.Mutex
	bits    map[portdev.ChannelAddress]uint
	analog  map[portdev.ChannelAddress]uint
	failOn  map[portdev.ChannelAddress]error
	journal []Op
	closed  bool
}

func New() *Device {
	return &Device{
		bits:   make(map[portdev.ChannelAddress]uint),
		analog: make(map[portdev.ChannelAddress]uint),
		failOn: make(map[portdev.ChannelAddress]error),
	}
}

// SetInput drives a digital channel as if the hardware had changed it.
// It is not journaled.
func (d *Device) SetInput(ch portdev.ChannelAddress, value uint) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.bits[ch] = value
}

// SetAnalogInput drives an analog channel. It is not journaled.
func (d *Device) SetAnalogInput(ch portdev.ChannelAddress, value uint) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.analog[ch] = value
}

func (d *Device) Bit(ch portdev.ChannelAddress) uint {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.bits[ch]
}

func (d *Device) Analog(ch portdev.ChannelAddress) uint {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.analog[ch]
}

// FailOn makes every later access to ch fail with err. A nil err clears it.
func (d *Device) FailOn(ch portdev.ChannelAddress, err error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if err == nil {
		delete(d.failOn, ch)
		return
	}
	d.failOn[ch] = err
}

func (d *Device) Journal() []Op {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return append([]Op(nil), d.journal...)
}

func (d *Device) ResetJournal() {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.journal = nil
}

func (d *Device) Closed() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.closed
}

func (d *Device) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.closed = true
	return nil
}

func (d *Device) SetBit(ch portdev.ChannelAddress) error {
	return d.write(OpSetBit, ch, 1)
}

func (d *Device) ClearBit(ch portdev.ChannelAddress) error {
	return d.write(OpClearBit, ch, 0)
}

func (d *Device) WriteAnalog(ch portdev.ChannelAddress, value uint) error {
	return d.write(OpWriteAnalog, ch, value)
}

func (d *Device) ReadBit(ch portdev.ChannelAddress) (uint, error) {
	return d.read(OpReadBit, ch)
}

func (d *Device) ReadAnalog(ch portdev.ChannelAddress) (uint, error) {
	return d.read(OpReadAnalog, ch)
}

func (d *Device) write(kind OpKind, ch portdev.ChannelAddress, value uint) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.journal = append(d.journal, Op{Kind: kind, Addr: ch, Value: value})
	if err := d.check(kind, ch); err != nil {
		return err
	}
	if kind == OpWriteAnalog {
		d.analog[ch] = value
	} else {
		d.bits[ch] = value
	}
	return nil
}

func (d *Device) read(kind OpKind, ch portdev.ChannelAddress) (uint, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	var value uint
	if kind == OpReadAnalog {
		value = d.analog[ch]
	} else {
		value = d.bits[ch]
	}
	d.journal = append(d.journal, Op{Kind: kind, Addr: ch, Value: value})
	if err := d.check(kind, ch); err != nil {
		return 0, err
	}
	return value, nil
}

func (d *Device) check(kind OpKind, ch portdev.ChannelAddress) error {
	if d.closed {
		return &portdev.IOError{Op: kind.String(), Addr: ch, Err: errClosed}
	}
	if err, ok := d.failOn[ch]; ok {
		return &portdev.IOError{Op: kind.String(), Addr: ch, Err: err}
	}
	return nil
}
