package elevio

import (
	"fmt"

	"github.com/heislab/elevcomedi/internal/elevconsts"
	"github.com/heislab/elevcomedi/internal/portdev"
)

type ch = portdev.ChannelAddress

// AddressMap is the wiring of the elevator car to the port card. Button
// lamps and button switches sit on different registers, so each button kind
// has one table for lights and one for signals. CallUp tables are indexed
// by floor, CallDown tables by floor-1.
type AddressMap struct {
	CallUpLight   [elevconsts.NumFloors - 1]ch
	CallDownLight [elevconsts.NumFloors - 1]ch
	InternalLight [elevconsts.NumFloors]ch

	// FloorDisplay[0] carries bit 1 of the floor, FloorDisplay[1] bit 0.
	FloorDisplay [2]ch
	DoorLight    ch
	StopLight    ch

	CallUpSignal   [elevconsts.NumFloors - 1]ch
	CallDownSignal [elevconsts.NumFloors - 1]ch
	InternalSignal [elevconsts.NumFloors]ch

	FloorSensor       [elevconsts.NumFloors]ch
	StopSensor        ch
	ObstructionSensor ch

	Motor    ch
	MotorDir ch
}

// DefaultAddressMap returns the wiring of the lab elevator.
func DefaultAddressMap() *AddressMap {
	a := portdev.Addr
	return &AddressMap{
		CallUpLight:   [...]ch{a(0x309), a(0x308), a(0x306)},
		CallDownLight: [...]ch{a(0x307), a(0x305), a(0x304)},
		InternalLight: [...]ch{a(0x313), a(0x312), a(0x311), a(0x310)},

		FloorDisplay: [...]ch{a(0x300), a(0x301)},
		DoorLight:    a(0x303),
		StopLight:    a(0x314),

		CallUpSignal:   [...]ch{a(0x317), a(0x316), a(0x201)},
		CallDownSignal: [...]ch{a(0x200), a(0x202), a(0x203)},
		InternalSignal: [...]ch{a(0x321), a(0x320), a(0x319), a(0x318)},

		FloorSensor:       [...]ch{a(0x204), a(0x205), a(0x206), a(0x207)},
		StopSensor:        a(0x322),
		ObstructionSensor: a(0x323),

		Motor:    a(0x100),
		MotorDir: a(0x315),
	}
}

// ButtonLight resolves the lamp of b, or fails with an *InvalidInputError.
func (m *AddressMap) ButtonLight(b elevconsts.Button) (portdev.ChannelAddress, error) {
	return m.resolveButton("set_button_light", b, &m.CallUpLight, &m.CallDownLight, &m.InternalLight)
}

// ButtonSignal resolves the switch of b, or fails with an *InvalidInputError.
func (m *AddressMap) ButtonSignal(b elevconsts.Button) (portdev.ChannelAddress, error) {
	return m.resolveButton("get_button_signal", b, &m.CallUpSignal, &m.CallDownSignal, &m.InternalSignal)
}

func (m *AddressMap) resolveButton(op string, b elevconsts.Button, up, down *[elevconsts.NumFloors - 1]ch, internal *[elevconsts.NumFloors]ch) (portdev.ChannelAddress, error) {
	switch {
	case b.Kind == elevconsts.CallUpButton && b.Floor >= 0 && b.Floor < elevconsts.TopFloor:
		return up[b.Floor], nil
	case b.Kind == elevconsts.CallDownButton && b.Floor > 0 && b.Floor <= elevconsts.TopFloor:
		return down[b.Floor-1], nil
	case b.Kind == elevconsts.InternalButton && b.Floor.Valid():
		return internal[b.Floor], nil
	default:
		return portdev.ChannelAddress{}, &InvalidInputError{Op: op, Button: &b, Floor: b.Floor}
	}
}

func (m *AddressMap) FloorSensorAt(floor elevconsts.Floor) (portdev.ChannelAddress, error) {
	if !floor.Valid() {
		return portdev.ChannelAddress{}, &InvalidInputError{Op: "get_floor_signal", Floor: floor}
	}
	return m.FloorSensor[floor], nil
}

// Validate checks that every output and every input has a register of its
// own.
func (m *AddressMap) Validate() error {
	written := map[portdev.ChannelAddress]string{}
	add := func(name string, c ch) error {
		if prev, ok := written[c]; ok {
			return fmt.Errorf("address %s used by both %s and %s", c, prev, name)
		}
		written[c] = name
		return nil
	}

	for i, c := range m.CallUpLight {
		if err := add(fmt.Sprintf("call-up light %d", i), c); err != nil {
			return err
		}
	}
	for i, c := range m.CallDownLight {
		if err := add(fmt.Sprintf("call-down light %d", i+1), c); err != nil {
			return err
		}
	}
	for i, c := range m.InternalLight {
		if err := add(fmt.Sprintf("internal light %d", i), c); err != nil {
			return err
		}
	}
	for i, c := range m.FloorDisplay {
		if err := add(fmt.Sprintf("floor display bit %d", 1-i), c); err != nil {
			return err
		}
	}
	for name, c := range map[string]ch{"door light": m.DoorLight, "stop light": m.StopLight, "motor direction": m.MotorDir} {
		if err := add(name, c); err != nil {
			return err
		}
	}

	read := map[portdev.ChannelAddress]string{}
	check := func(name string, c ch) error {
		if prev, ok := written[c]; ok {
			return fmt.Errorf("address %s used by both %s and %s", c, prev, name)
		}
		if prev, ok := read[c]; ok {
			return fmt.Errorf("address %s used by both %s and %s", c, prev, name)
		}
		read[c] = name
		return nil
	}

	for i, c := range m.CallUpSignal {
		if err := check(fmt.Sprintf("call-up signal %d", i), c); err != nil {
			return err
		}
	}
	for i, c := range m.CallDownSignal {
		if err := check(fmt.Sprintf("call-down signal %d", i+1), c); err != nil {
			return err
		}
	}
	for i, c := range m.InternalSignal {
		if err := check(fmt.Sprintf("internal signal %d", i), c); err != nil {
			return err
		}
	}
	for i, c := range m.FloorSensor {
		if err := check(fmt.Sprintf("floor sensor %d", i), c); err != nil {
			return err
		}
	}
	if err := check("stop sensor", m.StopSensor); err != nil {
		return err
	}
	return check("obstruction sensor", m.ObstructionSensor)
}
