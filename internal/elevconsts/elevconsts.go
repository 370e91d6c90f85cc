package elevconsts

import "fmt"

const (
	NumFloors = 4
	TopFloor  = NumFloors - 1
)

type Floor int

func (f Floor) Valid() bool {
	return f >= 0 && f <= TopFloor
}

type MotorDirection int

const (
	Down MotorDirection = -1
	Stop MotorDirection = 0
	Up   MotorDirection = 1
)

func (d MotorDirection) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Stop:
		return "Stop"
	default:
		return "Undefined"
	}
}

type Light int

const (
	Off Light = iota
	On
)

func (l Light) String() string {
	switch l {
	case Off:
		return "Off"
	case On:
		return "On"
	default:
		return "Undefined"
	}
}

type Signal int

const (
	Low Signal = iota
	High
)

// SignalFromRaw thresholds a raw bit value read from a port.
func SignalFromRaw(value uint) Signal {
	if value == 0 {
		return Low
	}
	return High
}

func (s Signal) String() string {
	switch s {
	case Low:
		return "Low"
	case High:
		return "High"
	default:
		return "Undefined"
	}
}

type ButtonKind int

const (
	CallUpButton ButtonKind = iota
	CallDownButton
	InternalButton
)

func (k ButtonKind) String() string {
	switch k {
	case CallUpButton:
		return "B_CallUp"
	case CallDownButton:
		return "B_CallDown"
	case InternalButton:
		return "B_Internal"
	default:
		return "B_UNDEFINED"
	}
}

// Button is a button kind bound to the floor it sits on.
type Button struct {
	Kind  ButtonKind
	Floor Floor
}

func CallUp(floor Floor) Button   { return Button{Kind: CallUpButton, Floor: floor} }
func CallDown(floor Floor) Button { return Button{Kind: CallDownButton, Floor: floor} }
func Internal(floor Floor) Button { return Button{Kind: InternalButton, Floor: floor} }

// Valid reports whether the button exists on the car: there is no call-up
// button on the top floor and no call-down button on the ground floor.
func (b Button) Valid() bool {
	switch b.Kind {
	case CallUpButton:
		return b.Floor >= 0 && b.Floor < TopFloor
	case CallDownButton:
		return b.Floor > 0 && b.Floor <= TopFloor
	case InternalButton:
		return b.Floor.Valid()
	default:
		return false
	}
}

func (b Button) String() string {
	return fmt.Sprintf("%s(%d)", b.Kind, b.Floor)
}

// AllButtons lists every button that physically exists, floor by floor.
func AllButtons() []Button {
	buttons := make([]Button, 0, 3*NumFloors-2)
	for f := Floor(0); f < NumFloors; f++ {
		for _, b := range []Button{CallUp(f), CallDown(f), Internal(f)} {
			if b.Valid() {
				buttons = append(buttons, b)
			}
		}
	}
	return buttons
}
