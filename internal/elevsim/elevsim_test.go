package elevsim

import (
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/heislab/elevcomedi/internal/elevconsts"
	"github.com/heislab/elevcomedi/internal/elevio"
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/portdev/memdev"
	"github.com/rs/zerolog"
)

func newTestConsole(t *testing.T) (*Console, *memdev.Device, *elevio.Adapter) {
	t.Helper()
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	dev := memdev.New()
	adapter, err := elevio.New(dev, elevio.DefaultAddressMap())
	if err != nil {
		t.Fatalf("elevio.New returned %v", err)
	}
	return NewConsole(dev, adapter.AddressMap()), dev, adapter
}

func TestFloorKeys(t *testing.T) {
	console, _, adapter := newTestConsole(t)

	for f := elevconsts.Floor(0); f < elevconsts.NumFloors; f++ {
		if console.HandleKey(rune('1'+f), 0) {
			t.Fatalf("key %c asked to quit", rune('1'+f))
		}
		floor, ok, err := adapter.CurrentFloor()
		if err != nil || !ok || floor != f {
			t.Errorf("after key %c CurrentFloor() = %d, %v, %v", rune('1'+f), floor, ok, err)
		}
	}

	console.HandleKey('0', 0)
	if _, ok, _ := adapter.CurrentFloor(); ok {
		t.Errorf("car still at a floor after key 0")
	}
}

func TestSwitchKeys(t *testing.T) {
	console, _, adapter := newTestConsole(t)

	console.HandleKey('s', 0)
	if s, _ := adapter.GetStopSignal(); s != elevconsts.High {
		t.Errorf("stop signal %v after s, expected High", s)
	}
	console.HandleKey('s', 0)
	if s, _ := adapter.GetStopSignal(); s != elevconsts.Low {
		t.Errorf("stop signal %v after second s, expected Low", s)
	}

	console.HandleKey('o', 0)
	if s, _ := adapter.GetObstructionSignal(); s != elevconsts.High {
		t.Errorf("obstruction signal %v after o, expected High", s)
	}
}

func TestQuitKeys(t *testing.T) {
	console, _, _ := newTestConsole(t)

	if !console.HandleKey('q', 0) {
		t.Errorf("q did not quit")
	}
	if !console.HandleKey(0, keyboard.KeyCtrlC) {
		t.Errorf("Ctrl-C did not quit")
	}
	if console.HandleKey('x', 0) {
		t.Errorf("x quit")
	}
}

func TestStatus(t *testing.T) {
	console, _, adapter := newTestConsole(t)

	if err := adapter.SetMotorDirection(elevconsts.Down); err != nil {
		t.Fatalf("SetMotorDirection returned %v", err)
	}
	if err := adapter.SetFloorLight(2); err != nil {
		t.Fatalf("SetFloorLight returned %v", err)
	}
	expected := "motor down, display 2, stop lamp 0, door lamp 0"
	if console.Status() != expected {
		t.Errorf("Status() = %q, expected %q", console.Status(), expected)
	}

	if err := adapter.SetMotorDirection(elevconsts.Stop); err != nil {
		t.Fatalf("SetMotorDirection returned %v", err)
	}
	if err := adapter.SetMotorDirection(elevconsts.Up); err != nil {
		t.Fatalf("SetMotorDirection returned %v", err)
	}
	if console.Status() != "motor up, display 2, stop lamp 0, door lamp 0" {
		t.Errorf("Status() = %q after Up", console.Status())
	}
}
