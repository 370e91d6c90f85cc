package elevconsts

import "testing"

func TestButtonValid(t *testing.T) {
	tests := []struct {
		button Button
		valid  bool
	}{
		{CallUp(0), true},
		{CallUp(TopFloor - 1), true},
		{CallUp(TopFloor), false},
		{CallUp(-1), false},
		{CallDown(0), false},
		{CallDown(1), true},
		{CallDown(TopFloor), true},
		{CallDown(NumFloors), false},
		{Internal(-1), false},
		{Internal(NumFloors), false},
		{Button{Kind: ButtonKind(7), Floor: 1}, false},
	}

	for f := Floor(0); f < NumFloors; f++ {
		tests = append(tests, struct {
			button Button
			valid  bool
		}{Internal(f), true})
	}

	for _, test := range tests {
		if test.button.Valid() != test.valid {
			t.Errorf("%v.Valid() = %v, expected %v", test.button, test.button.Valid(), test.valid)
		}
	}
}

func TestAllButtons(t *testing.T) {
	buttons := AllButtons()
	if len(buttons) != 3*NumFloors-2 {
		t.Fatalf("AllButtons() returned %d buttons, expected %d", len(buttons), 3*NumFloors-2)
	}
	for _, b := range buttons {
		if !b.Valid() {
			t.Errorf("AllButtons() contains invalid button %v", b)
		}
	}
}

func TestSignalFromRaw(t *testing.T) {
	if SignalFromRaw(0) != Low {
		t.Errorf("SignalFromRaw(0) = %v, expected Low", SignalFromRaw(0))
	}
	for _, v := range []uint{1, 2, 255} {
		if SignalFromRaw(v) != High {
			t.Errorf("SignalFromRaw(%d) = %v, expected High", v, SignalFromRaw(v))
		}
	}
}

func TestStrings(t *testing.T) {
	if Up.String() != "Up" || Down.String() != "Down" || Stop.String() != "Stop" {
		t.Errorf("MotorDirection strings = %v %v %v", Up, Down, Stop)
	}
	if MotorDirection(5).String() != "Undefined" {
		t.Errorf("MotorDirection(5).String() = %v, expected Undefined", MotorDirection(5))
	}
	if CallDown(2).String() != "B_CallDown(2)" {
		t.Errorf("CallDown(2).String() = %v, expected B_CallDown(2)", CallDown(2))
	}
}
