package portdev

import (
	"errors"
	"fmt"
	"testing"
)

func TestAddrPacking(t *testing.T) {
	tests := []struct {
		packed    uint16
		subdevice uint8
		offset    uint8
		str       string
	}{
		{0x100, 1, 0x00, "0x100"},
		{0x315, 3, 0x15, "0x315"},
		{0x207, 2, 0x07, "0x207"},
	}

	for _, test := range tests {
		addr := Addr(test.packed)
		if addr.Subdevice != test.subdevice || addr.Offset != test.offset {
			t.Errorf("Addr(0x%x) = %+v, expected subdevice %d offset %d", test.packed, addr, test.subdevice, test.offset)
		}
		if addr.Packed() != test.packed {
			t.Errorf("Addr(0x%x).Packed() = 0x%x", test.packed, addr.Packed())
		}
		if addr.String() != test.str {
			t.Errorf("Addr(0x%x).String() = %s, expected %s", test.packed, addr.String(), test.str)
		}
	}
}

func TestConfigurePorts(t *testing.T) {
	var seen []ChannelAddress
	directions := map[ChannelAddress]Direction{}

	err := ConfigurePorts(func(ch ChannelAddress, dir Direction) error {
		seen = append(seen, ch)
		directions[ch] = dir
		return nil
	})
	if err != nil {
		t.Fatalf("ConfigurePorts returned %v", err)
	}

	expected := len(Ports) * (LastPortChannel - FirstPortChannel + 1)
	if len(seen) != expected {
		t.Errorf("ConfigurePorts configured %d channels, expected %d", len(seen), expected)
	}
	if directions[ChannelAddress{Subdevice: 2, Offset: 4}] != Input {
		t.Errorf("channel (2,4) configured as %v, expected input", directions[ChannelAddress{Subdevice: 2, Offset: 4}])
	}
	if directions[ChannelAddress{Subdevice: 3, Offset: 9}] != Output {
		t.Errorf("channel (3,9) configured as %v, expected output", directions[ChannelAddress{Subdevice: 3, Offset: 9}])
	}
	if directions[ChannelAddress{Subdevice: 3, Offset: 17}] != Input {
		t.Errorf("channel (3,17) configured as %v, expected input", directions[ChannelAddress{Subdevice: 3, Offset: 17}])
	}
}

func TestConfigurePortsStopsAtFirstFailure(t *testing.T) {
	calls := 0
	err := ConfigurePorts(func(ch ChannelAddress, dir Direction) error {
		calls++
		if calls == 3 {
			return fmt.Errorf("status -1")
		}
		return nil
	})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("ConfigurePorts returned %v, expected ErrConfiguration", err)
	}
	if calls != 3 {
		t.Errorf("configure called %d times, expected 3", calls)
	}
}

func TestIOError(t *testing.T) {
	cause := errors.New("comedi_dio_write returned 0")
	var err error = &IOError{Op: "set_bit", Addr: Addr(0x303), Err: cause}

	if !errors.Is(err, ErrIO) {
		t.Errorf("errors.Is(%v, ErrIO) = false", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
	if errors.Is(err, ErrConfiguration) {
		t.Errorf("errors.Is(%v, ErrConfiguration) = true", err)
	}
	if err.Error() != "set_bit[0x303] failed: comedi_dio_write returned 0" {
		t.Errorf("Error() = %q", err.Error())
	}
}
