//go:build !comedi

package comedi

import (
	"errors"
	"testing"

	"github.com/heislab/elevcomedi/internal/portdev"
)

func TestOpenWithoutComediSupport(t *testing.T) {
	dev, err := Opener{}.Open()
	if dev != nil {
		t.Errorf("Open returned device %v, expected nil", dev)
	}
	if !errors.Is(err, portdev.ErrConfiguration) {
		t.Errorf("Open returned %v, expected ErrConfiguration", err)
	}
}
