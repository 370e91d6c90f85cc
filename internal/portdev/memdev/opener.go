package memdev

import (
	"errors"
	"fmt"

	"github.com/heislab/elevcomedi/internal/portdev"
)

var errClosed = errors.New("device closed")

// Opener hands out Device, or fails with OpenErr wrapped in
// portdev.ErrConfiguration when OpenErr is set.
type Opener struct {
	Device  *Device
	OpenErr error
}

func (o *Opener) Open() (portdev.Device, error) {
	if o.OpenErr != nil {
		return nil, fmt.Errorf("%w: %v", portdev.ErrConfiguration, o.OpenErr)
	}
	if o.Device == nil {
		o.Device = New()
	}
	return o.Device, nil
}
