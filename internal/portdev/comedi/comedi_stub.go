//go:build !comedi

package comedi

import (
	"fmt"

	"github.com/heislab/elevcomedi/internal/portdev"
)

func open(path string) (portdev.Device, error) {
	return nil, fmt.Errorf("%w: cannot open %s, binary built without comedi support (use -tags comedi)", portdev.ErrConfiguration, path)
}
