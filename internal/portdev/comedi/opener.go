// Package comedi drives the elevator card through comedilib. The binding is
// only compiled with the comedi build tag; other builds get an Opener that
// always fails with portdev.ErrConfiguration.
package comedi

import (
	"github.com/heislab/elevcomedi/internal/logger"
	"github.com/heislab/elevcomedi/internal/portdev"
)

var Log = logger.GetLogger()

const DefaultPath = "/dev/comedi0"

// Opener opens the comedi device node at Path.
type Opener struct {
	Path string
}

func (o Opener) Open() (portdev.Device, error) {
	path := o.Path
	if path == "" {
		path = DefaultPath
	}
	Log.Debug().Msgf("Opening comedi device %s", path)
	return open(path)
}
