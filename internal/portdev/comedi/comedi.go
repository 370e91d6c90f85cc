//go:build comedi

package comedi

/*
#cgo LDFLAGS: -lcomedi -lm
#include <stdlib.h>
#include <comedilib.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/heislab/elevcomedi/internal/portdev"
)

const (
	analogRange = 0
	arefGround  = C.AREF_GROUND
)

type device struct {
	mtx sync.Mutex
	it  *C.comedi_t
}

func open(path string) (portdev.Device, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	it := C.comedi_open(cpath)
	if it == nil {
		return nil, fmt.Errorf("%w: comedi_open(%s) failed", portdev.ErrConfiguration, path)
	}

	err := portdev.ConfigurePorts(func(ch portdev.ChannelAddress, dir portdev.Direction) error {
		status := C.comedi_dio_config(it, C.uint(ch.Subdevice), C.uint(ch.Offset), C.uint(dir))
		if status != 0 {
			return fmt.Errorf("comedi_dio_config returned %d", int(status))
		}
		return nil
	})
	if err != nil {
		C.comedi_close(it)
		return nil, err
	}

	return &device{it: it}, nil
}

func (d *device) SetBit(ch portdev.ChannelAddress) error {
	return d.dioWrite("set_bit", ch, 1)
}

func (d *device) ClearBit(ch portdev.ChannelAddress) error {
	return d.dioWrite("clear_bit", ch, 0)
}

func (d *device) dioWrite(op string, ch portdev.ChannelAddress, bit C.uint) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if ret := C.comedi_dio_write(d.it, C.uint(ch.Subdevice), C.uint(ch.Offset), bit); ret != 1 {
		return &portdev.IOError{Op: op, Addr: ch, Err: fmt.Errorf("comedi_dio_write returned %d", int(ret))}
	}
	return nil
}

func (d *device) ReadBit(ch portdev.ChannelAddress) (uint, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	var data C.uint
	if ret := C.comedi_dio_read(d.it, C.uint(ch.Subdevice), C.uint(ch.Offset), &data); ret != 1 {
		return 0, &portdev.IOError{Op: "read_bit", Addr: ch, Err: fmt.Errorf("comedi_dio_read returned %d", int(ret))}
	}
	return uint(data), nil
}

func (d *device) WriteAnalog(ch portdev.ChannelAddress, value uint) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	ret := C.comedi_data_write(d.it, C.uint(ch.Subdevice), C.uint(ch.Offset), analogRange, arefGround, C.lsampl_t(value))
	if ret != 1 {
		return &portdev.IOError{Op: "write_analog", Addr: ch, Err: fmt.Errorf("comedi_data_write returned %d", int(ret))}
	}
	return nil
}

func (d *device) ReadAnalog(ch portdev.ChannelAddress) (uint, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	var data C.lsampl_t
	ret := C.comedi_data_read(d.it, C.uint(ch.Subdevice), C.uint(ch.Offset), analogRange, arefGround, &data)
	if ret != 1 {
		return 0, &portdev.IOError{Op: "read_analog", Addr: ch, Err: fmt.Errorf("comedi_data_read returned %d", int(ret))}
	}
	return uint(data), nil
}

func (d *device) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.it == nil {
		return nil
	}
	ret := C.comedi_close(d.it)
	d.it = nil
	if ret != 0 {
		return fmt.Errorf("comedi_close returned %d", int(ret))
	}
	return nil
}
