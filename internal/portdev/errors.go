package portdev

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the card could not be opened or a channel
	// could not be given its direction.
	ErrConfiguration = errors.New("port device configuration failed")
	ErrIO            = errors.New("port device i/o failed")
)

// IOError records the operation and channel of a failed transfer.
type IOError struct {
	Op   string
	Addr ChannelAddress
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s[%s] failed", e.Op, e.Addr)
	}
	return fmt.Sprintf("%s[%s] failed: %v", e.Op, e.Addr, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
