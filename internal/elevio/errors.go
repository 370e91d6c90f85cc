package elevio

import (
	"errors"
	"fmt"

	"github.com/heislab/elevcomedi/internal/elevconsts"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("unsupported floor/button for this operation")

// InvalidInputError is returned before any port access when a floor or
// button does not exist on the car. Button is nil for floor-only operations.
type InvalidInputError struct {
	Op     string
	Button *elevconsts.Button
	Floor  elevconsts.Floor
}

func (e *InvalidInputError) Error() string {
	if e.Button != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, *e.Button, ErrInvalidInput)
	}
	return fmt.Sprintf("%s: floor %d: %v", e.Op, e.Floor, ErrInvalidInput)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
