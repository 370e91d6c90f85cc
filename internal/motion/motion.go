// Package motion patrols the car between two turnaround floors and stops it
// for good when the stop sensor goes high.
package motion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heislab/elevcomedi/internal/elevconsts"
	"github.com/heislab/elevcomedi/internal/logger"
)

var Log = logger.GetLogger()

var ErrStopped = errors.New("motion controller is stopped")

// ElevatorIO is the part of the elevator I/O adapter the controller uses.
type ElevatorIO interface {
	CurrentFloor() (elevconsts.Floor, bool, error)
	GetStopSignal() (elevconsts.Signal, error)
	SetMotorDirection(dir elevconsts.MotorDirection) error
	SetFloorLight(floor elevconsts.Floor) error
}

type State int

const (
	Idle State = iota
	MovingUp
	MovingDown
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "S_Idle"
	case MovingUp:
		return "S_MovingUp"
	case MovingDown:
		return "S_MovingDown"
	case Stopped:
		return "S_Stopped"
	default:
		return "S_UNDEFINED"
	}
}

type Policy struct {
	// UpperFloor is where the upward leg turns around.
	UpperFloor elevconsts.Floor
	// LowerFloor is where the downward leg turns around.
	LowerFloor elevconsts.Floor
	// TrackFloorIndicator writes every newly sensed floor to the display.
	TrackFloorIndicator bool
	// PollInterval is slept between iterations. Zero polls as fast as the
	// port device answers.
	PollInterval time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		UpperFloor:          elevconsts.TopFloor,
		LowerFloor:          0,
		TrackFloorIndicator: true,
	}
}

func (p Policy) Validate() error {
	if !p.LowerFloor.Valid() || !p.UpperFloor.Valid() {
		return fmt.Errorf("turnaround floors %d and %d must be within 0..%d", p.LowerFloor, p.UpperFloor, elevconsts.TopFloor)
	}
	if p.LowerFloor >= p.UpperFloor {
		return fmt.Errorf("lower turnaround floor %d must be below upper turnaround floor %d", p.LowerFloor, p.UpperFloor)
	}
	if p.PollInterval < 0 {
		return fmt.Errorf("poll interval %v is negative", p.PollInterval)
	}
	return nil
}

type Controller struct {
	io     ElevatorIO
	policy Policy

	state     State
	lastFloor elevconsts.Floor
	atFloor   bool
}

func New(io ElevatorIO, policy Policy) (*Controller, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		io:     io,
		policy: policy,
		state:  Idle,
	}, nil
}

func (c *Controller) State() State {
	return c.state
}

// Start commands the motor up and enters MovingUp.
func (c *Controller) Start() error {
	if c.state == Stopped {
		return ErrStopped
	}
	if err := c.command(elevconsts.Up, MovingUp); err != nil {
		return err
	}
	Log.Info().Msgf("Patrolling between floor %d and floor %d", c.policy.LowerFloor, c.policy.UpperFloor)
	return nil
}

// Step runs one poll iteration. It reports done once the stop sensor has
// stopped the car. The stop sensor is read on every iteration, whatever
// the floor sensors said.
func (c *Controller) Step() (done bool, err error) {
	if c.state == Stopped {
		return true, ErrStopped
	}

	floor, ok, err := c.io.CurrentFloor()
	if err != nil {
		return false, fmt.Errorf("reading floor sensors: %w", err)
	}
	if ok {
		if err := c.handleFloor(floor); err != nil {
			return false, err
		}
	}
	c.atFloor = ok

	stop, err := c.io.GetStopSignal()
	if err != nil {
		return false, fmt.Errorf("reading stop sensor: %w", err)
	}
	if stop == elevconsts.High {
		Log.Warn().Msgf("Stop sensor high in %v, stopping", c.state)
		if err := c.command(elevconsts.Stop, Stopped); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (c *Controller) handleFloor(floor elevconsts.Floor) error {
	if c.policy.TrackFloorIndicator && (!c.atFloor || floor != c.lastFloor) {
		Log.Debug().Msgf("Arrived at floor %d", floor)
		if err := c.io.SetFloorLight(floor); err != nil {
			return fmt.Errorf("updating floor display: %w", err)
		}
	}
	c.lastFloor = floor

	switch {
	case c.state == MovingUp && floor == c.policy.UpperFloor:
		return c.command(elevconsts.Down, MovingDown)
	case c.state == MovingDown && floor == c.policy.LowerFloor:
		return c.command(elevconsts.Up, MovingUp)
	}
	return nil
}

func (c *Controller) command(dir elevconsts.MotorDirection, next State) error {
	if err := c.io.SetMotorDirection(dir); err != nil {
		return fmt.Errorf("setting motor direction %v: %w", dir, err)
	}
	Log.Debug().Msgf("State %v -> %v", c.state, next)
	c.state = next
	return nil
}

// Run starts the car and polls until the stop sensor stops it, returning
// nil, or until any I/O fails, returning that error. Cancelling ctx stops
// the motor and returns ctx.Err().
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Start(); err != nil {
		return err
	}

	var ticker *time.Ticker
	if c.policy.PollInterval > 0 {
		ticker = time.NewTicker(c.policy.PollInterval)
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			Log.Warn().Msgf("Motion controller has been signaled to stop")
			if err := c.command(elevconsts.Stop, Stopped); err != nil {
				return err
			}
			return ctx.Err()
		default:
		}

		done, err := c.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
	}
}
