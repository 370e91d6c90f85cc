package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/heislab/elevcomedi/internal/elevconsts"
	"github.com/heislab/elevcomedi/internal/elevio"
	"github.com/heislab/elevcomedi/internal/motion"
	"github.com/heislab/elevcomedi/internal/portdev/comedi"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "config/elevator.yaml"
	DefaultEnvPath = ".env"
)

type Config struct {
	Device               string        `yaml:"device"`
	MotorSpeed           uint          `yaml:"motor_speed"`
	UpperTurnaroundFloor int           `yaml:"upper_turnaround_floor"`
	LowerTurnaroundFloor int           `yaml:"lower_turnaround_floor"`
	FloorIndicator       bool          `yaml:"floor_indicator"`
	PollInterval         time.Duration `yaml:"poll_interval"`
	LogLevel             string        `yaml:"log_level"`
	Identifier           string        `yaml:"identifier"`
}

func Default() Config {
	policy := motion.DefaultPolicy()
	return Config{
		Device:               comedi.DefaultPath,
		MotorSpeed:           elevio.DefaultMotorSpeed,
		UpperTurnaroundFloor: int(policy.UpperFloor),
		LowerTurnaroundFloor: int(policy.LowerFloor),
		FloorIndicator:       policy.TrackFloorIndicator,
		PollInterval:         policy.PollInterval,
		LogLevel:             "info",
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// the overrides found in the env file at envPath. Either file may be
// missing.
func Load(path, envPath string) (Config, error) {
	c := Default()

	if path != "" {
		if err := c.loadFile(path); err != nil {
			return c, err
		}
	}
	if envPath != "" {
		if err := c.loadEnv(envPath); err != nil {
			return c, err
		}
	}
	return c, c.Validate()
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening config %s: %w", path, err)
	}
	defer file.Close()

	// an empty file decodes to io.EOF and keeps the defaults
	if err := yaml.NewDecoder(file).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv(path string) error {
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return c.applyEnv(env)
}

func (c *Config) applyEnv(env map[string]string) error {
	if v, ok := env["ELEVATOR_DEVICE"]; ok {
		c.Device = v
	}
	if v, ok := env["ELEVATOR_LOG_LEVEL"]; ok {
		c.LogLevel = v
	}
	if v, ok := env["ELEVATOR_ID"]; ok {
		c.Identifier = v
	}
	if v, ok := env["ELEVATOR_MOTOR_SPEED"]; ok {
		speed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("ELEVATOR_MOTOR_SPEED: %w", err)
		}
		c.MotorSpeed = uint(speed)
	}
	if v, ok := env["ELEVATOR_UPPER_FLOOR"]; ok {
		floor, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ELEVATOR_UPPER_FLOOR: %w", err)
		}
		c.UpperTurnaroundFloor = floor
	}
	if v, ok := env["ELEVATOR_LOWER_FLOOR"]; ok {
		floor, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ELEVATOR_LOWER_FLOOR: %w", err)
		}
		c.LowerTurnaroundFloor = floor
	}
	if v, ok := env["ELEVATOR_POLL_INTERVAL"]; ok {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ELEVATOR_POLL_INTERVAL: %w", err)
		}
		c.PollInterval = interval
	}
	return nil
}

func (c Config) Policy() motion.Policy {
	return motion.Policy{
		UpperFloor:          elevconsts.Floor(c.UpperTurnaroundFloor),
		LowerFloor:          elevconsts.Floor(c.LowerTurnaroundFloor),
		TrackFloorIndicator: c.FloorIndicator,
		PollInterval:        c.PollInterval,
	}
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
