package easing

import (
	"fmt"
	"math"
)

// Config describes a generator with float64 end points, for callers that
// read curves from files or flags.
type Config struct {
	// Curve selects the shaping function. In YAML and JSON it is written
	// by name, e.g. "quad-in-out".
	Curve Curve `yaml:"curve" json:"curve"`

	// Start and End are rounded to the nearest Fix.
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`

	// Steps is the number of values produced.
	Steps uint64 `yaml:"steps" json:"steps"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Curve.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownCurve, int(c.Curve))
	}

	lo, hi := MinFix.ToFloat64(), MaxFix.ToFloat64()
	for _, v := range [...]float64{c.Start, c.End} {
		if math.IsNaN(v) || v < lo || v > hi {
			return fmt.Errorf("%w: end point %v outside [%v, %v]", ErrInvalidConfig, v, lo, hi)
		}
	}

	if dist := c.End - c.Start; dist < lo || dist > hi {
		return fmt.Errorf("%w: distance %v between end points is not representable", ErrInvalidConfig, dist)
	}

	return nil
}

// NewFromConfig validates cfg and builds its generator.
func NewFromConfig(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGenerator(cfg.Curve, FromFloat64(cfg.Start), FromFloat64(cfg.End), cfg.Steps), nil
}
