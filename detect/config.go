// SPDX-License-Identifier: MIT
// Package: detect
//
// config.go: detector configuration, deterministic defaults and options.
//
// Contract:
//   • Config is a plain value; every detection call takes it explicitly.
//   • Option constructors validate and PANIC on meaningless inputs.
//     Detection functions never panic; they run Config.Validate and return
//     ErrBadConfig instead.
//   • NewConfig applies options in order (later overrides earlier).

package detect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalespace/pixel"
)

// ErrBadConfig indicates a Config field outside its documented range.
var ErrBadConfig = fmt.Errorf("%w: invalid detector configuration", pixel.ErrContractViolation)

// Deterministic defaults.
const (
	DefaultFloor           = 0.0
	DefaultFudge           = 1.0
	DefaultOctaves         = 2.0
	DefaultBlurSteps       = 5
	DefaultKernelSize      = 7
	DefaultInitialVariance = 0.5
	DefaultLevels          = 3
	DefaultHarrisVariance  = 1.5 * 1.5
)

// Config carries every detector tuning knob.
type Config struct {
	// Floor is the minimum signed response a pixel needs to stay a candidate.
	Floor float64
	// Fudge scales the coarser neighbour level in scale comparisons; the
	// finer neighbour is scaled by 1/Fudge. Must be > 0.
	Fudge float64
	// Octaves is the variance growth across one octave of blur steps (> 1).
	Octaves float64
	// BlurSteps is the number of DoG levels per octave (>= 3).
	BlurSteps int
	// KernelSize is the side of every square blur kernel (>= 1).
	KernelSize int
	// InitialVariance is the variance of the pre-blur (> 0).
	InitialVariance float64
	// Levels is the number of half-size octaves Keypoints visits (>= 1).
	Levels int
	// HarrisVariance is the pre-blur variance for HarrisKeypoints (> 0).
	HarrisVariance float64
}

// DefaultConfig returns the deterministic defaults.
func DefaultConfig() Config {
	return Config{
		Floor:           DefaultFloor,
		Fudge:           DefaultFudge,
		Octaves:         DefaultOctaves,
		BlurSteps:       DefaultBlurSteps,
		KernelSize:      DefaultKernelSize,
		InitialVariance: DefaultInitialVariance,
		Levels:          DefaultLevels,
		HarrisVariance:  DefaultHarrisVariance,
	}
}

// Option customises a Config.
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFloor sets the extremum floor. Panics on NaN.
func WithFloor(floor float64) Option {
	if math.IsNaN(floor) {
		panic("detect: WithFloor(NaN)")
	}
	return func(c *Config) { c.Floor = floor }
}

// WithFudge sets the scale-neighbour multiplier. Panics unless 0 < fudge < +Inf.
func WithFudge(fudge float64) Option {
	if !(fudge > 0) || math.IsInf(fudge, 1) {
		panic("detect: WithFudge(fudge<=0)")
	}
	return func(c *Config) { c.Fudge = fudge }
}

// WithOctaves sets the per-octave variance growth. Panics unless > 1.
func WithOctaves(octaves float64) Option {
	if !(octaves > 1) || math.IsInf(octaves, 1) {
		panic("detect: WithOctaves(octaves<=1)")
	}
	return func(c *Config) { c.Octaves = octaves }
}

// WithBlurSteps sets the number of DoG levels. Panics below 3.
func WithBlurSteps(steps int) Option {
	if steps < 3 {
		panic("detect: WithBlurSteps(steps<3)")
	}
	return func(c *Config) { c.BlurSteps = steps }
}

// WithKernelSize sets the blur kernel side. Panics below 1.
func WithKernelSize(size int) Option {
	if size < 1 {
		panic("detect: WithKernelSize(size<1)")
	}
	return func(c *Config) { c.KernelSize = size }
}

// WithInitialVariance sets the pre-blur variance. Panics unless > 0.
func WithInitialVariance(v float64) Option {
	if !(v > 0) {
		panic("detect: WithInitialVariance(v<=0)")
	}
	return func(c *Config) { c.InitialVariance = v }
}

// WithLevels sets the number of octaves. Panics below 1.
func WithLevels(levels int) Option {
	if levels < 1 {
		panic("detect: WithLevels(levels<1)")
	}
	return func(c *Config) { c.Levels = levels }
}

// WithHarrisVariance sets the Harris pre-blur variance. Panics unless > 0.
func WithHarrisVariance(v float64) Option {
	if !(v > 0) {
		panic("detect: WithHarrisVariance(v<=0)")
	}
	return func(c *Config) { c.HarrisVariance = v }
}

// Validate reports the first field outside its range, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Floor):
		return fmt.Errorf("Floor is NaN: %w", ErrBadConfig)
	case !(c.Fudge > 0) || math.IsInf(c.Fudge, 1):
		return fmt.Errorf("Fudge %g: %w", c.Fudge, ErrBadConfig)
	case !(c.Octaves > 1) || math.IsInf(c.Octaves, 1):
		return fmt.Errorf("Octaves %g: %w", c.Octaves, ErrBadConfig)
	case c.BlurSteps < 3:
		return fmt.Errorf("BlurSteps %d: %w", c.BlurSteps, ErrBadConfig)
	case c.KernelSize < 1:
		return fmt.Errorf("KernelSize %d: %w", c.KernelSize, ErrBadConfig)
	case !(c.InitialVariance > 0):
		return fmt.Errorf("InitialVariance %g: %w", c.InitialVariance, ErrBadConfig)
	case c.Levels < 1:
		return fmt.Errorf("Levels %d: %w", c.Levels, ErrBadConfig)
	case !(c.HarrisVariance > 0):
		return fmt.Errorf("HarrisVariance %g: %w", c.HarrisVariance, ErrBadConfig)
	}

	return nil
}

// ScaleStep is the per-level scale ratio Octaves^(1/(BlurSteps-2)).
func (c Config) ScaleStep() float64 {
	return math.Pow(c.Octaves, 1/float64(c.BlurSteps-2))
}
