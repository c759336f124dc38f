package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"

	"github.com/smasonuk/gosiebox/box"
	"github.com/smasonuk/gosiebox/spring"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the showcase window and animation settings.
type Config struct {
	// Window
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`

	// Sensitivity converts wheel deltaY into open amount. Negative values
	// open the scrollable box on scroll up.
	Sensitivity float64 `json:"sensitivity"`
	MaxOpen     float64 `json:"max_open"`
	// WheelLineHeight converts one wheel notch into browser-style deltaY.
	WheelLineHeight float64 `json:"wheel_line_height"`
	Integrator      string  `json:"integrator"`

	// Variants are the boxes on the shelf, left to right.
	Variants []string `json:"variants"`
	// Springs overrides scrollable part profiles, keyed by part name.
	Springs map[string]spring.Params `json:"springs,omitempty"`
	// Seed fixes random choices. Zero seeds from the clock.
	Seed int64 `json:"seed,omitempty"`
	// Luxury overrides the luxury box colours.
	Luxury LuxuryColors `json:"luxury"`
}

// DefaultVariants is the stock shelf order.
var DefaultVariants = []string{
	"scrollable", "luxury", "neon", "holographic",
	"wooden", "glass", "basic", "geometric", "product",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Width:           1280,
		Height:          720,
		Title:           "gosiebox",
		Sensitivity:     box.DefaultSensitivity,
		MaxOpen:         box.MaxScrollValue,
		WheelLineHeight: 100,
		Integrator:      spring.Euler.String(),
		Variants:        slices.Clone(DefaultVariants),
	}
}

// Load reads a JSON config file over the defaults. Fields missing from the
// file keep their default values. A missing file, or an empty path, yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Variant     string
	Sensitivity float64
	Integrator  string
	Width       int
	Height      int
}

// Resolve applies CLI flags. Zero-valued flags leave the file value alone.
func (c *Config) Resolve(flags Flags) {
	if flags.Variant != "" {
		c.Variants = []string{flags.Variant}
	}
	if flags.Sensitivity != 0 {
		c.Sensitivity = flags.Sensitivity
	}
	if flags.Integrator != "" {
		c.Integrator = flags.Integrator
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Sensitivity == 0 || math.IsNaN(c.Sensitivity) || math.IsInf(c.Sensitivity, 0) {
		return fmt.Errorf("%w: sensitivity %v", ErrInvalid, c.Sensitivity)
	}
	if !(c.MaxOpen > 0) || c.MaxOpen > box.MaxScrollValue {
		return fmt.Errorf("%w: max_open %v not in (0, %v]", ErrInvalid, c.MaxOpen, box.MaxScrollValue)
	}
	if !(c.WheelLineHeight > 0) || math.IsInf(c.WheelLineHeight, 0) {
		return fmt.Errorf("%w: wheel_line_height %v", ErrInvalid, c.WheelLineHeight)
	}
	if _, err := spring.ParseMethod(c.Integrator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalid)
	}
	known := box.Variants()
	for _, v := range c.Variants {
		if !slices.Contains(known, v) {
			return fmt.Errorf("%w: unknown variant %q", ErrInvalid, v)
		}
	}
	for name, p := range c.Springs {
		if _, ok := box.ParsePart(name); !ok {
			return fmt.Errorf("%w: spring for unknown part %q", ErrInvalid, name)
		}
		if !p.Valid() {
			return fmt.Errorf("%w: spring %q: %v", ErrInvalid, name, p)
		}
	}
	if _, err := c.Luxury.Palette(); err != nil {
		return fmt.Errorf("%w: luxury %v", ErrInvalid, err)
	}
	return nil
}

// Method returns the configured integrator, Euler when unknown.
func (c *Config) Method() spring.Method {
	m, _ := spring.ParseMethod(c.Integrator)
	return m
}

// ScrollableOptions builds the options of the scrollable box.
func (c *Config) ScrollableOptions() box.Options {
	opts := box.DefaultOptions()
	opts.Sensitivity = c.Sensitivity
	opts.MaxOpen = c.MaxOpen
	opts.Method = c.Method()
	if len(c.Springs) > 0 {
		opts.Springs = make(map[box.Part]spring.Params, len(c.Springs))
		for name, p := range c.Springs {
			if part, ok := box.ParsePart(name); ok {
				opts.Springs[part] = p
			}
		}
	}
	return opts
}

// VariantOptions builds the options shared by every shelf box.
func (c *Config) VariantOptions() box.VariantOptions {
	vo := box.VariantOptions{
		Method:     c.Method(),
		Scrollable: c.ScrollableOptions(),
	}
	if c.Seed != 0 {
		vo.Rand = rand.New(rand.NewSource(c.Seed))
	}
	return vo
}
