package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smasonuk/gosiebox/box"
	"github.com/smasonuk/gosiebox/spring"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.Sensitivity != 0.01 || cfg.MaxOpen != 1 || cfg.WheelLineHeight != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Variants) != len(box.Variants()) {
		t.Errorf("default shelf has %d boxes, want %d", len(cfg.Variants), len(box.Variants()))
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.json")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) = %v", path, err)
		}
		if cfg.Width != DefaultConfig().Width {
			t.Errorf("Load(%q) width = %d", path, cfg.Width)
		}
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `{
		"sensitivity": -0.02,
		"integrator": "analytic",
		"variants": ["luxury", "scrollable"],
		"springs": {"lid": {"mass": 2, "tension": 300, "friction": 50}},
		"seed": 42
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Sensitivity != -0.02 {
		t.Errorf("Sensitivity = %v", cfg.Sensitivity)
	}
	if cfg.Width != 1280 {
		t.Errorf("Width = %d, want default", cfg.Width)
	}
	if cfg.Method() != spring.Analytic {
		t.Errorf("Method() = %v", cfg.Method())
	}

	opts := cfg.ScrollableOptions()
	if got := opts.Springs[box.Lid]; got != (spring.Params{Mass: 2, Tension: 300, Friction: 50}) {
		t.Errorf("lid spring = %v", got)
	}
	if opts.Sensitivity != -0.02 || opts.Method != spring.Analytic {
		t.Errorf("options = %+v", opts)
	}
	if vo := cfg.VariantOptions(); vo.Rand == nil {
		t.Errorf("seeded config has no Rand")
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := writeConfig(t, `{"width": "wide"}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted bad JSON")
	}
}

func TestResolveFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty flags broke config: %v", err)
	}

	cfg.Resolve(Flags{Variant: "neon", Sensitivity: -0.01, Integrator: "analytic", Width: 640, Height: 480})
	if len(cfg.Variants) != 1 || cfg.Variants[0] != "neon" {
		t.Errorf("Variants = %v", cfg.Variants)
	}
	if cfg.Sensitivity != -0.01 || cfg.Integrator != "analytic" || cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		edit func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero sensitivity", func(c *Config) { c.Sensitivity = 0 }},
		{"max open above one", func(c *Config) { c.MaxOpen = 1.5 }},
		{"max open zero", func(c *Config) { c.MaxOpen = 0 }},
		{"no wheel line height", func(c *Config) { c.WheelLineHeight = 0 }},
		{"unknown integrator", func(c *Config) { c.Integrator = "rk4" }},
		{"no variants", func(c *Config) { c.Variants = nil }},
		{"unknown variant", func(c *Config) { c.Variants = []string{"cardboard"} }},
		{"unknown part", func(c *Config) { c.Springs = map[string]spring.Params{"handle": spring.Lid} }},
		{"bad spring", func(c *Config) { c.Springs = map[string]spring.Params{"lid": {}} }},
		{"undamped spring", func(c *Config) {
			c.Springs = map[string]spring.Params{"lid": {Mass: 1, Tension: 100, Friction: 0}}
		}},
		{"unknown wood", func(c *Config) { c.Luxury.Wood = "pine" }},
		{"bad gem hex", func(c *Config) { c.Luxury.Gem = "#12345" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.edit(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
