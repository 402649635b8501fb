// Package config provides YAML-based configuration loading and
// exploration mode management for the wayfarer platform.
package config

// WayfarerConfig contains all tunable settings for the wayfarer game.
type WayfarerConfig struct {
	View    ViewConfig    `yaml:"view"`
	Map     MapConfig     `yaml:"map"`
	Session SessionConfig `yaml:"session"`
}

// ViewConfig defines camera and projection parameters.
type ViewConfig struct {
	CellSize float64 `yaml:"cell_size"` // Screen units per world cell at zoom 1
	ZoomMin  float64 `yaml:"zoom_min"`
	ZoomMax  float64 `yaml:"zoom_max"`
	ZoomStep float64 `yaml:"zoom_step"` // Wheel factor, > 1
}

// MapConfig defines map presentation parameters.
type MapConfig struct {
	DepthTierCap     int    `yaml:"depth_tier_cap"`    // Cap on node depth tiers
	DefaultAlignment string `yaml:"default_alignment"` // "north-up" or "heading-up"
}

// SessionConfig defines session behavior.
type SessionConfig struct {
	PathingLocked bool `yaml:"pathing_locked"` // Enforce terrain rules
}

// Mode is a named exploration mode preset.
type Mode string

const (
	// ModeGuided enforces the world's terrain rules.
	ModeGuided Mode = "guided"
	// ModeFreeroam makes all rules advisory: every move is allowed.
	ModeFreeroam Mode = "freeroam"
)

// ApplyMode adjusts the config for an exploration mode preset.
// Unknown modes leave the config untouched.
func ApplyMode(cfg *WayfarerConfig, mode Mode) {
	switch mode {
	case ModeGuided:
		cfg.Session.PathingLocked = true
	case ModeFreeroam:
		cfg.Session.PathingLocked = false
	}
}
