package config

import (
	_ "embed"
)

//go:embed defaults/wayfarer.yaml
var defaultWayfarerYAML []byte

// DefaultWayfarerConfig returns the default wayfarer configuration.
func DefaultWayfarerConfig() WayfarerConfig {
	return WayfarerConfig{
		View: ViewConfig{
			CellSize: 6,
			ZoomMin:  0.05,
			ZoomMax:  5.0,
			ZoomStep: 1.2,
		},
		Map: MapConfig{
			DepthTierCap:     9,
			DefaultAlignment: "north-up",
		},
		Session: SessionConfig{
			PathingLocked: true,
		},
	}
}
