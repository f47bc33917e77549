package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the default hopper configuration.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Physics: HopperPhysics{
			Gravity:        980,
			MaxDt:          0.2,
			JumpImpulse:    500,
			LaunchVelocity: Vec2{X: 283, Y: -283}, // ~400 along the down-right diagonal
			DeathY:         -500,
		},
		Body: HopperBody{
			Spawn:      Vec2{X: 0, Y: -50},
			Z:          1,
			HalfExtent: Vec2{X: 15, Y: 15},
		},
		Platforms: HopperPlatforms{
			SpawnPeriod:  2.0,
			LeadDistance: 500,
			BandMin:      -225,
			BandMax:      -150,
			Reward:       10,
			HalfExtent:   Vec2{X: 250, Y: 15},
		},
		View: HopperView{
			Top:    250,
			Bottom: -520,
		},
	}
}
