// Package config provides YAML-based game configuration loading and
// validation for the hopper simulation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Vec2 is a YAML-friendly 2D vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// HopperConfig contains all configuration for the hopper game.
type HopperConfig struct {
	Physics   HopperPhysics   `yaml:"physics"`
	Body      HopperBody      `yaml:"body"`
	Platforms HopperPlatforms `yaml:"platforms"`
	View      HopperView      `yaml:"view"`
}

// HopperPhysics defines integration and control parameters.
type HopperPhysics struct {
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration, units/s^2
	MaxDt          float64 `yaml:"max_dt"`          // Timestep clamp in seconds
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Added to vy on a grounded jump
	LaunchVelocity Vec2    `yaml:"launch_velocity"` // Velocity at spawn and after death
	DeathY         float64 `yaml:"death_y"`         // Reset when body y drops below this
}

// HopperBody defines the player body.
type HopperBody struct {
	Spawn      Vec2    `yaml:"spawn"`
	Z          float64 `yaml:"z"` // Draw order only
	HalfExtent Vec2    `yaml:"half_extent"`
}

// HopperPlatforms defines platform streaming.
type HopperPlatforms struct {
	SpawnPeriod    float64 `yaml:"spawn_period"`  // Seconds between spawns
	LeadDistance   float64 `yaml:"lead_distance"` // Spawn offset and culling radius
	BandMin        float64 `yaml:"band_min"`      // Lowest spawn y
	BandMax        float64 `yaml:"band_max"`      // Highest spawn y
	Reward         int     `yaml:"reward"`
	HalfExtent     Vec2    `yaml:"half_extent"`
	ConsumeOnScore bool    `yaml:"consume_on_score"` // Remove a platform once its reward is taken
}

// HopperView defines the vertical slice of the world shown on screen.
type HopperView struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Validate rejects configurations the simulation cannot run with.
func (c HopperConfig) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity < 0:
		return invalid("physics.gravity must be >= 0, got %v", p.Gravity)
	case p.MaxDt <= 0:
		return invalid("physics.max_dt must be > 0, got %v", p.MaxDt)
	case p.DeathY >= c.Body.Spawn.Y:
		return invalid("physics.death_y (%v) must be below body.spawn.y (%v)", p.DeathY, c.Body.Spawn.Y)
	}

	if c.Body.HalfExtent.X <= 0 || c.Body.HalfExtent.Y <= 0 {
		return invalid("body.half_extent must be positive, got %+v", c.Body.HalfExtent)
	}

	pl := c.Platforms
	switch {
	case pl.SpawnPeriod <= 0:
		return invalid("platforms.spawn_period must be > 0, got %v", pl.SpawnPeriod)
	case pl.LeadDistance <= 0:
		return invalid("platforms.lead_distance must be > 0, got %v", pl.LeadDistance)
	case pl.BandMin > pl.BandMax:
		return invalid("platforms.band_min (%v) exceeds band_max (%v)", pl.BandMin, pl.BandMax)
	case pl.Reward < 0:
		return invalid("platforms.reward must be >= 0, got %d", pl.Reward)
	case pl.HalfExtent.X <= 0 || pl.HalfExtent.Y <= 0:
		return invalid("platforms.half_extent must be positive, got %+v", pl.HalfExtent)
	}

	if c.View.Top <= c.View.Bottom {
		return invalid("view.top (%v) must be above view.bottom (%v)", c.View.Top, c.View.Bottom)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
