package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

// Body is the single moving entity: the player.
type Body struct {
	Position   mgl64.Vec3 // Z is draw order only
	Velocity   mgl64.Vec2
	HalfExtent mgl64.Vec2
}

// newBody places a body at the configured spawn point with the launch velocity.
func newBody(cfg config.HopperConfig) Body {
	return Body{
		Position:   mgl64.Vec3{cfg.Body.Spawn.X, cfg.Body.Spawn.Y, cfg.Body.Z},
		Velocity:   vec2(cfg.Physics.LaunchVelocity),
		HalfExtent: vec2(cfg.Body.HalfExtent),
	}
}

// Box returns the body's bounding box.
func (b Body) Box() Box {
	return Box{Center: b.Position.Vec2(), Half: b.HalfExtent}
}

// Box is an axis-aligned rectangle given by its center and half extent.
type Box struct {
	Center mgl64.Vec2
	Half   mgl64.Vec2
}

// Min returns the bottom-left corner.
func (b Box) Min() mgl64.Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() mgl64.Vec2 {
	return b.Center.Add(b.Half)
}

func vec2(v config.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}
