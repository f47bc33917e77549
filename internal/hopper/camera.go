package hopper

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Camera maps world coordinates onto screen cells.
// It is locked to the body's x and only reads from the world.
type Camera struct {
	X float64

	halfWidth float64 // world units visible either side of X
	top       float64
	bottom    float64
}

// NewCamera builds a camera showing the streaming window horizontally
// and the configured view band vertically.
func NewCamera(cfg config.HopperConfig) Camera {
	return Camera{
		halfWidth: cfg.Platforms.LeadDistance,
		top:       cfg.View.Top,
		bottom:    cfg.View.Bottom,
	}
}

// Follow centers the camera on x.
func (c *Camera) Follow(x float64) {
	c.X = x
}

// Project converts a world point into a cell of a playfield with the given
// size. World y grows upwards, rows grow downwards.
func (c Camera) Project(p mgl64.Vec2, field core.Rect) (col, row int) {
	left := c.X - c.halfWidth
	unitsPerCol := 2 * c.halfWidth / float64(field.W)
	unitsPerRow := (c.top - c.bottom) / float64(field.H)

	col = field.X + int(math.Floor((p.X()-left)/unitsPerCol))
	row = field.Y + int(math.Floor((c.top-p.Y())/unitsPerRow))
	return col, row
}

// ProjectBox converts a world-space box into the cells it touches.
func (c Camera) ProjectBox(center, half mgl64.Vec2, field core.Rect) core.Rect {
	x0, y0 := c.Project(mgl64.Vec2{center.X() - half.X(), center.Y() + half.Y()}, field)
	x1, y1 := c.Project(mgl64.Vec2{center.X() + half.X(), center.Y() - half.Y()}, field)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}
