package hopper

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '█'
	PlatformChar  = '▀'
	DeathLineChar = '~'
)

// Render draws the current game state to the screen.
// Row 0 holds the HUD, the rest is the playfield.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Height() < 2 || dst.Width() < 1 {
		return
	}

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	cfg := g.world.Config()

	_, deathRow := g.cam.Project(mgl64.Vec2{g.cam.X, cfg.Physics.DeathY}, field)
	if deathRow >= field.Y && deathRow < field.Bottom() {
		dst.DrawHLine(0, deathRow, dst.Width(), DeathLineChar, core.ColorRed)
	}

	for _, c := range g.world.Colliders() {
		color := core.ColorGray
		if c.Reward.Pending() {
			color = core.ColorBrightGreen
		}
		r := g.cam.ProjectBox(c.Position.Vec2(), c.HalfExtent, field).Clip(field)
		dst.DrawRect(r, PlatformChar, color)
	}

	b := g.world.Body()
	r := g.cam.ProjectBox(b.Position.Vec2(), b.HalfExtent, field).Clip(field)
	dst.DrawRect(r, BodyChar, core.ColorBrightYellow)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.State()
	hud := fmt.Sprintf(" Score: %d  Best: %d  Run: %d ", s.Score, s.Best, s.Run)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
