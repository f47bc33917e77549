// Package hopper adapts the simulation world to the terminal platform.
// It owns the camera, pause state and session best score, and draws the
// world into a core.Screen.
package hopper

import (
	"fmt"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/sim"
)

// ID identifies the game in score storage.
const ID = "hopper"

// Title is the display name.
const Title = "Hopper"

// Game wraps a sim.World with everything the platform needs to present it.
type Game struct {
	world  *sim.World
	cam    Camera
	paused bool
	best   int
	rt     core.RuntimeConfig
}

// New creates a game from a validated configuration.
func New(cfg config.HopperConfig, rt core.RuntimeConfig) (*Game, error) {
	w, err := sim.NewWorld(cfg, rt.Seed)
	if err != nil {
		return nil, fmt.Errorf("hopper: %w", err)
	}
	g := &Game{
		world: w,
		cam:   NewCamera(cfg),
		rt:    rt,
	}
	g.cam.Follow(w.Body().Position.X())
	return g, nil
}

// Step advances the game by one frame of dt elapsed seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	rep := g.world.Tick(sim.Input{Jump: in.Has(core.ActionJump)}, dt)
	g.cam.Follow(g.world.Body().Position.X())

	res := core.StepResult{
		Died:       rep.Died,
		FinalScore: rep.FinalScore,
		EndedRun:   rep.EndedRun,
	}
	if rep.Died {
		g.best = core.Max(g.best, rep.FinalScore)
	}
	g.best = core.Max(g.best, g.world.Score())
	res.State = g.State()
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.Score(),
		Best:   g.best,
		Run:    g.world.Run(),
		Paused: g.paused,
	}
}

// SetBest seeds the best score, typically from storage.
func (g *Game) SetBest(best int) {
	g.best = core.Max(g.best, best)
}

// World exposes the simulation for read-only inspection.
func (g *Game) World() *sim.World {
	return g.world
}

// Camera returns the current camera.
func (g *Game) Camera() Camera {
	return g.cam
}

// Runtime returns the runtime configuration the game was created with.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.rt
}
